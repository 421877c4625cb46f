package world

// Material identifies what a voxel block is made of. It is a small tagged
// value; rendering decisions (atlas quadrant per face) dispatch on it
// through lookup tables rather than behavior attached to the type.
type Material uint8

const (
	Grass Material = iota
	Dirt
	Stone
)

// String returns the material name for logs and test failure messages.
func (m Material) String() string {
	switch m {
	case Grass:
		return "grass"
	case Dirt:
		return "dirt"
	case Stone:
		return "stone"
	default:
		return "unknown"
	}
}

// Block is one voxel: an integer position local to its chunk plus a
// material tag. Blocks are immutable once generated.
type Block struct {
	X, Y, Z  int
	Material Material
}
