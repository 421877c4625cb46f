package meshing

import (
	"fmt"

	"voxel-tty/internal/world"
)

const (
	// VertexStride is the number of float32 per vertex:
	// position.xyz + color.rgb + uv.
	VertexStride = 8

	// VerticesPerBlock and IndicesPerBlock are fixed: every block emits all
	// six faces regardless of neighbor occupancy. Face culling and greedy
	// merging are deliberately out of scope.
	VerticesPerBlock = 24
	IndicesPerBlock  = 36

	// MaxBlocks is the hard cap imposed by the 16-bit index space:
	// floor(65536 / 24) blocks per buffer pair. Callers needing more must
	// split into multiple draw batches.
	MaxBlocks = 65536 / VerticesPerBlock
)

// BatchSizeError reports an attempt to build more blocks into one buffer
// pair than the uint16 index space can address.
type BatchSizeError struct {
	Blocks int
}

func (e *BatchSizeError) Error() string {
	return fmt.Sprintf("meshing: %d blocks exceed the %d-block limit of a uint16 index buffer", e.Blocks, MaxBlocks)
}

// Mesh is an interleaved vertex buffer plus a 16-bit index buffer.
// Immutable once built; any terrain edit rebuilds the whole mesh.
type Mesh struct {
	Vertices []float32
	Indices  []uint16
}

// VertexCount returns the number of vertices in the buffer.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / VertexStride
}

// Face order within a block. Sides are faces 0-3; bottom is 4, top is 5.
const (
	faceFront = iota // +Z
	faceBack         // -Z
	faceLeft         // -X
	faceRight        // +X
	faceBottom       // -Y
	faceTop          // +Y
	faceCount
)

// faceCorners holds the four corner offsets of each face, in the order the
// index patterns below expect.
var faceCorners = [faceCount][4][3]float32{
	faceFront:  {{0, 1, 1}, {1, 0, 1}, {0, 0, 1}, {1, 1, 1}},
	faceBack:   {{0, 1, 0}, {1, 0, 0}, {0, 0, 0}, {1, 1, 0}},
	faceLeft:   {{0, 1, 0}, {0, 0, 1}, {0, 0, 0}, {0, 1, 1}},
	faceRight:  {{1, 1, 0}, {1, 0, 1}, {1, 0, 0}, {1, 1, 1}},
	faceBottom: {{0, 0, 1}, {1, 0, 0}, {0, 0, 0}, {1, 0, 1}},
	faceTop:    {{0, 1, 1}, {1, 1, 0}, {0, 1, 0}, {1, 1, 1}},
}

// Index patterns over a face's 4-vertex window. Front, left and bottom wind
// forward; back, right and top use the mirrored pattern so they stay
// front-facing.
var (
	windForward  = [6]uint16{0, 1, 2, 0, 3, 1}
	windReversed = [6]uint16{2, 1, 0, 1, 3, 0}
)

var faceWinding = [faceCount]*[6]uint16{
	faceFront:  &windForward,
	faceBack:   &windReversed,
	faceLeft:   &windForward,
	faceRight:  &windReversed,
	faceBottom: &windForward,
	faceTop:    &windReversed,
}

// faceShade is baked into the vertex color channel so both render backends
// get simple directional shading without lighting state.
var faceShade = [faceCount]float32{
	faceFront:  0.86,
	faceBack:   0.86,
	faceLeft:   0.78,
	faceRight:  0.78,
	faceBottom: 0.55,
	faceTop:    1.0,
}

// Build converts a block list into one vertex/index buffer pair. Block
// positions are taken as-is (callers pass world-space blocks for chunks).
// Exceeding the uint16 index space aborts the build with a *BatchSizeError
// rather than silently wrapping.
func Build(blocks []world.Block) (*Mesh, error) {
	if len(blocks) > MaxBlocks {
		return nil, &BatchSizeError{Blocks: len(blocks)}
	}

	m := &Mesh{
		Vertices: make([]float32, 0, len(blocks)*VerticesPerBlock*VertexStride),
		Indices:  make([]uint16, 0, len(blocks)*IndicesPerBlock),
	}

	for n, blk := range blocks {
		x := float32(blk.X)
		y := float32(blk.Y)
		z := float32(blk.Z)
		uvs := faceUVs(blk.Material)
		base := uint16(n * VerticesPerBlock)

		for face := range faceCount {
			corners := &faceCorners[face]
			uv := &uvs[face]
			shade := faceShade[face]
			for corner := range 4 {
				c := &corners[corner]
				m.Vertices = append(m.Vertices,
					x+c[0], y+c[1], z+c[2],
					shade, shade, shade,
					uv[corner][0], uv[corner][1],
				)
			}
			faceBase := base + uint16(face*4)
			for _, local := range faceWinding[face] {
				m.Indices = append(m.Indices, faceBase+local)
			}
		}
	}

	return m, nil
}
