package world

// ChunkSize is the edge length of a chunk in columns. Chunk coordinates
// scale to world space by this factor.
const ChunkSize = 8

// ChunkCoord addresses a chunk on the horizontal grid.
type ChunkCoord struct {
	X, Z int
}

// Column is the vertical stack of blocks at one (x,z) position inside a
// chunk, ordered bottom-to-top.
type Column []Block

// Height returns the number of blocks stacked in the column.
func (c Column) Height() int {
	return len(c)
}

// Chunk is a fixed ChunkSize x ChunkSize grid of columns anchored at a
// chunk coordinate. Block positions inside columns are chunk-local.
type Chunk struct {
	Coord   ChunkCoord
	Columns [ChunkSize][ChunkSize]Column // indexed [x][z]
}

// HeightAt returns the column height at chunk-local x,z.
func (c *Chunk) HeightAt(x, z int) int {
	return c.Columns[x][z].Height()
}

// BlockCount returns the number of blocks in the chunk.
func (c *Chunk) BlockCount() int {
	n := 0
	for x := range ChunkSize {
		for z := range ChunkSize {
			n += len(c.Columns[x][z])
		}
	}
	return n
}

// Blocks flattens the chunk into a single slice in x, z, bottom-to-top
// order, with chunk-local positions.
func (c *Chunk) Blocks() []Block {
	out := make([]Block, 0, c.BlockCount())
	for x := range ChunkSize {
		for z := range ChunkSize {
			out = append(out, c.Columns[x][z]...)
		}
	}
	return out
}

// WorldBlocks flattens the chunk like Blocks but translates positions into
// world space using the chunk anchor. This is the form the mesh builder
// consumes.
func (c *Chunk) WorldBlocks() []Block {
	baseX := c.Coord.X * ChunkSize
	baseZ := c.Coord.Z * ChunkSize
	out := c.Blocks()
	for i := range out {
		out[i].X += baseX
		out[i].Z += baseZ
	}
	return out
}
