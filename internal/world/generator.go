package world

import (
	"math"
)

// Generator maps chunk coordinates to terrain. Generation is a pure
// function of the coordinate: one noise sample per column decides its
// height, and the material rule fills it in. Adjacent chunks are generated
// independently; continuity across borders comes only from the noise field
// itself being sampled at shared world coordinates.
type Generator struct {
	frequency   float64
	heightScale float64
	heightBase  float64
}

// NewGenerator creates a generator with the default terrain shape:
// heights in [3, 7] varying over a 8-block noise wavelength.
func NewGenerator() *Generator {
	return &Generator{
		frequency:   8.0,
		heightScale: 2.0,
		heightBase:  3.0,
	}
}

// HeightAt computes the column height at a world X,Z coordinate.
func (g *Generator) HeightAt(worldX, worldZ int) int {
	n := Noise2(float64(worldX)/g.frequency, float64(worldZ)/g.frequency)
	return int(math.Floor((n+1)*g.heightScale + g.heightBase))
}

// materialFor applies the layering rule: topmost block is grass, the next
// up to two are dirt, everything below is stone.
func materialFor(y, height int) Material {
	switch {
	case y == height-1:
		return Grass
	case y >= height-3:
		return Dirt
	default:
		return Stone
	}
}

// Generate builds the chunk at the given coordinate. Calling it twice with
// the same coordinate yields bit-identical block sets.
func (g *Generator) Generate(coord ChunkCoord) *Chunk {
	c := &Chunk{Coord: coord}
	baseX := coord.X * ChunkSize
	baseZ := coord.Z * ChunkSize

	for x := range ChunkSize {
		for z := range ChunkSize {
			height := g.HeightAt(baseX+x, baseZ+z)
			col := make(Column, 0, height)
			for y := range height {
				col = append(col, Block{
					X:        x,
					Y:        y,
					Z:        z,
					Material: materialFor(y, height),
				})
			}
			c.Columns[x][z] = col
		}
	}
	return c
}
