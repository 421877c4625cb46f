package world

import (
	"reflect"
	"testing"
)

// Golden 8x8 height grid for chunk (0,0), indexed [x][z]. Recorded once
// from the pinned noise field and the height mapping floor((n+1)*2+3).
var chunkZeroHeights = [ChunkSize][ChunkSize]int{
	{5, 5, 5, 5, 6, 5, 5, 5},
	{5, 5, 5, 5, 5, 5, 5, 4},
	{5, 5, 5, 5, 5, 5, 4, 4},
	{5, 5, 5, 5, 5, 4, 4, 4},
	{5, 4, 4, 4, 4, 4, 4, 4},
	{4, 4, 4, 4, 4, 3, 3, 4},
	{4, 4, 4, 3, 3, 3, 3, 4},
	{4, 4, 4, 3, 3, 3, 4, 4},
}

// Total block count implied by the golden grid.
const chunkZeroBlockCount = 275

func TestGenerateChunkZeroGoldenHeights(t *testing.T) {
	g := NewGenerator()
	c := g.Generate(ChunkCoord{0, 0})

	for x := range ChunkSize {
		for z := range ChunkSize {
			if got, want := c.HeightAt(x, z), chunkZeroHeights[x][z]; got != want {
				t.Errorf("height at (%d,%d) = %d, want %d", x, z, got, want)
			}
		}
	}
	if got := c.BlockCount(); got != chunkZeroBlockCount {
		t.Errorf("BlockCount() = %d, want %d", got, chunkZeroBlockCount)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	g := NewGenerator()
	coords := []ChunkCoord{{0, 0}, {1, 0}, {0, 1}, {-1, -1}, {3, -2}}
	for _, coord := range coords {
		a := g.Generate(coord)
		b := g.Generate(coord)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("chunk %v not bit-identical across generations", coord)
		}
	}
}

func TestGenerateHeightRange(t *testing.T) {
	g := NewGenerator()
	for _, coord := range []ChunkCoord{{0, 0}, {5, 5}, {-3, 7}} {
		c := g.Generate(coord)
		for x := range ChunkSize {
			for z := range ChunkSize {
				h := c.HeightAt(x, z)
				if h < 3 || h > 7 {
					t.Errorf("chunk %v column (%d,%d) height %d outside [3,7]", coord, x, z, h)
				}
			}
		}
	}
}

func TestColumnLayering(t *testing.T) {
	g := NewGenerator()
	c := g.Generate(ChunkCoord{2, -4})

	for x := range ChunkSize {
		for z := range ChunkSize {
			col := c.Columns[x][z]
			h := len(col)
			if h == 0 {
				continue
			}
			for y, blk := range col {
				if blk.Y != y {
					t.Fatalf("column (%d,%d) not ordered bottom-to-top: block %d has Y=%d", x, z, y, blk.Y)
				}
				want := Stone
				switch {
				case y == h-1:
					want = Grass
				case y >= h-3:
					want = Dirt
				}
				if blk.Material != want {
					t.Errorf("column (%d,%d) height %d: block y=%d is %v, want %v", x, z, h, y, blk.Material, want)
				}
			}
		}
	}
}

func TestWorldBlocksTranslation(t *testing.T) {
	g := NewGenerator()
	c := g.Generate(ChunkCoord{1, 2})

	local := c.Blocks()
	translated := c.WorldBlocks()
	if len(local) != len(translated) {
		t.Fatalf("WorldBlocks length %d != Blocks length %d", len(translated), len(local))
	}
	for i := range local {
		if translated[i].X != local[i].X+ChunkSize || translated[i].Z != local[i].Z+2*ChunkSize {
			t.Fatalf("block %d translated to (%d,%d), want (%d,%d)",
				i, translated[i].X, translated[i].Z, local[i].X+ChunkSize, local[i].Z+2*ChunkSize)
		}
		if translated[i].Y != local[i].Y {
			t.Fatalf("block %d Y changed during translation", i)
		}
	}
}

func BenchmarkGenerateChunk(b *testing.B) {
	g := NewGenerator()
	for i := 0; i < b.N; i++ {
		g.Generate(ChunkCoord{i & 7, i >> 3 & 7})
	}
}
