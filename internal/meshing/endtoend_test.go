package meshing

import (
	"testing"

	"voxel-tty/internal/world"
)

// Pinned totals for chunk (0,0) with the default generator: 275 blocks.
const (
	chunkZeroVertexCount = 275 * VerticesPerBlock
	chunkZeroIndexCount  = 275 * IndicesPerBlock
)

func TestChunkZeroMeshGolden(t *testing.T) {
	g := world.NewGenerator()
	c := g.Generate(world.ChunkCoord{X: 0, Z: 0})

	m, err := Build(c.WorldBlocks())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := m.VertexCount(); got != chunkZeroVertexCount {
		t.Errorf("vertex count = %d, want %d", got, chunkZeroVertexCount)
	}
	if got := len(m.Indices); got != chunkZeroIndexCount {
		t.Errorf("index count = %d, want %d", got, chunkZeroIndexCount)
	}
}
