package game

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"voxel-tty/internal/camera"
	"voxel-tty/internal/config"
	"voxel-tty/internal/graphics"
	"voxel-tty/internal/meshing"
	"voxel-tty/internal/world"
)

type scriptedInput struct {
	chunks [][]byte
}

func (s *scriptedInput) Poll() ([]byte, error) {
	if len(s.chunks) == 0 {
		return nil, nil
	}
	head := s.chunks[0]
	s.chunks = s.chunks[1:]
	return head, nil
}

type recordingPresenter struct {
	frames int
	err    error
}

func (p *recordingPresenter) Present(*graphics.Frame) error {
	p.frames++
	return p.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testScene(t *testing.T) ([]*meshing.Mesh, int) {
	t.Helper()
	chunk := world.NewGenerator().Generate(world.ChunkCoord{})
	mesh, err := meshing.Build(chunk.WorldBlocks())
	if err != nil {
		t.Fatalf("building scene mesh: %v", err)
	}
	return []*meshing.Mesh{mesh}, chunk.BlockCount()
}

func newTestLoop(t *testing.T, in InputSource, p Presenter) *Loop {
	t.Helper()
	meshes, blocks := testScene(t)
	cam := camera.New(2.0, mgl32.Vec3{4, 6, 4})
	r := graphics.NewSoftwareRenderer(64, 32, graphics.GenerateAtlas())
	t.Cleanup(func() { r.Close() })
	return NewLoop(in, r, p, cam, meshes, blocks, discardLogger())
}

func TestLoopQuitsOnQuitCommand(t *testing.T) {
	old := config.GetFPSLimit()
	config.SetFPSLimit(240)
	defer config.SetFPSLimit(old)

	p := &recordingPresenter{}
	l := newTestLoop(t, &scriptedInput{chunks: [][]byte{[]byte("x")}}, p)
	if err := l.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if p.frames != 0 {
		t.Errorf("presented %d frames before immediate quit, want 0", p.frames)
	}
}

func TestLoopRendersThenQuits(t *testing.T) {
	old := config.GetFPSLimit()
	config.SetFPSLimit(240)
	defer config.SetFPSLimit(old)

	p := &recordingPresenter{}
	in := &scriptedInput{chunks: [][]byte{[]byte("w"), []byte("x")}}
	l := newTestLoop(t, in, p)

	startZ := l.camera.Position.Z()
	if err := l.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if p.frames != 1 {
		t.Errorf("presented %d frames, want 1", p.frames)
	}
	if l.camera.Position.Z() == startZ && l.camera.Position.X() == 4 {
		t.Error("forward command did not move the camera")
	}
}

func TestLoopPropagatesPresentError(t *testing.T) {
	old := config.GetFPSLimit()
	config.SetFPSLimit(240)
	defer config.SetFPSLimit(old)

	sentinel := errors.New("tty gone")
	p := &recordingPresenter{err: sentinel}
	l := newTestLoop(t, &scriptedInput{}, p)

	if err := l.Run(); !errors.Is(err, sentinel) {
		t.Fatalf("Run error = %v, want wrapped %v", err, sentinel)
	}
}
