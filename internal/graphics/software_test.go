package graphics

import (
	"bytes"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"voxel-tty/internal/camera"
	"voxel-tty/internal/meshing"
	"voxel-tty/internal/world"
)

func chunkMesh(t *testing.T) *meshing.Mesh {
	t.Helper()
	g := world.NewGenerator()
	m, err := meshing.Build(g.Generate(world.ChunkCoord{X: 0, Z: 0}).WorldBlocks())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return m
}

func sceneView(w, h int) mgl32.Mat4 {
	cam := camera.New(float32(w)/float32(h), mgl32.Vec3{4, 6, 4})
	cam.RotateYaw(45)
	cam.RotatePitch(-30)
	return cam.ViewProjection()
}

func TestSoftwareRenderDrawsTerrain(t *testing.T) {
	r := NewSoftwareRenderer(160, 96, GenerateAtlas())
	f, err := r.Render([]*meshing.Mesh{chunkMesh(t)}, sceneView(160, 96))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if f.Width != 160 || f.Height != 96 {
		t.Fatalf("frame dims %dx%d, want 160x96", f.Width, f.Height)
	}

	nonSky := 0
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			cr, cg, cb := f.RGB(x, y)
			if cr != clearColor[0] || cg != clearColor[1] || cb != clearColor[2] {
				nonSky++
			}
		}
	}
	if nonSky == 0 {
		t.Fatal("rendered frame contains only the clear color; terrain not drawn")
	}
}

func TestSoftwareRenderDeterministic(t *testing.T) {
	m := chunkMesh(t)
	vp := sceneView(128, 64)
	atlas := GenerateAtlas()

	r1 := NewSoftwareRenderer(128, 64, atlas)
	f1, err := r1.Render([]*meshing.Mesh{m}, vp)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	first := append([]byte(nil), f1.Pixels...)

	r2 := NewSoftwareRenderer(128, 64, atlas)
	f2, err := r2.Render([]*meshing.Mesh{m}, vp)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.Equal(first, f2.Pixels) {
		t.Error("two renders of the same scene produced different pixels")
	}
}

func TestSoftwareRenderEmptySceneIsClearColor(t *testing.T) {
	r := NewSoftwareRenderer(32, 16, GenerateAtlas())
	f, err := r.Render(nil, mgl32.Ident4())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for i := 0; i < len(f.Pixels); i += 4 {
		if f.Pixels[i] != clearColor[0] || f.Pixels[i+1] != clearColor[1] || f.Pixels[i+2] != clearColor[2] {
			t.Fatalf("pixel %d not clear color", i/4)
		}
	}
}

func TestDrawOverlayMarksPixels(t *testing.T) {
	f := NewFrame(120, 40)
	before := append([]byte(nil), f.Pixels...)
	DrawOverlay(f, []string{"pos 4.0 6.0 4.0"})
	if bytes.Equal(before, f.Pixels) {
		t.Error("overlay drew nothing")
	}
}

func TestGenerateAtlasQuadrantColors(t *testing.T) {
	img := GenerateAtlas()
	half := AtlasSize / 2
	// Sample quadrant centers; center texels avoid the grass lip rows.
	grassTop := img.RGBAAt(half+half/2, half/2)
	if grassTop.G <= grassTop.R || grassTop.G <= grassTop.B {
		t.Errorf("grass-top quadrant not green-dominant: %v", grassTop)
	}
	stone := img.RGBAAt(half/2, half+half/2)
	if stone.R != stone.G || stone.G != stone.B {
		t.Errorf("stone quadrant not gray: %v", stone)
	}
}
