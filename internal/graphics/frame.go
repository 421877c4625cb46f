package graphics

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxel-tty/internal/meshing"
)

// Frame is an RGBA8 pixel grid, row-major with a top-left origin. One is
// produced per render; dimensions are fixed for the session.
type Frame struct {
	Width  int
	Height int
	Pixels []byte // len = Width*Height*4
}

// NewFrame allocates a zeroed frame.
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]byte, width*height*4),
	}
}

// RGB returns the color at pixel (x, y). Out-of-range reads are the
// caller's responsibility.
func (f *Frame) RGB(x, y int) (r, g, b byte) {
	i := (y*f.Width + x) * 4
	return f.Pixels[i], f.Pixels[i+1], f.Pixels[i+2]
}

// setRGB writes an opaque pixel.
func (f *Frame) setRGB(x, y int, r, g, b byte) {
	i := (y*f.Width + x) * 4
	f.Pixels[i] = r
	f.Pixels[i+1] = g
	f.Pixels[i+2] = b
	f.Pixels[i+3] = 0xff
}

// Renderer renders immutable meshes with a view-projection matrix into a
// pixel frame. Implementations block until the frame is fully readable;
// there is no partial-frame abort path.
type Renderer interface {
	Render(meshes []*meshing.Mesh, viewProj mgl32.Mat4) (*Frame, error)
	Close() error
}

// Sky clear color shared by both backends.
var clearColor = [3]byte{102, 178, 255} // (0.4, 0.7, 1.0)
