package graphics

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DrawOverlay stamps diagnostic text lines onto the frame before it is
// composited, using the fixed 7x13 bitmap face. Intended for the optional
// camera/FPS readout; a no-op when lines is empty.
func DrawOverlay(f *Frame, lines []string) {
	if len(lines) == 0 {
		return
	}

	dst := &image.RGBA{
		Pix:    f.Pixels,
		Stride: f.Width * 4,
		Rect:   image.Rect(0, 0, f.Width, f.Height),
	}

	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.RGBA{255, 255, 255, 255}),
		Face: face,
	}
	shadow := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.RGBA{0, 0, 0, 255}),
		Face: face,
	}

	y := face.Height + 2
	for _, line := range lines {
		shadow.Dot = fixed.P(3, y+1)
		shadow.DrawString(line)
		d.Dot = fixed.P(2, y)
		d.DrawString(line)
		y += face.Height + 2
	}
}
