package graphics

import (
	"image"
	"image/color"
)

// AtlasSize is the edge length of the shared square texture. The texture is
// divided into a 2x2 grid of material quadrants; UV (0,0) is the top-left.
const AtlasSize = 64

type quadrant struct {
	base    color.RGBA
	speckle color.RGBA
}

// Quadrant layout matches the UV windows in the mesh builder:
// grass-side top-left, grass-top top-right, stone bottom-left, dirt
// bottom-right.
var atlasQuadrants = [2][2]quadrant{
	{ // top row
		{base: color.RGBA{121, 89, 58, 255}, speckle: color.RGBA{96, 161, 70, 255}},  // grass side
		{base: color.RGBA{106, 170, 64, 255}, speckle: color.RGBA{88, 148, 52, 255}}, // grass top
	},
	{ // bottom row
		{base: color.RGBA{128, 128, 128, 255}, speckle: color.RGBA{104, 104, 104, 255}}, // stone
		{base: color.RGBA{134, 96, 67, 255}, speckle: color.RGBA{110, 78, 52, 255}},     // dirt
	},
}

// pixelHash gives a stable pseudo-random bit per texel so the atlas is
// identical every run.
func pixelHash(x, y int) uint32 {
	h := uint32(x)*0x9e3779b1 ^ uint32(y)*0x85ebca77
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

// GenerateAtlas builds the procedural block texture. Both render backends
// sample it: the software rasterizer directly, the OpenGL backend as an
// uploaded 2D texture.
func GenerateAtlas() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, AtlasSize, AtlasSize))
	half := AtlasSize / 2
	for y := 0; y < AtlasSize; y++ {
		for x := 0; x < AtlasSize; x++ {
			q := atlasQuadrants[y/half][x/half]
			c := q.base
			if pixelHash(x, y)&7 == 0 {
				c = q.speckle
			}
			// Grass side keeps a green lip along its top edge.
			if y < 3 && x < half {
				c = color.RGBA{106, 170, 64, 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
