package meshing

import (
	"voxel-tty/internal/world"
)

// The shared texture is a 2x2 grid of quadrants:
//
//	top-left  grass-side   top-right  grass-top
//	bot-left  stone        bot-right  dirt
//
// Each quadrant window lists the UV of a face's 4 corners in the same order
// as faceCorners.
type quadrantUV [4][2]float32

var (
	uvGrassSide = quadrantUV{{0, 0}, {0.5, 0.5}, {0, 0.5}, {0.5, 0}}
	uvGrassTop  = quadrantUV{{0.5, 0}, {1, 0.5}, {0.5, 0.5}, {1, 0}}
	uvStone     = quadrantUV{{0, 0.5}, {0.5, 1}, {0, 1}, {0.5, 0.5}}
	uvDirt      = quadrantUV{{0.5, 0.5}, {1, 1}, {0.5, 1}, {1, 0.5}}
)

// Per-material face tables. Grass uses its side quadrant on faces 0-3,
// dirt underneath and the grass-top quadrant on top; dirt and stone repeat
// their own quadrant on every face.
var materialFaceUVs = map[world.Material]*[faceCount]quadrantUV{
	world.Grass: {uvGrassSide, uvGrassSide, uvGrassSide, uvGrassSide, uvDirt, uvGrassTop},
	world.Dirt:  {uvDirt, uvDirt, uvDirt, uvDirt, uvDirt, uvDirt},
	world.Stone: {uvStone, uvStone, uvStone, uvStone, uvStone, uvStone},
}

func faceUVs(m world.Material) *[faceCount]quadrantUV {
	if t, ok := materialFaceUVs[m]; ok {
		return t
	}
	return materialFaceUVs[world.Stone]
}
