package world

import (
	"math"
)

// Classic permutation-table gradient noise. Deterministic: the permutation
// table below is the canonical Ken Perlin ordering and is never mutated, so
// the same coordinates always produce the same sample. Coordinates alias
// with period 256 per axis because corner hashes index the table through a
// 255 mask.

// perm is process-wide immutable constant data. Indexed via (v & 255) so
// wrapped byte addition never reads out of range.
var perm = [256]uint8{
	151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225,
	140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23, 190, 6, 148,
	247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32,
	57, 177, 33, 88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175,
	74, 165, 71, 134, 139, 48, 27, 166, 77, 146, 158, 231, 83, 111, 229, 122,
	60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244, 102, 143, 54,
	65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169,
	200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64,
	52, 217, 226, 250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212,
	207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42, 223, 183, 170, 213,
	119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
	129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104,
	218, 246, 97, 228, 251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241,
	81, 51, 145, 235, 249, 14, 239, 107, 49, 192, 214, 31, 181, 199, 106, 157,
	184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254, 138, 236, 205, 93,
	222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
}

// fade is the quintic smoothing curve 6t^5 - 15t^4 + 10t^3, giving C1
// continuity across lattice cell boundaries.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad3 maps a corner hash to one of the fixed gradient directions and
// evaluates its dot product with the fractional offset.
func grad3(h uint8, x, y, z float64) float64 {
	switch h & 15 {
	case 0, 12:
		return x + y
	case 1, 14:
		return y - x
	case 2:
		return x - y
	case 3:
		return -x - y
	case 4:
		return x + z
	case 5:
		return z - x
	case 6:
		return x - z
	case 7:
		return -x - z
	case 8:
		return y + z
	case 9, 13:
		return z - y
	case 10:
		return y - z
	default: // 11, 15
		return -y - z
	}
}

// Noise3 samples gradient noise at a continuous 3D coordinate. The result
// lies in approximately [-1, 1] and is exactly 0 at integer lattice points.
func Noise3(x, y, z float64) float64 {
	xf := math.Floor(x)
	yf := math.Floor(y)
	zf := math.Floor(z)

	xi := int(int32(xf)) & 255
	yi := int(int32(yf)) & 255
	zi := int(int32(zf)) & 255

	xr := x - xf
	yr := y - yf
	zr := z - zf

	u := fade(xr)
	v := fade(yr)
	w := fade(zr)

	// Hash the 8 cube corners through the permutation table.
	a := int(perm[xi])
	aa := int(perm[(a+yi)&255])
	ab := int(perm[(a+yi+1)&255])
	b := int(perm[(xi+1)&255])
	ba := int(perm[(b+yi)&255])
	bb := int(perm[(b+yi+1)&255])

	return lerp(w,
		lerp(v,
			lerp(u, grad3(perm[(aa+zi)&255], xr, yr, zr),
				grad3(perm[(ba+zi)&255], xr-1, yr, zr)),
			lerp(u, grad3(perm[(ab+zi)&255], xr, yr-1, zr),
				grad3(perm[(bb+zi)&255], xr-1, yr-1, zr))),
		lerp(v,
			lerp(u, grad3(perm[(aa+zi+1)&255], xr, yr, zr-1),
				grad3(perm[(ba+zi+1)&255], xr-1, yr, zr-1)),
			lerp(u, grad3(perm[(ab+zi+1)&255], xr, yr-1, zr-1),
				grad3(perm[(bb+zi+1)&255], xr-1, yr-1, zr-1))))
}

// Noise2 samples the same field on the y=0 plane. Terrain height uses this
// so the heightmap stays a pure function of the world X/Z coordinate.
func Noise2(x, z float64) float64 {
	return Noise3(x, 0, z)
}
