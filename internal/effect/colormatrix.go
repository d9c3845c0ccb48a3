package effect

import (
	"image"

	"github.com/gogpu/glass/internal/pixmap"
)

// Matrix is a 4x5 color transformation in row-major order:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
//
// Channels are straight-alpha values in [0, 1]; the fifth column is an
// offset in the same unit, as with SVG feColorMatrix.
type Matrix [20]float64

// Identity returns the matrix that leaves colors unchanged.
func Identity() Matrix {
	return Diagonal(1, 1, 1, 1)
}

// Diagonal returns a matrix that scales each channel independently.
func Diagonal(r, g, b, a float64) Matrix {
	return Matrix{
		r, 0, 0, 0, 0,
		0, g, 0, 0, 0,
		0, 0, b, 0, 0,
		0, 0, 0, a, 0,
	}
}

// Diag returns the four diagonal entries.
func (m Matrix) Diag() [4]float64 {
	return [4]float64{m[0], m[6], m[12], m[18]}
}

// ApplyMatrix transforms the region of src by m and writes into dst.
func ApplyMatrix(src, dst *pixmap.Pixmap, region image.Rectangle, m Matrix) {
	if src == nil || dst == nil {
		return
	}
	region = region.Intersect(src.Bounds()).Intersect(dst.Bounds())

	s := src.Data()
	d := dst.Data()

	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			si := src.Offset(x, y)
			di := dst.Offset(x, y)

			a := float64(s[si+3]) / 255

			// Un-premultiply; the matrix assumes straight alpha.
			var r, g, b float64
			if a > 0 {
				r = float64(s[si+0]) / 255 / a
				g = float64(s[si+1]) / 255 / a
				b = float64(s[si+2]) / 255 / a
			}

			nr := m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4]
			ng := m[5]*r + m[6]*g + m[7]*b + m[8]*a + m[9]
			nb := m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14]
			na := clampUnit(m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19])

			d[di+0] = clampUint8(float32(clampUnit(nr) * na * 255))
			d[di+1] = clampUint8(float32(clampUnit(ng) * na * 255))
			d[di+2] = clampUint8(float32(clampUnit(nb) * na * 255))
			d[di+3] = clampUint8(float32(na * 255))
		}
	}
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
