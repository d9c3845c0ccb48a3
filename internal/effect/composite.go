package effect

import (
	"image"

	"github.com/gogpu/glass/internal/pixmap"
)

// Operator is a Porter-Duff compositing operator.
type Operator uint8

const (
	// OperatorOver draws in over in2: S + D*(1-Sa).
	OperatorOver Operator = iota

	// OperatorLighter adds in and in2: S + D, clamped.
	OperatorLighter
)

// String returns the SVG operator name.
func (op Operator) String() string {
	switch op {
	case OperatorOver:
		return "over"
	case OperatorLighter:
		return "lighter"
	default:
		return "unknown"
	}
}

// Composite combines in (source) with in2 (destination) over region and
// writes the result into dst. All three pixmaps must share dimensions; dst may
// alias either input.
func Composite(in, in2, dst *pixmap.Pixmap, region image.Rectangle, op Operator) {
	if in == nil || in2 == nil || dst == nil {
		return
	}
	if in.Bounds() != in2.Bounds() || in.Bounds() != dst.Bounds() {
		return
	}
	region = region.Intersect(in.Bounds()).Intersect(in2.Bounds()).Intersect(dst.Bounds())

	s := in.Data()
	b := in2.Data()
	d := dst.Data()

	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			i := in.Offset(x, y)
			sa := uint16(s[i+3])
			for c := 0; c < 4; c++ {
				sv := uint16(s[i+c])
				dv := uint16(b[i+c])
				switch op {
				case OperatorLighter:
					d[i+c] = uint8(min(sv+dv, 255))
				default:
					d[i+c] = uint8(min(sv+div255(dv*(255-sa)), 255))
				}
			}
		}
	}
}

// div255 approximates x/255 with rounding for x in [0, 255*255].
func div255(x uint16) uint16 {
	return (x + 1 + (x >> 8)) >> 8
}
