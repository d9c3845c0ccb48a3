package effect

import (
	"image"
	"math"

	"github.com/gogpu/glass/internal/pixmap"
)

// Channel selects a color channel of a displacement map.
type Channel uint8

const (
	ChannelR Channel = iota
	ChannelG
	ChannelB
	ChannelA
)

// String returns the SVG channel selector letter.
func (c Channel) String() string {
	switch c {
	case ChannelR:
		return "R"
	case ChannelG:
		return "G"
	case ChannelB:
		return "B"
	default:
		return "A"
	}
}

// Displace warps src by the displacement map dmap:
//
//	P'(x,y) = P(x + scale*(XC(x,y) - 0.5), y + scale*(YC(x,y) - 0.5))
//
// XC and YC are straight-alpha channel values of dmap in [0, 1]. Samples
// landing outside srcRegion are transparent black. Output is written to the
// region of dst, which must not alias src.
func Displace(src, dmap, dst *pixmap.Pixmap, srcRegion, region image.Rectangle, scale float64, xch, ych Channel) {
	if src == nil || dmap == nil || dst == nil {
		return
	}
	srcRegion = srcRegion.Intersect(src.Bounds())
	region = region.Intersect(dst.Bounds())

	s := src.Data()
	d := dst.Data()

	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			m := dmap.RGBA(x, y)
			xc := channelValue(m.R, m.G, m.B, m.A, xch)
			yc := channelValue(m.R, m.G, m.B, m.A, ych)

			sx := int(math.Floor(float64(x) + scale*(xc-0.5) + 0.5))
			sy := int(math.Floor(float64(y) + scale*(yc-0.5) + 0.5))

			di := dst.Offset(x, y)
			if !(image.Point{X: sx, Y: sy}).In(srcRegion) {
				d[di+0], d[di+1], d[di+2], d[di+3] = 0, 0, 0, 0
				continue
			}
			si := src.Offset(sx, sy)
			copy(d[di:di+4], s[si:si+4])
		}
	}
}

// channelValue returns the straight-alpha value of channel c in [0, 1].
func channelValue(r, g, b, a uint8, c Channel) float64 {
	if c == ChannelA {
		return float64(a) / 255
	}
	if a == 0 {
		return 0
	}
	var v uint8
	switch c {
	case ChannelR:
		v = r
	case ChannelG:
		v = g
	default:
		v = b
	}
	return clampUnit(float64(v) / float64(a))
}
