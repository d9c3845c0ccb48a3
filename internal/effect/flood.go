package effect

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/glass/internal/pixmap"
)

// Premultiply converts a straight-alpha color with channels in [0, 1] and an
// opacity into a premultiplied RGBA8 value.
func Premultiply(r, g, b, opacity float64) color.RGBA {
	a := clampUnit(opacity)
	return color.RGBA{
		R: uint8(math.Round(clampUnit(r) * a * 255)),
		G: uint8(math.Round(clampUnit(g) * a * 255)),
		B: uint8(math.Round(clampUnit(b) * a * 255)),
		A: uint8(math.Round(a * 255)),
	}
}

// Flood fills region of dst with c.
func Flood(dst *pixmap.Pixmap, region image.Rectangle, c color.RGBA) {
	if dst == nil {
		return
	}
	dst.Fill(region, c)
}

// Tile replicates the cell rectangle of src across region of dst. The cell's
// top-left corner is the tiling origin.
func Tile(src, dst *pixmap.Pixmap, cell, region image.Rectangle) {
	if src == nil || dst == nil {
		return
	}
	cell = cell.Intersect(src.Bounds())
	region = region.Intersect(dst.Bounds())
	if cell.Empty() || region.Empty() {
		return
	}

	cw, ch := cell.Dx(), cell.Dy()
	s := src.Data()
	d := dst.Data()

	for y := region.Min.Y; y < region.Max.Y; y++ {
		sy := cell.Min.Y + mod(y-cell.Min.Y, ch)
		for x := region.Min.X; x < region.Max.X; x++ {
			sx := cell.Min.X + mod(x-cell.Min.X, cw)
			si := src.Offset(sx, sy)
			di := dst.Offset(x, y)
			copy(d[di:di+4], s[si:si+4])
		}
	}
}

// mod returns the non-negative remainder of a / n.
func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
