package glass

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/glass/filter"
)

// Draw renders the panel onto dst at its translated position. bg is the
// content behind the panel; the filter region starts at the panel's top-left
// corner and is sampled from bg. dst is expected to already show bg.
//
// Draw does nothing unless the panel is mounted on a bounded surface such as
// a Frame.
func (p *Panel) Draw(dst draw.Image, bg image.Image) {
	r, ok := p.bounds()
	if !ok || r.Empty() {
		return
	}

	region := image.Rectangle{Min: r.Min, Max: r.Min.Add(image.Pt(filter.RegionSize, filter.RegionSize))}
	src := image.NewRGBA(region)
	draw.Draw(src, region, bg, region.Min, draw.Src)

	out := p.graph.Apply(src)
	draw.Draw(dst, r, out, r.Min, draw.Over)

	strokeRect(dst, r, p.params.TintColor.NRGBA(filter.BorderOpacity))
}

// strokeRect draws a one pixel outline just inside r.
func strokeRect(dst draw.Image, r image.Rectangle, c color.Color) {
	u := image.NewUniform(c)
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1),
		image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y+1, r.Min.X+1, r.Max.Y-1),
		image.Rect(r.Max.X-1, r.Min.Y+1, r.Max.X, r.Max.Y-1),
	}
	for _, e := range edges {
		draw.Draw(dst, e.Intersect(dst.Bounds()), u, image.Point{}, draw.Over)
	}
}
