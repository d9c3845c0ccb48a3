// Package pixmap provides the premultiplied RGBA8 buffer used by the filter
// stages.
package pixmap

import (
	"image"
	"image/color"
	"image/draw"
)

// Pixmap is a rectangular buffer of premultiplied RGBA pixels whose origin is
// always (0, 0).
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA, 4 bytes per pixel, premultiplied
}

// New creates a transparent pixmap with the given dimensions.
// Negative dimensions are treated as zero.
func New(width, height int) *Pixmap {
	width = max(width, 0)
	height = max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// FromImage copies img into a new pixmap. The image's minimum point maps to
// the pixmap origin.
func FromImage(img image.Image) *Pixmap {
	b := img.Bounds()
	p := New(b.Dx(), b.Dy())
	dst := &image.RGBA{Pix: p.data, Stride: p.width * 4, Rect: image.Rect(0, 0, p.width, p.height)}
	draw.Draw(dst, dst.Rect, img, b.Min, draw.Src)
	return p
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Bounds returns the pixmap rectangle.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// Data returns the raw premultiplied pixel data.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Offset returns the index of pixel (x, y) in Data, or -1 when outside.
func (p *Pixmap) Offset(x, y int) int {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return -1
	}
	return (y*p.width + x) * 4
}

// RGBA returns the premultiplied pixel at (x, y). Pixels outside the buffer
// are transparent black.
func (p *Pixmap) RGBA(x, y int) color.RGBA {
	i := p.Offset(x, y)
	if i < 0 {
		return color.RGBA{}
	}
	return color.RGBA{R: p.data[i], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// SetRGBA stores a premultiplied pixel. Writes outside the buffer are ignored.
func (p *Pixmap) SetRGBA(x, y int, c color.RGBA) {
	i := p.Offset(x, y)
	if i < 0 {
		return
	}
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// Fill sets every pixel inside r to c.
func (p *Pixmap) Fill(r image.Rectangle, c color.RGBA) {
	r = r.Intersect(p.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			i := (y*p.width + x) * 4
			p.data[i+0] = c.R
			p.data[i+1] = c.G
			p.data[i+2] = c.B
			p.data[i+3] = c.A
		}
	}
}

// ClearOutside sets every pixel not inside r to transparent black.
func (p *Pixmap) ClearOutside(r image.Rectangle) {
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			if (image.Point{X: x, Y: y}).In(r) {
				continue
			}
			i := (y*p.width + x) * 4
			p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3] = 0, 0, 0, 0
		}
	}
}

// ToImage copies the pixmap into a new *image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(p.Bounds())
	copy(img.Pix, p.data)
	return img
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	c := New(p.width, p.height)
	copy(c.data, p.data)
	return c
}
