package glass

import (
	"image"
	"math"
)

// Frame is an offscreen Surface: a rectangle laid out in a container, moved
// by a translation and carrying the filter binding and border color it was
// given. The zero value is an empty frame at the container origin.
type Frame struct {
	layout image.Rectangle
	dx, dy float64
	filter string
	border string
}

// NewFrame returns a frame laid out at r.
func NewFrame(r image.Rectangle) *Frame {
	return &Frame{layout: r.Canon()}
}

// Translate sets the translation relative to the layout position.
func (f *Frame) Translate(dx, dy float64) {
	f.dx, f.dy = dx, dy
}

// TopOffset returns the distance from the container top to the layout
// position.
func (f *Frame) TopOffset() float64 {
	return float64(f.layout.Min.Y)
}

// SetFilter binds the filter referenced by ref, e.g. "url(#glass-1)".
func (f *Frame) SetFilter(ref string) {
	f.filter = ref
}

// SetBorderColor sets the border color as an rgba() string.
func (f *Frame) SetBorderColor(css string) {
	f.border = css
}

// Layout returns the untranslated rectangle.
func (f *Frame) Layout() image.Rectangle {
	return f.layout
}

// Translation returns the current translation.
func (f *Frame) Translation() (dx, dy float64) {
	return f.dx, f.dy
}

// Rect returns the translated rectangle, rounded to whole pixels.
func (f *Frame) Rect() image.Rectangle {
	return f.layout.Add(image.Pt(int(math.Round(f.dx)), int(math.Round(f.dy))))
}

// Contains reports whether the point (x, y) lies inside the translated
// rectangle.
func (f *Frame) Contains(x, y float64) bool {
	minX := float64(f.layout.Min.X) + f.dx
	minY := float64(f.layout.Min.Y) + f.dy
	return x >= minX && x < minX+float64(f.layout.Dx()) &&
		y >= minY && y < minY+float64(f.layout.Dy())
}

// Filter returns the bound filter reference, or "" if none.
func (f *Frame) Filter() string {
	return f.filter
}

// Border returns the border color, or "" if none.
func (f *Frame) Border() string {
	return f.border
}
