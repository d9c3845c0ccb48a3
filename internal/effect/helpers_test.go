package effect

import (
	"image/color"

	"github.com/gogpu/glass/internal/pixmap"
)

// Test helper functions shared across effect tests.

// filled creates a pixmap with every pixel set to c.
func filled(w, h int, c color.RGBA) *pixmap.Pixmap {
	p := pixmap.New(w, h)
	p.Fill(p.Bounds(), c)
	return p
}

// near reports whether two bytes differ by at most tol.
func near(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d <= tol
}

var (
	opaqueBlack = color.RGBA{A: 255}
	opaqueWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)
