// Package rgb converts hexadecimal color strings to normalized RGB triplets.
package rgb

import (
	"fmt"
	"image/color"
	"math"
)

// Color is an RGB triplet with each channel in the range [0, 1].
type Color struct {
	R, G, B float64
}

// Common colors.
var (
	Black = Color{}
	White = Color{R: 1, G: 1, B: 1}
)

// FromHex parses a color in the form "RRGGBB" or "#RRGGBB" (case-insensitive).
//
// Any other input, including the short "RGB" form and forms carrying alpha,
// yields Black. This is a fallback value, not an error signal.
func FromHex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return Black
	}

	var v [3]uint8
	for i := range v {
		hi, ok1 := nibble(hex[2*i])
		lo, ok2 := nibble(hex[2*i+1])
		if !ok1 || !ok2 {
			return Black
		}
		v[i] = hi<<4 | lo
	}

	return Color{
		R: float64(v[0]) / 255,
		G: float64(v[1]) / 255,
		B: float64(v[2]) / 255,
	}
}

// nibble decodes one hex digit.
func nibble(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// Clamp restricts every channel to [0, 1]. NaN becomes 0.
func (c Color) Clamp() Color {
	return Color{R: unit(c.R), G: unit(c.G), B: unit(c.B)}
}

// Hex formats the color as "#rrggbb".
func (c Color) Hex() string {
	r, g, b := c.bytes()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// CSS formats the color as an rgba() string with the given alpha.
func (c Color) CSS(alpha float64) string {
	r, g, b := c.bytes()
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", r, g, b, unit(alpha))
}

// NRGBA converts the color to a non-premultiplied stdlib color.
func (c Color) NRGBA(alpha float64) color.NRGBA {
	r, g, b := c.bytes()
	return color.NRGBA{R: r, G: g, B: b, A: to8(unit(alpha))}
}

func (c Color) bytes() (r, g, b uint8) {
	c = c.Clamp()
	return to8(c.R), to8(c.G), to8(c.B)
}

func to8(v float64) uint8 {
	return uint8(math.Round(v * 255))
}

func unit(v float64) float64 {
	if v > 0 {
		return math.Min(v, 1)
	}
	return 0
}
