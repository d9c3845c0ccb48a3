// Package backdrop produces the background images glass panels float over.
package backdrop

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // register JPEG decoding
	_ "image/png"  // register PNG decoding
	"math"
	"os"

	"golang.org/x/image/draw"
)

// Load decodes the image at path scaled to w x h. An empty path returns
// Pattern(w, h).
func Load(path string, w, h int) (*image.RGBA, error) {
	if path == "" {
		return Pattern(w, h), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("backdrop: open: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("backdrop: decode %s: %w", path, err)
	}
	return Scale(src, w, h), nil
}

// Scale resamples src to w x h with Catmull-Rom filtering.
func Scale(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Pattern returns an opaque diagonal gradient crossed by soft bands, which
// makes refraction easy to see.
func Pattern(w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	fw, fh := float64(max(w, 1)), float64(max(h, 1))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t := (float64(x)/fw + float64(y)/fh) / 2
			band := 0.5 + 0.5*math.Sin(float64(x+y)/12)
			dst.SetRGBA(x, y, color.RGBA{
				R: uint8(255 * (0.1 + 0.5*t)),
				G: uint8(255 * (0.2 + 0.4*band*t)),
				B: uint8(255 * (0.4 - 0.2*t + 0.2*band)),
				A: 255,
			})
		}
	}
	return dst
}
