package effect

import (
	"image/color"
	"testing"

	"github.com/gogpu/glass/internal/pixmap"
)

func TestOperatorString(t *testing.T) {
	if OperatorOver.String() != "over" || OperatorLighter.String() != "lighter" {
		t.Errorf("operator names = %q, %q", OperatorOver, OperatorLighter)
	}
	if Operator(9).String() != "unknown" {
		t.Errorf("Operator(9) = %q", Operator(9))
	}
}

func TestCompositeOver(t *testing.T) {
	tests := []struct {
		name    string
		in, in2 color.RGBA
		want    color.RGBA
	}{
		{"opaque over clear", opaqueBlack, color.RGBA{}, opaqueBlack},
		{"clear over opaque", color.RGBA{}, opaqueWhite, opaqueWhite},
		{"half over white", color.RGBA{A: 128}, opaqueWhite, color.RGBA{R: 127, G: 127, B: 127, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := filled(1, 1, tt.in)
			in2 := filled(1, 1, tt.in2)
			dst := pixmap.New(1, 1)

			Composite(in, in2, dst, dst.Bounds(), OperatorOver)

			got := dst.RGBA(0, 0)
			if !near(got.R, tt.want.R, 1) || !near(got.A, tt.want.A, 1) {
				t.Errorf("over = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompositeLighter(t *testing.T) {
	in := filled(1, 1, color.RGBA{R: 100, G: 200, B: 10, A: 200})
	in2 := filled(1, 1, color.RGBA{R: 100, G: 100, B: 10, A: 100})
	dst := pixmap.New(1, 1)

	Composite(in, in2, dst, dst.Bounds(), OperatorLighter)

	want := color.RGBA{R: 200, G: 255, B: 20, A: 255}
	if got := dst.RGBA(0, 0); got != want {
		t.Errorf("lighter = %v, want %v", got, want)
	}
}

func TestCompositeMismatchedSizes(t *testing.T) {
	dst := pixmap.New(2, 2)
	Composite(filled(1, 1, opaqueWhite), filled(2, 2, opaqueWhite), dst, dst.Bounds(), OperatorOver)
	if dst.RGBA(0, 0).A != 0 {
		t.Error("mismatched sizes should be ignored")
	}
}
