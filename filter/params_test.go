package filter

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/glass/rgb"
)

func TestDefaultParamsValid(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Errorf("DefaultParams().Validate() = %v, want nil", err)
	}
}

func TestValidateOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Params)
	}{
		{"blur low", func(p *Params) { p.BlurRadius = 0.5 }},
		{"blur high", func(p *Params) { p.BlurRadius = 11 }},
		{"distortion x", func(p *Params) { p.Distortion.X = 0.6 }},
		{"distortion y", func(p *Params) { p.Distortion.Y = -0.1 }},
		{"noise scale", func(p *Params) { p.NoiseScale = 101 }},
		{"stripe size", func(p *Params) { p.StripeSize = 0 }},
		{"tint intensity", func(p *Params) { p.TintIntensity = 1.5 }},
		{"tint color", func(p *Params) { p.TintColor = rgb.Color{R: 2} }},
		{"nan", func(p *Params) { p.NoiseScale = math.NaN() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.modify(&p)
			err := p.Validate()
			if !errors.Is(err, ErrOutOfRange) {
				t.Errorf("Validate() = %v, want ErrOutOfRange", err)
			}
			if err := p.Clamp().Validate(); err != nil {
				t.Errorf("Clamp().Validate() = %v, want nil", err)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	p := Params{
		ID:            "keep",
		BlurRadius:    -4,
		Distortion:    Distortion{X: 3, Y: math.NaN()},
		NoiseScale:    500,
		StripeSize:    0.2,
		TintColor:     rgb.Color{R: -1, G: 0.5, B: 9},
		TintIntensity: 7,
	}

	got := p.Clamp()
	want := Params{
		ID:            "keep",
		BlurRadius:    MinBlurRadius,
		Distortion:    Distortion{X: MaxDistortion, Y: MinDistortion},
		NoiseScale:    MaxNoiseScale,
		StripeSize:    MinStripeSize,
		TintColor:     rgb.Color{R: 0, G: 0.5, B: 1},
		TintIntensity: MaxTintIntensity,
	}
	if got != want {
		t.Errorf("Clamp() = %+v, want %+v", got, want)
	}

	// In-range values pass through untouched.
	if d := DefaultParams(); d.Clamp() != d {
		t.Errorf("Clamp() changed in-range params: %+v", d.Clamp())
	}
}

func TestBorder(t *testing.T) {
	p := DefaultParams()
	p.TintColor = rgb.FromHex("#336699")
	if got, want := p.Border(), "rgba(51, 102, 153, 0.5)"; got != want {
		t.Errorf("Border() = %q, want %q", got, want)
	}
}
