package filter

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/gogpu/glass/rgb"
)

// Parameter ranges.
const (
	MinBlurRadius = 1.0
	MaxBlurRadius = 10.0

	MinDistortion = 0.0
	MaxDistortion = 0.5

	MinNoiseScale = 0.0
	MaxNoiseScale = 100.0

	MinStripeSize = 1.0
	MaxStripeSize = 100.0

	MinTintIntensity = 0.0
	MaxTintIntensity = 1.0
)

// Distortion is the base frequency of the turbulence noise.
type Distortion struct {
	X float64 `validate:"gte=0,lte=0.5"`
	Y float64 `validate:"gte=0,lte=0.5"`
}

// Params is the full parameter set of one glass panel.
type Params struct {
	// ID binds the built graph to exactly one surface.
	ID string

	// BlurRadius softens the stripe displacement map, in [1, 10].
	BlurRadius float64 `validate:"gte=1,lte=10"`

	Distortion Distortion

	// NoiseScale is the secondary displacement magnitude, in [0, 100].
	NoiseScale float64 `validate:"gte=0,lte=100"`

	// StripeSize is the stripe width in pixels, in [1, 100].
	StripeSize float64 `validate:"gte=1,lte=100"`

	TintColor rgb.Color

	// TintIntensity blends between no tint (0) and full tint (1).
	TintIntensity float64 `validate:"gte=0,lte=1"`
}

// DefaultParams returns the parameters a panel starts with.
func DefaultParams() Params {
	return Params{
		BlurRadius:    2,
		Distortion:    Distortion{X: 0.05, Y: 0.1},
		NoiseScale:    23,
		StripeSize:    10,
		TintColor:     rgb.White,
		TintIntensity: 0.5,
	}
}

var validate = validator.New()

// Validate reports fields outside their declared ranges. The error wraps
// ErrOutOfRange.
func (p Params) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %w", ErrOutOfRange, err)
	}
	if p.TintColor != p.TintColor.Clamp() {
		return fmt.Errorf("%w: tint color %+v", ErrOutOfRange, p.TintColor)
	}
	return nil
}

// Clamp returns a copy with every numeric field restricted to its range.
// NaN clamps to the lower bound.
func (p Params) Clamp() Params {
	p.BlurRadius = clamp(p.BlurRadius, MinBlurRadius, MaxBlurRadius)
	p.Distortion.X = clamp(p.Distortion.X, MinDistortion, MaxDistortion)
	p.Distortion.Y = clamp(p.Distortion.Y, MinDistortion, MaxDistortion)
	p.NoiseScale = clamp(p.NoiseScale, MinNoiseScale, MaxNoiseScale)
	p.StripeSize = clamp(p.StripeSize, MinStripeSize, MaxStripeSize)
	p.TintColor = p.TintColor.Clamp()
	p.TintIntensity = clamp(p.TintIntensity, MinTintIntensity, MaxTintIntensity)
	return p
}

// Border returns the surface border color: the tint at 50% opacity.
func (p Params) Border() string {
	return p.TintColor.CSS(BorderOpacity)
}

func clamp(v, lo, hi float64) float64 {
	if !(v >= lo) {
		return lo
	}
	return math.Min(v, hi)
}
