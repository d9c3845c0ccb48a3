package filter

import (
	"github.com/gogpu/glass/internal/logx"
	"github.com/gogpu/glass/rgb"
)

// Parameter keys recognized by ParamsFromSource.
const (
	KeyBlurRadius    = "blurRadius"
	KeyDistortionX   = "distortionX"
	KeyDistortionY   = "distortionY"
	KeyNoiseScale    = "noiseScale"
	KeyStripeSize    = "stripeSize"
	KeyTintColor     = "tintColor"
	KeyTintIntensity = "tintIntensity"
)

// Source supplies parameter values by key. *viper.Viper satisfies it.
type Source interface {
	IsSet(key string) bool
	GetFloat64(key string) float64
	GetString(key string) string
}

// ParamsFromSource overlays every key set in src on DefaultParams and
// assigns id. Out-of-range values are logged and clamped; a malformed tint
// color falls back to black.
func ParamsFromSource(src Source, id string) Params {
	p := DefaultParams()
	p.ID = id
	if src == nil {
		return p
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{KeyBlurRadius, &p.BlurRadius},
		{KeyDistortionX, &p.Distortion.X},
		{KeyDistortionY, &p.Distortion.Y},
		{KeyNoiseScale, &p.NoiseScale},
		{KeyStripeSize, &p.StripeSize},
		{KeyTintIntensity, &p.TintIntensity},
	}
	for _, f := range floats {
		if src.IsSet(f.key) {
			*f.dst = src.GetFloat64(f.key)
		}
	}
	if src.IsSet(KeyTintColor) {
		p.TintColor = rgb.FromHex(src.GetString(KeyTintColor))
	}

	if err := p.Validate(); err != nil {
		logx.Logger().Warn("glass: clamping parameters", "id", id, "err", err)
		p = p.Clamp()
	}
	return p
}
