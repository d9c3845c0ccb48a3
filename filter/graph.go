package filter

import (
	"github.com/gogpu/glass/internal/effect"
	"github.com/gogpu/glass/internal/logx"
	"github.com/gogpu/glass/rgb"
)

// Named stage outputs.
const (
	ResultStripeClear = "stripe-clear"
	ResultStripeInk   = "stripe-ink"
	ResultStripe      = "stripe"
	ResultStripes     = "stripes"
	ResultDisplace    = "displace"
	ResultGlass       = "glass"
	ResultBlur        = "blur"
	ResultNoise       = "noise"
	ResultNoisy       = "noisy-src"
	ResultCombined    = "combined"
	ResultTinted      = "tinted"
)

// Fixed pipeline constants.
const (
	// RegionSize is the side of the square filter region. It leaves room for
	// displaced content regardless of the surface size.
	RegionSize = 400

	GlassScale     = 23
	BackgroundBlur = 4
	NoiseOctaves   = 4
	NoiseSeed      = 6
	StageCount     = 11

	// BorderOpacity is the alpha of the tint-colored surface border.
	BorderOpacity = 0.5
)

// Graph is a built filter pipeline bound to an identifier.
type Graph struct {
	// ID is the identifier surfaces reference the graph by.
	ID string

	// Region is the filter region in user space.
	Region Region

	Stages []Stage
}

// Build constructs the glass pipeline for p. Out-of-range fields are clamped.
// Build keeps no state between calls.
func Build(p Params) *Graph {
	p = p.Clamp()
	s := p.StripeSize

	g := &Graph{
		ID:     p.ID,
		Region: Region{Width: RegionSize, Height: RegionSize},
		Stages: []Stage{
			FloodStage{
				Color:  rgb.Black,
				Region: Region{X: 0, Width: s, Height: RegionSize},
				Out:    ResultStripeClear,
			},
			FloodStage{
				Color:   rgb.Black,
				Opacity: 1,
				Region:  Region{X: s, Width: s, Height: RegionSize},
				Out:     ResultStripeInk,
			},
			CompositeStage{In: ResultStripeInk, In2: ResultStripeClear, Operator: OperatorOver, Out: ResultStripe},
			TileStage{In: ResultStripe, Out: ResultStripes},
			BlurStage{In: ResultStripes, StdDev: p.BlurRadius, Out: ResultDisplace},
			DisplaceStage{
				In:       SourceGraphic,
				Map:      ResultDisplace,
				Scale:    GlassScale,
				XChannel: ChannelA,
				YChannel: ChannelA,
				Out:      ResultGlass,
			},
			BlurStage{In: SourceGraphic, StdDev: BackgroundBlur, Out: ResultBlur},
			TurbulenceStage{
				Type:      FractalNoise,
				BaseFreqX: p.Distortion.X,
				BaseFreqY: p.Distortion.Y,
				Octaves:   NoiseOctaves,
				Seed:      NoiseSeed,
				Out:       ResultNoise,
			},
			DisplaceStage{
				In:       ResultBlur,
				Map:      ResultNoise,
				Scale:    p.NoiseScale,
				XChannel: ChannelA,
				YChannel: ChannelA,
				Out:      ResultNoisy,
			},
			CompositeStage{In: ResultNoisy, In2: ResultGlass, Operator: OperatorLighter, Out: ResultCombined},
			ColorMatrixStage{In: ResultCombined, Matrix: TintMatrix(p.TintColor, p.TintIntensity), Out: ResultTinted},
		},
	}

	logx.Logger().Debug("glass: built filter graph", "id", g.ID, "stages", len(g.Stages))
	return g
}

// TintMatrix returns the diagonal matrix whose channel multipliers are
// 1 - intensity + intensity*channel. Alpha is left unchanged.
func TintMatrix(tint rgb.Color, intensity float64) Matrix {
	tint = tint.Clamp()
	intensity = clamp(intensity, MinTintIntensity, MaxTintIntensity)
	mul := func(c float64) float64 { return 1 - intensity + intensity*c }
	return effect.Diagonal(mul(tint.R), mul(tint.G), mul(tint.B), 1)
}

// Output returns the name of the final stage output.
func (g *Graph) Output() string {
	if len(g.Stages) == 0 {
		return SourceGraphic
	}
	return g.Stages[len(g.Stages)-1].Result()
}

// Ref returns the reference a surface uses to bind the graph.
func (g *Graph) Ref() string {
	return "url(#" + g.ID + ")"
}

// Equal reports whether g and o are structurally identical: same identifier,
// region, stage order and attribute values.
func (g *Graph) Equal(o *Graph) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.ID != o.ID || g.Region != o.Region || len(g.Stages) != len(o.Stages) {
		return false
	}
	for i := range g.Stages {
		if g.Stages[i] != o.Stages[i] {
			return false
		}
	}
	return true
}
