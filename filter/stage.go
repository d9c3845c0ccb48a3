package filter

import (
	"github.com/gogpu/glass/internal/effect"
	"github.com/gogpu/glass/rgb"
)

// SourceGraphic names the surface content a graph is applied to.
const SourceGraphic = "SourceGraphic"

// Channel selects a displacement map channel.
type Channel = effect.Channel

// Displacement map channels.
const (
	ChannelR = effect.ChannelR
	ChannelG = effect.ChannelG
	ChannelB = effect.ChannelB
	ChannelA = effect.ChannelA
)

// Operator is a compositing operator.
type Operator = effect.Operator

// Compositing operators.
const (
	OperatorOver    = effect.OperatorOver
	OperatorLighter = effect.OperatorLighter
)

// NoiseType selects fractal noise or turbulence.
type NoiseType = effect.NoiseType

// Noise types.
const (
	FractalNoise = effect.FractalNoise
	Turbulence   = effect.Turbulence
)

// Matrix is a 4x5 row-major color matrix in normalized units.
type Matrix = effect.Matrix

// Kind identifies a stage variant.
type Kind uint8

// Stage kinds.
const (
	KindFlood Kind = iota
	KindTile
	KindBlur
	KindDisplace
	KindTurbulence
	KindComposite
	KindColorMatrix
)

// String returns the SVG primitive name of the kind.
func (k Kind) String() string {
	switch k {
	case KindFlood:
		return "feFlood"
	case KindTile:
		return "feTile"
	case KindBlur:
		return "feGaussianBlur"
	case KindDisplace:
		return "feDisplacementMap"
	case KindTurbulence:
		return "feTurbulence"
	case KindComposite:
		return "feComposite"
	case KindColorMatrix:
		return "feColorMatrix"
	default:
		return "unknown"
	}
}

// Stage is one typed record of a filter graph. Every stage stores its output
// under Result; Inputs lists the names it consumes, in order.
type Stage interface {
	Kind() Kind
	Result() string
	Inputs() []string
}

// Region is a rectangle in filter user space.
type Region struct {
	X, Y, Width, Height float64
}

// FloodStage fills Region with Color at Opacity.
type FloodStage struct {
	Color   rgb.Color
	Opacity float64
	Region  Region
	Out     string
}

// TileStage replicates the subregion of In across the filter region.
type TileStage struct {
	In  string
	Out string
}

// BlurStage applies a Gaussian blur with standard deviation StdDev.
type BlurStage struct {
	In     string
	StdDev float64
	Out    string
}

// DisplaceStage warps In by the Map channels XChannel and YChannel.
type DisplaceStage struct {
	In       string
	Map      string
	Scale    float64
	XChannel Channel
	YChannel Channel
	Out      string
}

// TurbulenceStage generates Perlin noise.
type TurbulenceStage struct {
	Type      NoiseType
	BaseFreqX float64
	BaseFreqY float64
	Octaves   int
	Seed      int64
	Stitch    bool
	Out       string
}

// CompositeStage combines In over In2 with Operator.
type CompositeStage struct {
	In       string
	In2      string
	Operator Operator
	Out      string
}

// ColorMatrixStage transforms In by Matrix.
type ColorMatrixStage struct {
	In     string
	Matrix Matrix
	Out    string
}

func (s FloodStage) Kind() Kind       { return KindFlood }
func (s FloodStage) Result() string   { return s.Out }
func (s FloodStage) Inputs() []string { return nil }

func (s TileStage) Kind() Kind       { return KindTile }
func (s TileStage) Result() string   { return s.Out }
func (s TileStage) Inputs() []string { return []string{s.In} }

func (s BlurStage) Kind() Kind       { return KindBlur }
func (s BlurStage) Result() string   { return s.Out }
func (s BlurStage) Inputs() []string { return []string{s.In} }

func (s DisplaceStage) Kind() Kind       { return KindDisplace }
func (s DisplaceStage) Result() string   { return s.Out }
func (s DisplaceStage) Inputs() []string { return []string{s.In, s.Map} }

func (s TurbulenceStage) Kind() Kind       { return KindTurbulence }
func (s TurbulenceStage) Result() string   { return s.Out }
func (s TurbulenceStage) Inputs() []string { return nil }

func (s CompositeStage) Kind() Kind       { return KindComposite }
func (s CompositeStage) Result() string   { return s.Out }
func (s CompositeStage) Inputs() []string { return []string{s.In, s.In2} }

func (s ColorMatrixStage) Kind() Kind       { return KindColorMatrix }
func (s ColorMatrixStage) Result() string   { return s.Out }
func (s ColorMatrixStage) Inputs() []string { return []string{s.In} }
