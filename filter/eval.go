package filter

import (
	"image"
	"math"

	"github.com/gogpu/glass/internal/cache"
	"github.com/gogpu/glass/internal/effect"
	"github.com/gogpu/glass/internal/logx"
	"github.com/gogpu/glass/internal/pixmap"
)

// result is a stage output together with its primitive subregion.
type result struct {
	pm     *pixmap.Pixmap
	region image.Rectangle
}

// Apply runs the graph on src and returns the filtered image. The filter
// region is anchored at the minimum point of src; pixels outside it are
// transparent.
func (g *Graph) Apply(src image.Image) *image.RGBA {
	out := g.apply(pixmap.FromImage(src))
	img := out.ToImage()
	img.Rect = img.Rect.Add(src.Bounds().Min)
	return img
}

// apply evaluates every stage in order following SVG subregion rules.
func (g *Graph) apply(in *pixmap.Pixmap) *pixmap.Pixmap {
	filterRegion := g.Region.rect().Intersect(in.Bounds())

	source := result{pm: in.Clone(), region: filterRegion}
	source.pm.ClearOutside(filterRegion)

	results := map[string]result{SourceGraphic: source}
	prev := source

	// lookup resolves an input name. Empty or unknown names refer to the
	// previous stage output, as in SVG.
	lookup := func(name string) (result, bool) {
		if r, ok := results[name]; ok {
			return r, name == SourceGraphic
		}
		return prev, prev.pm == source.pm
	}

	// subregion is the default primitive subregion: the union of the inputs,
	// or the whole filter region when any input is a standard input.
	subregion := func(inputs ...string) image.Rectangle {
		var r image.Rectangle
		for _, name := range inputs {
			res, standard := lookup(name)
			if standard {
				return filterRegion
			}
			r = r.Union(res.region)
		}
		return r.Intersect(filterRegion)
	}

	for _, st := range g.Stages {
		dst := pixmap.New(in.Width(), in.Height())
		var region image.Rectangle

		switch s := st.(type) {
		case FloodStage:
			region = s.Region.rect().Intersect(filterRegion)
			effect.Flood(dst, region, effect.Premultiply(s.Color.R, s.Color.G, s.Color.B, s.Opacity))

		case TileStage:
			cell, _ := lookup(s.In)
			region = filterRegion
			effect.Tile(cell.pm, dst, cell.region, region)

		case BlurStage:
			src, _ := lookup(s.In)
			region = subregion(s.In)
			effect.Blur(src.pm, dst, region, s.StdDev)

		case DisplaceStage:
			src, _ := lookup(s.In)
			dmap, _ := lookup(s.Map)
			region = subregion(s.In, s.Map)
			effect.Displace(src.pm, dmap.pm, dst, src.region, region, s.Scale, s.XChannel, s.YChannel)

		case TurbulenceStage:
			region = filterRegion
			copy(dst.Data(), turbulence(s, region, in.Width(), in.Height()).Data())

		case CompositeStage:
			a, _ := lookup(s.In)
			b, _ := lookup(s.In2)
			region = subregion(s.In, s.In2)
			effect.Composite(a.pm, b.pm, dst, region, s.Operator)

		case ColorMatrixStage:
			src, _ := lookup(s.In)
			region = subregion(s.In)
			effect.ApplyMatrix(src.pm, dst, region, s.Matrix)

		default:
			logx.Logger().Warn("glass: skipping unknown stage", "id", g.ID, "kind", st.Kind())
			continue
		}

		prev = result{pm: dst, region: region}
		results[st.Result()] = prev
	}

	return prev.pm
}

// rect converts a user-space region to pixels, rounding each edge.
func (r Region) rect() image.Rectangle {
	return image.Rect(
		int(math.Round(r.X)),
		int(math.Round(r.Y)),
		int(math.Round(r.X+r.Width)),
		int(math.Round(r.Y+r.Height)),
	)
}

// Turbulence only depends on its attributes and the region, so lattices and
// rendered fields are shared between evaluations.
var (
	noiseCache = cache.New[int64, *effect.Noise](8)
	fieldCache = cache.New[fieldKey, *pixmap.Pixmap](16)
)

type fieldKey struct {
	stage         TurbulenceStage
	region        image.Rectangle
	width, height int
}

func noise(seed int64) *effect.Noise {
	return noiseCache.GetOrCreate(seed, func() *effect.Noise {
		return effect.NewNoise(seed)
	})
}

// turbulence returns the rendered noise field of s. The result is shared
// and must not be modified.
func turbulence(s TurbulenceStage, region image.Rectangle, width, height int) *pixmap.Pixmap {
	s.Out = ""
	key := fieldKey{stage: s, region: region, width: width, height: height}
	return fieldCache.GetOrCreate(key, func() *pixmap.Pixmap {
		pm := pixmap.New(width, height)
		noise(s.Seed).Render(pm, region, s.BaseFreqX, s.BaseFreqY, s.Octaves, s.Type)
		return pm
	})
}
