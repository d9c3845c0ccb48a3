package filter

import (
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// WriteSVG writes the graph as an SVG <filter> element whose id is the graph
// identifier. The element belongs inside a <defs> block; surfaces bind to it
// with filter="url(#id)".
func (g *Graph) WriteSVG(w io.Writer) error {
	ew := &errWriter{w: w}
	g.encode(svg.New(ew))
	return ew.err
}

// encode emits the filter element and its primitives onto canvas.
func (g *Graph) encode(canvas *svg.SVG) {
	canvas.Filter(g.ID,
		`filterUnits="userSpaceOnUse"`,
		fmt.Sprintf(`x="%g"`, g.Region.X),
		fmt.Sprintf(`y="%g"`, g.Region.Y),
		fmt.Sprintf(`width="%g"`, g.Region.Width),
		fmt.Sprintf(`height="%g"`, g.Region.Height),
	)

	for _, st := range g.Stages {
		switch s := st.(type) {
		case FloodStage:
			canvas.FeFlood(svg.Filterspec{Result: s.Out}, s.Color.Hex(), s.Opacity, regionAttrs(s.Region)...)
		case TileStage:
			canvas.FeTile(svg.Filterspec{In: s.In, Result: s.Out}, "")
		case BlurStage:
			canvas.FeGaussianBlur(svg.Filterspec{In: s.In, Result: s.Out}, s.StdDev, s.StdDev)
		case DisplaceStage:
			canvas.FeDisplacementMap(svg.Filterspec{In: s.In, In2: s.Map, Result: s.Out},
				s.Scale, s.XChannel.String(), s.YChannel.String())
		case TurbulenceStage:
			writeTurbulence(canvas, s)
		case CompositeStage:
			writeComposite(canvas, s)
		case ColorMatrixStage:
			canvas.FeColorMatrix(svg.Filterspec{In: s.In, Result: s.Out}, [20]float64(s.Matrix))
		}
	}

	canvas.Fend()
}

// writeTurbulence writes an feTurbulence element. svgo rounds baseFrequency to
// two decimals, which zeroes small distortions.
func writeTurbulence(canvas *svg.SVG, s TurbulenceStage) {
	stitch := "noStitch"
	if s.Stitch {
		stitch = "stitch"
	}
	fmt.Fprintf(canvas.Writer,
		`<feTurbulence %stype="%s" baseFrequency="%g %g" numOctaves="%d" seed="%d" stitchTiles="%s" />`+"\n",
		fsattr(svg.Filterspec{Result: s.Out}), s.Type, s.BaseFreqX, s.BaseFreqY, s.Octaves, s.Seed, stitch)
}

// writeComposite writes an feComposite element. svgo replaces operators outside
// the SVG 1.1 set with over, so lighter is written directly.
func writeComposite(canvas *svg.SVG, s CompositeStage) {
	fs := svg.Filterspec{In: s.In, In2: s.In2, Result: s.Out}
	if s.Operator == OperatorOver {
		canvas.FeComposite(fs, s.Operator.String(), 0, 0, 0, 0)
		return
	}
	fmt.Fprintf(canvas.Writer, `<feComposite %soperator="%s" />`+"\n", fsattr(fs), s.Operator)
}

// fsattr renders the in, in2 and result attributes in svgo's layout.
func fsattr(fs svg.Filterspec) string {
	var b strings.Builder
	for _, a := range [...]struct{ name, value string }{
		{"in", fs.In},
		{"in2", fs.In2},
		{"result", fs.Result},
	} {
		if a.value != "" {
			fmt.Fprintf(&b, `%s="%s" `, a.name, a.value)
		}
	}
	return b.String()
}

func regionAttrs(r Region) []string {
	return []string{
		fmt.Sprintf(`x="%g"`, r.X),
		fmt.Sprintf(`y="%g"`, r.Y),
		fmt.Sprintf(`width="%g"`, r.Width),
		fmt.Sprintf(`height="%g"`, r.Height),
	}
}

// WriteDocument writes a standalone SVG document of width x height holding
// the filter definition and a surface rectangle at (x, y) bound to it, with
// the given border color.
func (g *Graph) WriteDocument(w io.Writer, width, height int, surface Region, border string) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	canvas.Start(width, height)
	canvas.Def()
	g.encode(canvas)
	canvas.DefEnd()
	canvas.Rect(int(surface.X), int(surface.Y), int(surface.Width), int(surface.Height),
		fmt.Sprintf(`filter="%s"`, g.Ref()),
		fmt.Sprintf(`fill="none" stroke="%s"`, border),
	)
	canvas.End()

	return ew.err
}

// errWriter keeps the first write error; svgo itself ignores them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = fmt.Errorf("filter: write svg: %w", err)
	}
	return n, nil
}
