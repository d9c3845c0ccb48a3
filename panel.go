package glass

import (
	"image"
	"io"

	"github.com/google/uuid"

	"github.com/gogpu/glass/drag"
	"github.com/gogpu/glass/filter"
)

// Surface is the visual element a Panel renders into. It accepts a
// translation, a filter binding by reference and a border color. The panel
// only reads back the top offset, once per Mount.
type Surface interface {
	drag.Surface

	// SetFilter binds the filter referenced by ref, e.g. "url(#id)".
	SetFilter(ref string)

	// SetBorderColor sets the border color as an rgba() string.
	SetBorderColor(css string)
}

// Panel is a draggable glass panel. It owns one drag controller and one
// filter graph bound to its identifier.
//
// A Panel is not safe for concurrent use; drive it from the goroutine that
// dispatches pointer events.
type Panel struct {
	id      string
	params  filter.Params
	graph   *filter.Graph
	drag    *drag.Controller
	surface Surface
}

// NewPanel creates an unmounted panel. Without WithID the identifier is
// "glass-" followed by a random UUID.
func NewPanel(opts ...Option) *Panel {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == "" {
		o.id = "glass-" + uuid.NewString()
	}
	if o.source != nil {
		o.params = filter.ParamsFromSource(o.source, o.id)
	}

	p := &Panel{
		id:   o.id,
		drag: drag.New(),
	}
	p.rebuild(o.params)
	return p
}

// ID returns the panel identifier.
func (p *Panel) ID() string {
	return p.id
}

// Mount binds the filter and border to s and starts listening to src for
// drags on s. Mounting a mounted panel unmounts it first. A nil surface or
// source leaves the panel unmounted; Mount can be retried once both exist.
func (p *Panel) Mount(src drag.Source, s Surface) {
	p.Unmount()
	if src == nil || s == nil {
		Logger().Debug("glass: mount skipped", "id", p.id)
		return
	}

	p.surface = s
	p.bind()
	off := p.drag.Offset()
	s.Translate(off.X, off.Y)
	p.drag.Attach(src, s)
	Logger().Debug("glass: panel mounted", "id", p.id)
}

// Unmount releases every pointer registration. The drag offset and the
// filter parameters are kept.
func (p *Panel) Unmount() {
	if p.surface == nil {
		return
	}
	p.drag.Detach()
	p.surface = nil
	Logger().Debug("glass: panel unmounted", "id", p.id)
}

// Mounted reports whether the panel is bound to a surface.
func (p *Panel) Mounted() bool {
	return p.surface != nil
}

// SetParams rebuilds the filter graph from params and rebinds the surface.
// params.ID is replaced by the panel identifier. Out-of-range values are
// clamped.
func (p *Panel) SetParams(params filter.Params) {
	p.rebuild(params)
	if p.surface != nil {
		p.bind()
	}
}

// Reload reads parameters from src on top of the defaults and applies them
// as SetParams does.
func (p *Panel) Reload(src filter.Source) {
	p.SetParams(filter.ParamsFromSource(src, p.id))
}

func (p *Panel) rebuild(params filter.Params) {
	params.ID = p.id
	p.params = params.Clamp()
	p.graph = filter.Build(p.params)
}

func (p *Panel) bind() {
	p.surface.SetFilter(p.graph.Ref())
	p.surface.SetBorderColor(p.params.Border())
}

// Params returns the clamped parameters the current graph was built from.
func (p *Panel) Params() filter.Params {
	return p.params
}

// Graph returns the current filter graph. The graph is rebuilt, not
// modified, on parameter changes.
func (p *Panel) Graph() *filter.Graph {
	return p.graph
}

// Offset returns the drag translation currently applied to the surface.
func (p *Panel) Offset() drag.Point {
	return p.drag.Offset()
}

// Dragging reports whether a drag gesture is in progress.
func (p *Panel) Dragging() bool {
	return p.drag.State().Engaged
}

// Border returns the surface border color.
func (p *Panel) Border() string {
	return p.params.Border()
}

// bounded is implemented by surfaces that know their rectangle, like Frame.
type bounded interface {
	Rect() image.Rectangle
}

// bounds returns the surface rectangle, or ok == false when the panel is not
// mounted on a bounded surface.
func (p *Panel) bounds() (image.Rectangle, bool) {
	b, ok := p.surface.(bounded)
	if !ok {
		return image.Rectangle{}, false
	}
	return b.Rect(), true
}

// WriteSVG writes a standalone width x height SVG document holding the
// filter definition and the panel surface bound to it. The surface covers
// the whole document unless the panel is mounted on a bounded surface.
func (p *Panel) WriteSVG(w io.Writer, width, height int) error {
	region := filter.Region{Width: float64(width), Height: float64(height)}
	if r, ok := p.bounds(); ok {
		region = filter.Region{
			X:      float64(r.Min.X),
			Y:      float64(r.Min.Y),
			Width:  float64(r.Dx()),
			Height: float64(r.Dy()),
		}
	}
	return p.graph.WriteDocument(w, width, height, region, p.Border())
}
