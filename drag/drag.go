// Package drag moves a surface by pointer drag.
//
// A Controller tracks one press-move-release gesture at a time. The surface
// translates horizontally without bound; vertically it may never move above
// the top of its containing page, so its translation satisfies
// dy >= -top where top is the surface's top offset captured at Attach.
package drag

import (
	"math"

	"github.com/gogpu/glass/internal/logx"
	"github.com/gogpu/glass/pointer"
)

// Point is a 2D position or offset.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Surface is the element a Controller moves.
type Surface interface {
	// Translate sets the surface translation relative to its layout position.
	Translate(dx, dy float64)

	// TopOffset returns the vertical distance from the top of the containing
	// page to the surface's layout position.
	TopOffset() float64
}

// Source delivers pointer events. *pointer.Dispatcher implements it.
type Source interface {
	OnDown(target pointer.Target, fn pointer.HandlerFunc) pointer.Handle
	OnMove(fn pointer.HandlerFunc) pointer.Handle
	OnUp(fn pointer.HandlerFunc) pointer.Handle
}

// State is a snapshot of the controller.
type State struct {
	// Engaged is true between pointer-down and pointer-up.
	Engaged bool

	// Anchor is the pointer position at pointer-down.
	Anchor Point

	// Committed is the offset as of the last completed gesture.
	Committed Point

	// Live is the offset currently applied to the surface.
	Live Point
}

// Controller is the drag state machine for one surface.
type Controller struct {
	state   State
	top     float64
	surface Surface
	handles []pointer.Handle
}

// New returns a detached controller with zero offset.
func New() *Controller {
	return &Controller{}
}

// Attach subscribes to src and starts moving surface. Down events are taken
// only when they target surface itself. Attaching an already attached
// controller detaches it first. Nil arguments leave the controller detached.
func (c *Controller) Attach(src Source, surface Surface) {
	c.Detach()
	if src == nil || surface == nil {
		logx.Logger().Debug("glass: drag attach skipped", "reason", "nil source or surface")
		return
	}

	c.surface = surface
	c.top = surface.TopOffset()
	c.handles = append(c.handles,
		src.OnDown(surface, c.down),
		src.OnMove(c.move),
		src.OnUp(c.up),
	)
	logx.Logger().Debug("glass: drag attached", "top", c.top)
}

// Detach removes every registration and ends any gesture in progress. The
// committed offset is kept and reused by the next Attach.
func (c *Controller) Detach() {
	for _, h := range c.handles {
		h.Remove()
	}
	c.handles = c.handles[:0]
	if c.state.Engaged {
		c.state.Engaged = false
		c.state.Live = c.state.Committed
		c.surface.Translate(c.state.Live.X, c.state.Live.Y)
	}
	c.surface = nil
}

// Attached reports whether the controller is listening to a source.
func (c *Controller) Attached() bool {
	return c.surface != nil
}

// State returns the current controller state.
func (c *Controller) State() State {
	return c.state
}

// Offset returns the translation currently applied to the surface.
func (c *Controller) Offset() Point {
	return c.state.Live
}

// down engages the gesture. A second press while engaged re-anchors the
// gesture on top of the live offset.
func (c *Controller) down(ev pointer.Event) {
	if c.state.Engaged {
		c.state.Committed = c.state.Live
	}
	c.state.Engaged = true
	c.state.Anchor = Point{ev.X, ev.Y}
	logx.Logger().Debug("glass: drag start", "x", ev.X, "y", ev.Y)
}

func (c *Controller) move(ev pointer.Event) {
	if !c.state.Engaged {
		return
	}
	c.state.Live = c.offsetAt(Point{ev.X, ev.Y})
	c.surface.Translate(c.state.Live.X, c.state.Live.Y)
}

func (c *Controller) up(pointer.Event) {
	if !c.state.Engaged {
		return
	}
	c.state.Engaged = false
	c.state.Committed = c.state.Live
	logx.Logger().Debug("glass: drag end", "dx", c.state.Committed.X, "dy", c.state.Committed.Y)
}

// offsetAt returns the translation for pointer position p during a gesture.
func (c *Controller) offsetAt(p Point) Point {
	d := p.Sub(c.state.Anchor).Add(c.state.Committed)
	d.Y = math.Max(d.Y, -c.top)
	return d
}
