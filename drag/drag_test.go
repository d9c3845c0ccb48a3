package drag

import (
	"testing"

	"github.com/gogpu/glass/pointer"
)

type fakeSurface struct {
	top    float64
	dx, dy float64
	calls  int
}

func (s *fakeSurface) Translate(dx, dy float64) {
	s.dx, s.dy = dx, dy
	s.calls++
}

func (s *fakeSurface) TopOffset() float64 { return s.top }

func drag(d *pointer.Dispatcher, target pointer.Target, from, to Point) {
	d.Dispatch(pointer.Event{Kind: pointer.Down, X: from.X, Y: from.Y, Target: target})
	d.Dispatch(pointer.Event{Kind: pointer.Move, X: to.X, Y: to.Y})
	d.Dispatch(pointer.Event{Kind: pointer.Up, X: to.X, Y: to.Y})
}

func TestControllerStartsIdle(t *testing.T) {
	c := New()
	if got := c.State(); got != (State{}) {
		t.Errorf("State() = %+v, want zero", got)
	}
	if c.Attached() {
		t.Error("new controller reports attached")
	}
}

func TestDragMovesSurface(t *testing.T) {
	d := pointer.NewDispatcher()
	s := &fakeSurface{top: 100}
	c := New()
	c.Attach(d, s)

	d.Dispatch(pointer.Event{Kind: pointer.Down, X: 50, Y: 50, Target: s})
	if !c.State().Engaged {
		t.Fatal("not engaged after down")
	}
	d.Dispatch(pointer.Event{Kind: pointer.Move, X: 60, Y: 60})

	if s.dx != 10 || s.dy != 10 {
		t.Errorf("translation = (%v, %v), want (10, 10)", s.dx, s.dy)
	}

	d.Dispatch(pointer.Event{Kind: pointer.Up, X: 60, Y: 60})
	st := c.State()
	if st.Engaged {
		t.Error("still engaged after up")
	}
	if st.Committed != (Point{10, 10}) {
		t.Errorf("Committed = %+v, want {10 10}", st.Committed)
	}
}

func TestDragAccumulates(t *testing.T) {
	d := pointer.NewDispatcher()
	s := &fakeSurface{top: 100}
	c := New()
	c.Attach(d, s)

	drag(d, s, Point{50, 50}, Point{60, 60})
	drag(d, s, Point{0, 0}, Point{5, -3})

	if got := c.Offset(); got != (Point{15, 7}) {
		t.Errorf("Offset() = %+v, want {15 7}", got)
	}
	if s.dx != 15 || s.dy != 7 {
		t.Errorf("translation = (%v, %v), want (15, 7)", s.dx, s.dy)
	}
}

func TestDragVerticalFloor(t *testing.T) {
	tests := []struct {
		name   string
		top    float64
		from   Point
		to     Point
		wantDY float64
	}{
		{"above page top", 40, Point{10, 100}, Point{10, 0}, -40},
		{"exactly at top", 40, Point{10, 100}, Point{10, 60}, -40},
		{"within page", 40, Point{10, 100}, Point{10, 80}, -20},
		{"downward", 40, Point{10, 100}, Point{10, 500}, 400},
		{"surface at page top", 0, Point{0, 10}, Point{0, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := pointer.NewDispatcher()
			s := &fakeSurface{top: tt.top}
			c := New()
			c.Attach(d, s)

			drag(d, s, tt.from, tt.to)
			if s.dy != tt.wantDY {
				t.Errorf("dy = %v, want %v", s.dy, tt.wantDY)
			}
			if s.dy < -tt.top {
				t.Errorf("dy = %v above floor %v", s.dy, -tt.top)
			}
		})
	}
}

func TestDragHorizontalUnbounded(t *testing.T) {
	d := pointer.NewDispatcher()
	s := &fakeSurface{top: 0}
	c := New()
	c.Attach(d, s)

	drag(d, s, Point{500, 0}, Point{-1000, 0})
	if s.dx != -1500 {
		t.Errorf("dx = %v, want -1500", s.dx)
	}
}

func TestFloorUsesTopCapturedAtAttach(t *testing.T) {
	d := pointer.NewDispatcher()
	s := &fakeSurface{top: 30}
	c := New()
	c.Attach(d, s)

	s.top = 500
	drag(d, s, Point{0, 100}, Point{0, 0})
	if s.dy != -30 {
		t.Errorf("dy = %v, want -30", s.dy)
	}
}

func TestMoveWithoutDownIgnored(t *testing.T) {
	d := pointer.NewDispatcher()
	s := &fakeSurface{top: 100}
	c := New()
	c.Attach(d, s)

	d.Dispatch(pointer.Event{Kind: pointer.Move, X: 80, Y: 80})
	d.Dispatch(pointer.Event{Kind: pointer.Up, X: 80, Y: 80})

	if s.calls != 0 {
		t.Errorf("Translate called %d times", s.calls)
	}
	if c.State() != (State{}) {
		t.Errorf("State() = %+v, want zero", c.State())
	}
}

func TestDownElsewhereIgnored(t *testing.T) {
	d := pointer.NewDispatcher()
	s := &fakeSurface{top: 100}
	c := New()
	c.Attach(d, s)

	other := &fakeSurface{}
	drag(d, other, Point{0, 0}, Point{30, 30})
	if s.calls != 0 || c.Offset() != (Point{}) {
		t.Errorf("surface moved by a press on another element: %+v", c.Offset())
	}
}

func TestClickWithoutMoveKeepsOffset(t *testing.T) {
	d := pointer.NewDispatcher()
	s := &fakeSurface{top: 100}
	c := New()
	c.Attach(d, s)

	drag(d, s, Point{0, 0}, Point{20, 20})
	d.Dispatch(pointer.Event{Kind: pointer.Down, X: 300, Y: 300, Target: s})
	d.Dispatch(pointer.Event{Kind: pointer.Up, X: 300, Y: 300})

	if got := c.Offset(); got != (Point{20, 20}) {
		t.Errorf("Offset() = %+v, want {20 20}", got)
	}
	if got := c.State().Committed; got != (Point{20, 20}) {
		t.Errorf("Committed = %+v, want {20 20}", got)
	}
}

func TestSecondDownReanchors(t *testing.T) {
	d := pointer.NewDispatcher()
	s := &fakeSurface{top: 100}
	c := New()
	c.Attach(d, s)

	d.Dispatch(pointer.Event{Kind: pointer.Down, X: 0, Y: 0, Target: s})
	d.Dispatch(pointer.Event{Kind: pointer.Move, X: 10, Y: 10})
	d.Dispatch(pointer.Event{Kind: pointer.Down, X: 100, Y: 100, Target: s})
	d.Dispatch(pointer.Event{Kind: pointer.Move, X: 105, Y: 105})
	d.Dispatch(pointer.Event{Kind: pointer.Up})

	if got := c.Offset(); got != (Point{15, 15}) {
		t.Errorf("Offset() = %+v, want {15 15}", got)
	}
}

func TestDetachRemovesListeners(t *testing.T) {
	d := pointer.NewDispatcher()
	s := &fakeSurface{top: 100}
	c := New()
	c.Attach(d, s)
	if d.Len() != 3 {
		t.Fatalf("registrations = %d, want 3", d.Len())
	}

	c.Detach()
	if d.Len() != 0 {
		t.Errorf("registrations after Detach = %d, want 0", d.Len())
	}
	if c.Attached() {
		t.Error("Attached() true after Detach")
	}

	drag(d, s, Point{0, 0}, Point{50, 50})
	if s.calls != 0 {
		t.Errorf("detached controller moved surface %d times", s.calls)
	}
}

func TestDetachMidGesture(t *testing.T) {
	d := pointer.NewDispatcher()
	s := &fakeSurface{top: 100}
	c := New()
	c.Attach(d, s)

	drag(d, s, Point{0, 0}, Point{5, 5})
	d.Dispatch(pointer.Event{Kind: pointer.Down, X: 0, Y: 0, Target: s})
	d.Dispatch(pointer.Event{Kind: pointer.Move, X: 40, Y: 40})
	c.Detach()

	st := c.State()
	if st.Engaged {
		t.Error("engaged after Detach")
	}
	if st.Live != (Point{5, 5}) || st.Committed != (Point{5, 5}) {
		t.Errorf("State() = %+v, want live and committed {5 5}", st)
	}
	if s.dx != 5 || s.dy != 5 {
		t.Errorf("translation = (%v, %v), want (5, 5)", s.dx, s.dy)
	}
}

func TestReattachDoesNotLeak(t *testing.T) {
	d := pointer.NewDispatcher()
	s := &fakeSurface{top: 100}
	c := New()

	for range 5 {
		c.Attach(d, s)
	}
	if d.Len() != 3 {
		t.Errorf("registrations after repeated Attach = %d, want 3", d.Len())
	}

	drag(d, s, Point{0, 0}, Point{7, 7})
	if s.calls != 1 {
		t.Errorf("Translate called %d times per move, want 1", s.calls)
	}
}

func TestReattachKeepsCommittedOffset(t *testing.T) {
	d := pointer.NewDispatcher()
	s := &fakeSurface{top: 100}
	c := New()
	c.Attach(d, s)
	drag(d, s, Point{0, 0}, Point{10, 10})

	c.Detach()
	c.Attach(d, s)
	drag(d, s, Point{0, 0}, Point{1, 1})

	if got := c.Offset(); got != (Point{11, 11}) {
		t.Errorf("Offset() = %+v, want {11 11}", got)
	}
}

func TestAttachNil(t *testing.T) {
	d := pointer.NewDispatcher()
	c := New()

	c.Attach(nil, &fakeSurface{})
	c.Attach(d, nil)
	if c.Attached() {
		t.Error("Attached() true after nil Attach")
	}
	if d.Len() != 0 {
		t.Errorf("registrations = %d, want 0", d.Len())
	}
}

func TestIndependentControllers(t *testing.T) {
	d := pointer.NewDispatcher()
	a := &fakeSurface{top: 100}
	b := &fakeSurface{top: 100}
	ca, cb := New(), New()
	ca.Attach(d, a)
	cb.Attach(d, b)

	drag(d, a, Point{0, 0}, Point{25, 5})

	if ca.Offset() != (Point{25, 5}) {
		t.Errorf("a offset = %+v, want {25 5}", ca.Offset())
	}
	if cb.Offset() != (Point{}) || b.calls != 0 {
		t.Errorf("b moved: %+v", cb.Offset())
	}

	cb.Detach()
	if d.Len() != 3 {
		t.Errorf("registrations = %d, want 3", d.Len())
	}
}
