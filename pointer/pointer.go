// Package pointer delivers pointer events to registered handlers.
//
// A Dispatcher models the host's event-dispatch loop: Down handlers are
// scoped to one target, Move and Up handlers are document-wide. Every
// registration returns a Handle whose Remove releases it.
//
// A Dispatcher is not safe for concurrent use. Events are dispatched one at
// a time and every handler runs to completion before the next event.
package pointer

// Kind identifies a pointer event type.
type Kind uint8

// Event kinds.
const (
	Down Kind = iota
	Move
	Up
)

// String returns the event kind name.
func (k Kind) String() string {
	switch k {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	default:
		return "unknown"
	}
}

// Target identifies the element an event hit. Targets are compared with ==,
// so they must be comparable values such as pointers.
type Target any

// Event is one pointer event in page coordinates.
type Event struct {
	Kind   Kind
	X, Y   float64
	Target Target
}

// HandlerFunc handles one event.
type HandlerFunc func(Event)

type handler struct {
	id     uint32
	target Target
	fn     HandlerFunc
}

// Dispatcher is a registry of pointer handlers.
// The zero value is ready to use.
type Dispatcher struct {
	down   []handler
	move   []handler
	up     []handler
	nextID uint32
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Handle releases one registration.
type Handle struct {
	id   uint32
	kind Kind
	d    *Dispatcher
}

// Remove unregisters the handler. Removing twice, or removing the zero
// Handle, is a no-op.
func (h Handle) Remove() {
	if h.d == nil {
		return
	}
	switch h.kind {
	case Down:
		h.d.down = removeHandler(h.d.down, h.id)
	case Move:
		h.d.move = removeHandler(h.d.move, h.id)
	case Up:
		h.d.up = removeHandler(h.d.up, h.id)
	}
}

func removeHandler(s []handler, id uint32) []handler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = handler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// OnDown registers fn for pointer-down events that hit target.
func (d *Dispatcher) OnDown(target Target, fn HandlerFunc) Handle {
	return d.add(Down, target, fn)
}

// OnMove registers fn for every pointer-move event.
func (d *Dispatcher) OnMove(fn HandlerFunc) Handle {
	return d.add(Move, nil, fn)
}

// OnUp registers fn for every pointer-up event.
func (d *Dispatcher) OnUp(fn HandlerFunc) Handle {
	return d.add(Up, nil, fn)
}

func (d *Dispatcher) add(kind Kind, target Target, fn HandlerFunc) Handle {
	d.nextID++
	h := handler{id: d.nextID, target: target, fn: fn}
	switch kind {
	case Down:
		d.down = append(d.down, h)
	case Move:
		d.move = append(d.move, h)
	case Up:
		d.up = append(d.up, h)
	}
	return Handle{id: h.id, kind: kind, d: d}
}

// Dispatch delivers ev to the matching handlers in registration order.
// Handlers may register or remove handlers. A handler added during the
// dispatch runs from the next event on; one removed before its turn does
// not run.
func (d *Dispatcher) Dispatch(ev Event) {
	list := d.list(ev.Kind)
	if list == nil {
		return
	}

	snapshot := make([]handler, len(*list))
	copy(snapshot, *list)

	for _, h := range snapshot {
		if ev.Kind == Down && h.target != ev.Target {
			continue
		}
		if !registered(*list, h.id) {
			continue
		}
		h.fn(ev)
	}
}

func (d *Dispatcher) list(kind Kind) *[]handler {
	switch kind {
	case Down:
		return &d.down
	case Move:
		return &d.move
	case Up:
		return &d.up
	}
	return nil
}

func registered(s []handler, id uint32) bool {
	for i := range s {
		if s[i].id == id {
			return true
		}
	}
	return false
}

// Len returns the number of live registrations.
func (d *Dispatcher) Len() int {
	return len(d.down) + len(d.move) + len(d.up)
}
