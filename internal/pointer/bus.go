// Package pointer routes synthetic pointer events from a host to the
// listeners that subscribed to them.
package pointer

import "github.com/mindfiredigital/canvas-editor/internal/layout"

// Kind names a pointer event type.
type Kind int

const (
	// ContextMenu is the secondary-button activation gesture.
	ContextMenu Kind = iota
	// Down is any primary pointer press.
	Down
	// Move is pointer motion.
	Move
	// Click is a completed primary press.
	Click
)

func (k Kind) String() string {
	switch k {
	case ContextMenu:
		return "contextmenu"
	case Down:
		return "down"
	case Move:
		return "move"
	case Click:
		return "click"
	default:
		return "unknown"
	}
}

// Event is one pointer event. Handlers may suppress the host default.
type Event struct {
	Kind      Kind
	Point     layout.Point
	prevented bool
}

// NewEvent returns an event of kind k at p.
func NewEvent(k Kind, p layout.Point) *Event {
	return &Event{Kind: k, Point: p}
}

// PreventDefault asks the host to skip its default behavior.
func (e *Event) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether a handler suppressed the default.
func (e *Event) DefaultPrevented() bool { return e.prevented }

// Handler receives dispatched events.
type Handler func(*Event)

type listener struct {
	id      int
	handler Handler
}

// Bus fans events out to subscribers in subscription order.
type Bus struct {
	next      int
	listeners map[Kind][]listener
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{listeners: make(map[Kind][]listener)}
}

// Subscription is the handle returned by Subscribe. Cancelling it detaches
// exactly the handler it was created for.
type Subscription struct {
	bus  *Bus
	kind Kind
	id   int
}

// Subscribe attaches h to events of kind k.
func (b *Bus) Subscribe(k Kind, h Handler) Subscription {
	b.next++
	b.listeners[k] = append(b.listeners[k], listener{id: b.next, handler: h})
	return Subscription{bus: b, kind: k, id: b.next}
}

// Cancel detaches the subscription. Cancelling twice is harmless.
func (s Subscription) Cancel() {
	if s.bus == nil {
		return
	}
	list := s.bus.listeners[s.kind]
	for i, l := range list {
		if l.id == s.id {
			s.bus.listeners[s.kind] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// Dispatch delivers ev to every current subscriber of its kind. Handlers
// cancelled during delivery still see the event in flight.
func (b *Bus) Dispatch(ev *Event) {
	list := b.listeners[ev.Kind]
	if len(list) == 0 {
		return
	}
	snapshot := make([]listener, len(list))
	copy(snapshot, list)
	for _, l := range snapshot {
		l.handler(ev)
	}
}

// Len returns the number of subscribers for kind k.
func (b *Bus) Len(k Kind) int {
	return len(b.listeners[k])
}
