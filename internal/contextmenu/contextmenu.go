// Package contextmenu implements the nested context menu of the editor: it
// decides which entries apply to the current selection, renders them as a
// tree of panels on a host surface and tears the tree down again.
package contextmenu

import (
	"github.com/mindfiredigital/canvas-editor/internal/layout"
	"github.com/mindfiredigital/canvas-editor/internal/logging/events"
	"github.com/mindfiredigital/canvas-editor/internal/menu"
	"github.com/mindfiredigital/canvas-editor/internal/pointer"
	"github.com/mindfiredigital/canvas-editor/internal/ui/command"
	"github.com/mindfiredigital/canvas-editor/internal/ui/state"
)

// ContextMenu owns the registry, the open panel tree and the pointer
// subscriptions. It is not safe for concurrent use; hosts drive it from
// their event loop.
type ContextMenu struct {
	surface    Surface
	bus        *pointer.Bus
	editor     Editor
	command    menu.Command
	translator menu.Translator
	registry   *menu.Registry
	commands   *command.Bus
	tracker    *state.Tracker

	ctx   menu.Context
	hover state.Target
	subs  []pointer.Subscription
}

// Option customises a ContextMenu.
type Option func(*ContextMenu)

// WithTranslator localizes entry labels.
func WithTranslator(tr menu.Translator) Option {
	return func(m *ContextMenu) { m.translator = tr }
}

// WithRegistry replaces the built-in registry.
func WithRegistry(r *menu.Registry) Option {
	return func(m *ContextMenu) { m.registry = r }
}

// WithCommandBus routes leaf callbacks through bus.
func WithCommandBus(bus *command.Bus) Option {
	return func(m *ContextMenu) { m.commands = bus }
}

// New builds a context menu bound to a surface and pointer bus and attaches
// its listeners. cmd is forwarded to entry callbacks unexamined.
func New(surface Surface, bus *pointer.Bus, ed Editor, cmd menu.Command, opts ...Option) *ContextMenu {
	m := &ContextMenu{
		surface: surface,
		bus:     bus,
		editor:  ed,
		command: cmd,
		hover:   state.None,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = menu.NewRegistry()
	}
	if m.commands == nil {
		m.commands = command.New()
	}
	m.tracker = state.NewTracker(surface)
	m.AddEvent()
	return m
}

// AddEvent subscribes to the activation gesture, pointer presses, motion and
// clicks. Calling it while subscribed does nothing.
func (m *ContextMenu) AddEvent() {
	if len(m.subs) > 0 {
		return
	}
	m.subs = []pointer.Subscription{
		m.bus.Subscribe(pointer.ContextMenu, m.handleContextMenu),
		m.bus.Subscribe(pointer.Down, m.handleDown),
		m.bus.Subscribe(pointer.Move, m.handleMove),
		m.bus.Subscribe(pointer.Click, m.handleClick),
	}
}

// RemoveEvent cancels the subscriptions made by AddEvent.
func (m *ContextMenu) RemoveEvent() {
	for _, sub := range m.subs {
		sub.Cancel()
	}
	m.subs = nil
}

// RegisterEntries appends entries to the registry. They apply from the next
// activation on.
func (m *ContextMenu) RegisterEntries(entries ...menu.Entry) {
	m.registry.Register(entries...)
}

// Dispose closes every open panel.
func (m *ContextMenu) Dispose() {
	m.dispose(events.DismissHost)
}

func (m *ContextMenu) dispose(reason events.DismissReason) {
	m.hover = state.None
	m.ctx = menu.Context{}
	if n := m.tracker.Dispose(); n > 0 {
		events.Menu.Dismiss(reason, n)
	}
}

// Context returns the snapshot the open menu was built from. It is the zero
// Context once the menu is dismissed.
func (m *ContextMenu) Context() menu.Context {
	return m.ctx
}

// OpenPanels returns the open panels in open order, root first.
func (m *ContextMenu) OpenPanels() []*state.Panel {
	return m.tracker.Panels()
}

// IsOpen reports whether any panel is open.
func (m *ContextMenu) IsOpen() bool {
	return m.tracker.Len() > 0
}

// HitTest finds the topmost revealed panel containing p and the row under
// it. ok is false when p lies outside every panel.
func (m *ContextMenu) HitTest(p layout.Point) (target state.Target, ok bool) {
	panels := m.tracker.Panels()
	for i := len(panels) - 1; i >= 0; i-- {
		panel := panels[i]
		if !panel.Visible || !panel.Bounds().Contains(p) {
			continue
		}
		local := layout.Point{X: p.X - panel.Position.X, Y: p.Y - panel.Position.Y}
		for row := range panel.Items {
			if m.surface.RowBounds(panel.ID, row).Contains(local) {
				return state.Target{Panel: panel.ID, Row: row}, true
			}
		}
		return state.Target{Panel: panel.ID, Row: -1}, true
	}
	return state.None, false
}
