package contextmenu

import (
	"github.com/mindfiredigital/canvas-editor/internal/logging/events"
	"github.com/mindfiredigital/canvas-editor/internal/menu"
	"github.com/mindfiredigital/canvas-editor/internal/pointer"
	"github.com/mindfiredigital/canvas-editor/internal/ui/state"
)

func (m *ContextMenu) handleContextMenu(ev *pointer.Event) {
	ctx := menu.Resolve(m.editor, m.editor, m.editor)
	entries, ok := menu.Filter(m.registry.Entries(), ctx)
	if !ok {
		events.Menu.Skip(ev.Point.X, ev.Point.Y)
		return
	}
	m.dispose(events.DismissTrigger)
	m.ctx = ctx
	root := m.render(entries, ev.Point, 0)
	events.Menu.Open(int(root.ID), len(root.Items), ev.Point.X, ev.Point.Y)
	ev.PreventDefault()
}

func (m *ContextMenu) handleDown(ev *pointer.Event) {
	if !m.IsOpen() {
		return
	}
	if _, inside := m.HitTest(ev.Point); inside {
		ev.PreventDefault()
		return
	}
	m.dispose(events.DismissOutside)
}

func (m *ContextMenu) handleMove(ev *pointer.Event) {
	if !m.IsOpen() {
		return
	}
	target, _ := m.HitTest(ev.Point)
	if target == m.hover {
		return
	}
	prev := m.hover
	m.hover = target
	if item := m.item(prev); item != nil && item.OnLeave != nil {
		item.OnLeave(target)
	}
	if item := m.item(target); item != nil && item.OnEnter != nil {
		item.OnEnter(prev)
	}
}

func (m *ContextMenu) handleClick(ev *pointer.Event) {
	if !m.IsOpen() {
		return
	}
	target, inside := m.HitTest(ev.Point)
	if !inside {
		return
	}
	ev.PreventDefault()
	if item := m.item(target); item != nil && item.OnClick != nil {
		item.OnClick()
	}
}

func (m *ContextMenu) item(t state.Target) *state.Item {
	if !t.Valid() {
		return nil
	}
	panel, ok := m.tracker.Panel(t.Panel)
	if !ok {
		return nil
	}
	item, ok := panel.Item(t.Row)
	if !ok {
		return nil
	}
	return item
}
