package contextmenu

import (
	"github.com/mindfiredigital/canvas-editor/internal/layout"
	"github.com/mindfiredigital/canvas-editor/internal/logging/events"
	"github.com/mindfiredigital/canvas-editor/internal/menu"
	"github.com/mindfiredigital/canvas-editor/internal/ui/command"
	"github.com/mindfiredigital/canvas-editor/internal/ui/state"
)

// render builds one panel for entries, places it at anchor and records it
// as the child of parent. Nested panels are rendered lazily on hover.
func (m *ContextMenu) render(entries []menu.Entry, anchor layout.Point, parent state.PanelID) *state.Panel {
	panel := m.tracker.NewPanel(parent)
	for i, entry := range entries {
		if entry.IsDivider() {
			if menu.Rendered(entries, i) {
				panel.Items = append(panel.Items, &state.Item{Entry: entry, Divider: true})
			}
			continue
		}
		item := &state.Item{
			Entry:    entry,
			Label:    menu.Label(entry, m.translator, m.ctx),
			Icon:     entry.Icon,
			Shortcut: entry.Shortcut,
		}
		row := len(panel.Items)
		panel.Items = append(panel.Items, item)
		if entry.HasChildren() {
			m.wireSubmenu(panel, row, item)
		} else {
			m.wireAction(panel, row, item)
		}
	}

	m.surface.Mount(panel)
	panel.Size = m.surface.Measure(panel.ID)
	panel.Position = layout.Place(panel.Size, m.surface.Viewport(), anchor)
	m.surface.Reveal(panel.ID, panel.Position)
	panel.Visible = true
	m.tracker.Open(panel)
	return panel
}

func (m *ContextMenu) wireAction(panel *state.Panel, row int, item *state.Item) {
	item.OnEnter = func(state.Target) {
		panel.SetHover(row)
		events.Menu.Hover(int(panel.ID), row, item.Label)
		m.tracker.DisposeChild(panel.ID)
	}
	item.OnLeave = func(state.Target) {
		panel.ClearHover(row)
	}
	item.OnClick = func() {
		id := item.Entry.I18nKey
		if id == "" {
			id = item.Entry.Name
		}
		m.commands.Execute(command.Request{
			ID:       id,
			Label:    item.Label,
			Callback: item.Entry.Callback,
			Command:  m.command,
			Context:  m.ctx,
		})
		m.dispose(events.DismissClick)
	}
}

func (m *ContextMenu) wireSubmenu(panel *state.Panel, row int, item *state.Item) {
	var child state.PanelID
	item.OnEnter = func(state.Target) {
		panel.SetHover(row)
		events.Menu.Hover(int(panel.ID), row, item.Label)
		m.tracker.DisposeChild(panel.ID)
		bounds := m.surface.RowBounds(panel.ID, row).Offset(panel.Position)
		anchor := layout.Point{X: bounds.Right(), Y: bounds.Y}
		child = m.render(item.Entry.Children, anchor, panel.ID).ID
		events.Menu.Submenu(int(panel.ID), int(child), item.Label)
	}
	item.OnLeave = func(related state.Target) {
		if child != 0 && related.Panel == child {
			if _, open := m.tracker.Panel(child); open {
				return
			}
		}
		panel.ClearHover(row)
	}
}
