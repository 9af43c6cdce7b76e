package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mindfiredigital/canvas-editor/internal/layout"
	"github.com/mindfiredigital/canvas-editor/internal/logging/events"
	"github.com/mindfiredigital/canvas-editor/internal/pointer"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.Close()
		events.App.Stop("quit")
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Readonly):
		m.editor.SetReadonly(!m.editor.IsReadonly())
		if m.editor.IsReadonly() {
			m.status = "read-only"
		} else {
			m.status = "editable"
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.UI.Resize(m.width, m.height)
	return nil
}

func (m *Model) dispatch(kind pointer.Kind, p layout.Point) *pointer.Event {
	ev := pointer.NewEvent(kind, p)
	m.pointer.Dispatch(ev)
	return ev
}

// handleMouseMsg turns terminal mouse reports into pointer events. Presses
// fire pointer-down before anything else; the secondary button then raises
// the context menu gesture, the primary button's release raises a click.
// A secondary press inside an open panel keeps the caret but still raises
// the gesture, so the menu reopens at the pointer.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	p := layout.Point{X: ev.X, Y: ev.Y}
	switch ev.Action {
	case tea.MouseActionPress:
		events.UI.Mouse("press", ev.Button.String(), ev.X, ev.Y)
		m.pressed = ev.Button
		switch ev.Button {
		case tea.MouseButtonLeft:
			if down := m.dispatch(pointer.Down, p); down.DefaultPrevented() {
				return nil
			}
			m.startSelection(p)
		case tea.MouseButtonRight:
			if down := m.dispatch(pointer.Down, p); !down.DefaultPrevented() {
				m.placeCaret(p)
			}
			m.dispatch(pointer.ContextMenu, p)
		}
	case tea.MouseActionMotion:
		m.dispatch(pointer.Move, p)
		if m.dragging {
			m.extendSelection(p)
		}
	case tea.MouseActionRelease:
		events.UI.Mouse("release", ev.Button.String(), ev.X, ev.Y)
		pressed := m.pressed
		m.pressed = tea.MouseButtonNone
		m.dragging = false
		if pressed == tea.MouseButtonLeft {
			m.dispatch(pointer.Click, p)
		}
	}
	return nil
}

func (m *Model) indexAt(p layout.Point) int {
	return layoutDocument(m.editor.Elements(), m.width).IndexAt(p)
}

func (m *Model) startSelection(p layout.Point) {
	idx := m.indexAt(p)
	if idx < 0 {
		return
	}
	m.anchor = idx
	m.dragging = true
	m.editor.SetRange(idx, idx)
	events.UI.Caret(idx, idx)
}

func (m *Model) extendSelection(p layout.Point) {
	idx := m.indexAt(p)
	if idx < 0 {
		return
	}
	m.editor.SetRange(m.anchor, idx)
	rng := m.editor.Range()
	events.UI.Caret(rng.StartIndex, rng.EndIndex)
}

// placeCaret moves the caret under p unless p lies inside the current
// selection.
func (m *Model) placeCaret(p layout.Point) {
	idx := m.indexAt(p)
	if idx < 0 {
		return
	}
	rng := m.editor.Range()
	if !rng.Collapsed() && idx > rng.StartIndex && idx <= rng.EndIndex {
		return
	}
	m.editor.SetRange(idx, idx)
	events.UI.Caret(idx, idx)
}
