package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives the UI model programmatically for integration tests.
type Harness struct {
	model *Model
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		if _, quit := msg.(tea.QuitMsg); quit {
			return
		}
		mdl, next := h.model.Update(msg)
		if updated, ok := mdl.(*Model); ok {
			h.model = updated
		}
		cmd = next
	}
}

// Press sends a mouse press of button at (x, y).
func (h *Harness) Press(button tea.MouseButton, x, y int) {
	h.Send(tea.MouseMsg{X: x, Y: y, Button: button, Action: tea.MouseActionPress})
}

// Release sends a mouse release at (x, y).
func (h *Harness) Release(button tea.MouseButton, x, y int) {
	h.Send(tea.MouseMsg{X: x, Y: y, Button: button, Action: tea.MouseActionRelease})
}

// Move sends pointer motion to (x, y).
func (h *Harness) Move(x, y int) {
	h.Send(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonNone, Action: tea.MouseActionMotion})
}

// RightClick raises the context menu gesture at (x, y).
func (h *Harness) RightClick(x, y int) {
	h.Press(tea.MouseButtonRight, x, y)
	h.Release(tea.MouseButtonRight, x, y)
}

// Click presses and releases the primary button at (x, y).
func (h *Harness) Click(x, y int) {
	h.Press(tea.MouseButtonLeft, x, y)
	h.Release(tea.MouseButtonLeft, x, y)
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
