package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mindfiredigital/canvas-editor/internal/layout"
	"github.com/mindfiredigital/canvas-editor/internal/ui/state"
)

type mountedPanel struct {
	panel    *state.Panel
	size     layout.Size
	at       layout.Point
	revealed bool
}

// termSurface keeps the panels the context menu mounted and draws them over
// the document view.
type termSurface struct {
	viewport func() layout.Size
	panels   map[state.PanelID]*mountedPanel
	order    []state.PanelID
}

func newTermSurface(viewport func() layout.Size) *termSurface {
	return &termSurface{
		viewport: viewport,
		panels:   make(map[state.PanelID]*mountedPanel),
	}
}

func (s *termSurface) Mount(p *state.Panel) {
	out := renderPanel(p)
	s.panels[p.ID] = &mountedPanel{
		panel: p,
		size:  layout.Size{W: lipgloss.Width(out), H: lipgloss.Height(out)},
	}
}

func (s *termSurface) Measure(id state.PanelID) layout.Size {
	if mp, ok := s.panels[id]; ok {
		return mp.size
	}
	return layout.Size{}
}

// RowBounds skips the one-cell border around the rows.
func (s *termSurface) RowBounds(id state.PanelID, row int) layout.Rect {
	mp, ok := s.panels[id]
	if !ok {
		return layout.Rect{}
	}
	return layout.R(1, 1+row, mp.size.W-2, 1)
}

func (s *termSurface) Reveal(id state.PanelID, at layout.Point) {
	mp, ok := s.panels[id]
	if !ok {
		return
	}
	mp.at = at
	if !mp.revealed {
		mp.revealed = true
		s.order = append(s.order, id)
	}
}

func (s *termSurface) Remove(id state.PanelID) {
	if _, ok := s.panels[id]; !ok {
		return
	}
	delete(s.panels, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *termSurface) Viewport() layout.Size {
	return s.viewport()
}

// Len returns the number of mounted panels.
func (s *termSurface) Len() int {
	return len(s.panels)
}

// overlay draws every revealed panel, oldest first, onto lines.
func (s *termSurface) overlay(lines []string, width int) []string {
	for _, id := range s.order {
		mp := s.panels[id]
		rows := strings.Split(renderPanel(mp.panel), "\n")
		for j, row := range rows {
			y := mp.at.Y + j
			if y < 0 || y >= len(lines) {
				continue
			}
			lines[y] = overlayLine(lines[y], row, mp.at.X, width)
		}
	}
	return lines
}
