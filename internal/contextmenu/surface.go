package contextmenu

import (
	"github.com/mindfiredigital/canvas-editor/internal/layout"
	"github.com/mindfiredigital/canvas-editor/internal/menu"
	"github.com/mindfiredigital/canvas-editor/internal/ui/state"
)

// Surface is the host drawing area panels are attached to. Placement is two
// phase: a panel is mounted hidden, measured, positioned and then revealed.
type Surface interface {
	state.Remover

	// Mount attaches a hidden panel whose rows are already populated.
	Mount(p *state.Panel)
	// Measure returns the size of a mounted panel.
	Measure(id state.PanelID) layout.Size
	// RowBounds returns the rectangle of row i relative to the panel origin.
	RowBounds(id state.PanelID, row int) layout.Rect
	// Reveal shows a mounted panel at the given position.
	Reveal(id state.PanelID, at layout.Point)
	// Viewport returns the size of the visible area.
	Viewport() layout.Size
}

// Editor is everything the engine reads from the document editor.
type Editor interface {
	menu.Document
	menu.RangeProvider
	menu.PositionProvider
}
