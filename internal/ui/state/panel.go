package state

import (
	"github.com/mindfiredigital/canvas-editor/internal/layout"
	"github.com/mindfiredigital/canvas-editor/internal/menu"
)

// PanelID is a stable handle for a mounted panel. Zero means no panel.
type PanelID int

// Handler reacts to a pointer transition on a row. related is the row the
// pointer came from or is moving to, when there is one.
type Handler func(related Target)

// Target identifies a row inside a panel. Row is -1 when the point lies on
// the panel but not on a row.
type Target struct {
	Panel PanelID
	Row   int
}

// None is the target used when the pointer is outside every panel.
var None = Target{Row: -1}

// Valid reports whether the target names a row.
func (t Target) Valid() bool { return t.Panel != 0 && t.Row >= 0 }

// Item is one rendered row of a panel.
type Item struct {
	Entry    menu.Entry
	Label    string
	Icon     string
	Shortcut string
	Divider  bool
	Hover    bool

	OnEnter Handler
	OnLeave Handler
	OnClick func()
}

// Submenu reports whether the row opens a child panel.
func (i *Item) Submenu() bool {
	return !i.Divider && i.Entry.HasChildren()
}

// Panel is one visible menu level.
type Panel struct {
	ID       PanelID
	Parent   PanelID
	Position layout.Point
	Size     layout.Size
	Items    []*Item
	Visible  bool
}

// Bounds returns the panel rectangle in viewport coordinates.
func (p *Panel) Bounds() layout.Rect {
	return layout.At(p.Position, p.Size)
}

// Item returns the row at index i.
func (p *Panel) Item(i int) (*Item, bool) {
	if i < 0 || i >= len(p.Items) {
		return nil, false
	}
	return p.Items[i], true
}

// SetHover marks row i as hovered and clears every other row of the panel.
func (p *Panel) SetHover(i int) {
	for idx, item := range p.Items {
		item.Hover = idx == i && !item.Divider
	}
}

// ClearHover removes the hover mark from row i.
func (p *Panel) ClearHover(i int) {
	if item, ok := p.Item(i); ok {
		item.Hover = false
	}
}

// Hovered returns the indices of hovered rows.
func (p *Panel) Hovered() []int {
	var out []int
	for idx, item := range p.Items {
		if item.Hover {
			out = append(out, idx)
		}
	}
	return out
}
