package state

// Remover detaches a panel from its host surface.
type Remover interface {
	Remove(id PanelID)
}

// Tracker owns the set of open panels and the parent to child relation.
// A panel has at most one open child.
type Tracker struct {
	remover  Remover
	next     PanelID
	panels   map[PanelID]*Panel
	order    []PanelID
	children map[PanelID]PanelID
}

// NewTracker returns an empty tracker that removes panels through r.
func NewTracker(r Remover) *Tracker {
	return &Tracker{
		remover:  r,
		panels:   make(map[PanelID]*Panel),
		children: make(map[PanelID]PanelID),
	}
}

// NewPanel allocates a panel and, for non-root panels, records it as the
// child of parent.
func (t *Tracker) NewPanel(parent PanelID) *Panel {
	t.next++
	p := &Panel{ID: t.next, Parent: parent}
	t.panels[p.ID] = p
	if parent != 0 {
		t.children[parent] = p.ID
	}
	return p
}

// Open appends a mounted panel to the open set.
func (t *Tracker) Open(p *Panel) {
	if _, ok := t.panels[p.ID]; !ok {
		return
	}
	for _, id := range t.order {
		if id == p.ID {
			return
		}
	}
	t.order = append(t.order, p.ID)
}

// Panel looks up a tracked panel.
func (t *Tracker) Panel(id PanelID) (*Panel, bool) {
	p, ok := t.panels[id]
	return p, ok
}

// Child returns the open child of a panel.
func (t *Tracker) Child(id PanelID) (PanelID, bool) {
	child, ok := t.children[id]
	return child, ok
}

// Panels returns open panels in open order, root first.
func (t *Tracker) Panels() []*Panel {
	out := make([]*Panel, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.panels[id])
	}
	return out
}

// Len returns the number of tracked panels.
func (t *Tracker) Len() int {
	return len(t.panels)
}

// Relations returns the number of recorded parent to child links.
func (t *Tracker) Relations() int {
	return len(t.children)
}

// DisposeChild disposes the open child subtree of a panel, if any.
func (t *Tracker) DisposeChild(id PanelID) {
	if child, ok := t.children[id]; ok {
		t.DisposeSubtree(child)
	}
}

// DisposeSubtree removes a panel after its descendants and forgets every
// relation that mentions it.
func (t *Tracker) DisposeSubtree(id PanelID) {
	p, ok := t.panels[id]
	if !ok {
		return
	}
	t.DisposeChild(id)
	t.remover.Remove(id)
	delete(t.panels, id)
	delete(t.children, id)
	if p.Parent != 0 && t.children[p.Parent] == id {
		delete(t.children, p.Parent)
	}
	t.order = removeID(t.order, id)
}

// Dispose removes every tracked panel, newest first, and clears all
// relations. Disposing an empty tracker does nothing.
func (t *Tracker) Dispose() int {
	if len(t.panels) == 0 {
		return 0
	}
	removed := 0
	for i := len(t.order) - 1; i >= 0; i-- {
		t.remover.Remove(t.order[i])
		delete(t.panels, t.order[i])
		removed++
	}
	// mounted but never opened
	for id := range t.panels {
		t.remover.Remove(id)
		removed++
	}
	t.panels = make(map[PanelID]*Panel)
	t.children = make(map[PanelID]PanelID)
	t.order = nil
	return removed
}

func removeID(ids []PanelID, id PanelID) []PanelID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
