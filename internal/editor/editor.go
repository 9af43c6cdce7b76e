// Package editor provides a small in-memory document editor: an element
// list, a selection range and the command surface the context menu invokes.
// Layout and painting live in the terminal host.
package editor

import "strings"

// Editor owns the element list and the selection range.
type Editor struct {
	elements []Element
	rng      Range
	readonly bool
	forced   bool
}

// New creates an editor from a document.
func New(doc Document) *Editor {
	e := &Editor{}
	e.Load(doc)
	return e
}

// Load replaces the editor contents with doc.
func (e *Editor) Load(doc Document) {
	e.elements = cloneElements(doc.Elements)
	e.readonly = doc.Readonly
	e.rng = doc.Range
	e.clampRange()
}

// Snapshot returns the editor contents as a document.
func (e *Editor) Snapshot() Document {
	return Document{Readonly: e.IsReadonly(), Range: e.rng, Elements: cloneElements(e.elements)}
}

// IsReadonly reports whether the document may be modified.
func (e *Editor) IsReadonly() bool { return e.readonly || e.forced }

// SetReadonly toggles readonly mode.
func (e *Editor) SetReadonly(readonly bool) { e.readonly = readonly }

// ForceReadonly keeps the editor read-only across Load and SetReadonly
// until it is called again with false.
func (e *Editor) ForceReadonly(on bool) { e.forced = on }

// Elements returns a copy of the element list.
func (e *Editor) Elements() []Element { return cloneElements(e.elements) }

// Len returns the number of elements.
func (e *Editor) Len() int { return len(e.elements) }

// Range returns the current selection.
func (e *Editor) Range() Range { return e.rng }

// SetRange replaces the selection. The cross row/column flag is derived
// from the table cells the range spans.
func (e *Editor) SetRange(start, end int) {
	if start > end {
		start, end = end, start
	}
	e.rng = Range{StartIndex: start, EndIndex: end}
	e.clampRange()
	e.rng.IsCrossRowCol = e.spansCells()
}

// Blur removes focus from the editor.
func (e *Editor) Blur() { e.rng = NoRange }

// String returns the text of the selected elements. The element at the start
// index sits before the selection, so it is not included.
func (e *Editor) String() string {
	if e.rng.Collapsed() || e.rng.StartIndex < -1 {
		return ""
	}
	var b strings.Builder
	for i := e.rng.StartIndex + 1; i <= e.rng.EndIndex && i < len(e.elements); i++ {
		if i < 0 {
			continue
		}
		if el := e.elements[i]; el.IsText() {
			b.WriteString(el.Value)
		}
	}
	return b.String()
}

// PositionContext reports whether the caret sits inside a table.
func (e *Editor) PositionContext() PositionContext {
	idx := e.rng.StartIndex
	if idx < 0 || idx >= len(e.elements) {
		return PositionContext{}
	}
	el := e.elements[idx]
	if el.Kind() != TypeTableCell {
		return PositionContext{}
	}
	return PositionContext{IsTable: true, TableID: el.TableID, Row: el.Row, Col: el.Col}
}

func (e *Editor) clampRange() {
	if e.rng.StartIndex < 0 && e.rng.EndIndex < 0 {
		e.rng = Range{StartIndex: -1, EndIndex: -1, IsCrossRowCol: e.rng.IsCrossRowCol}
		return
	}
	last := len(e.elements) - 1
	if e.rng.StartIndex > last {
		e.rng.StartIndex = last
	}
	if e.rng.EndIndex > last {
		e.rng.EndIndex = last
	}
	if e.rng.StartIndex < 0 {
		e.rng.StartIndex = 0
	}
	if e.rng.EndIndex < e.rng.StartIndex {
		e.rng.EndIndex = e.rng.StartIndex
	}
}

func (e *Editor) spansCells() bool {
	if e.rng.Collapsed() {
		return false
	}
	type cell struct{ row, col int }
	var first *cell
	for i := e.rng.StartIndex; i <= e.rng.EndIndex && i < len(e.elements); i++ {
		if i < 0 {
			continue
		}
		el := e.elements[i]
		if el.Kind() != TypeTableCell {
			continue
		}
		current := cell{el.Row, el.Col}
		if first == nil {
			first = &current
			continue
		}
		if current != *first {
			return true
		}
	}
	return false
}

// deleteRange removes elements [from, to] and leaves a caret before them.
func (e *Editor) deleteRange(from, to int) {
	if from < 0 {
		from = 0
	}
	if to >= len(e.elements) {
		to = len(e.elements) - 1
	}
	if from > to {
		return
	}
	e.elements = append(e.elements[:from], e.elements[to+1:]...)
	caret := from - 1
	if caret < 0 && len(e.elements) > 0 {
		caret = 0
	}
	e.rng = Range{StartIndex: caret, EndIndex: caret}
	if len(e.elements) == 0 {
		e.rng = NoRange
	}
}

// insertAfter inserts elements after index at and moves the caret to the
// last inserted element.
func (e *Editor) insertAfter(at int, elements []Element) {
	if len(elements) == 0 {
		return
	}
	pos := at + 1
	if pos < 0 {
		pos = 0
	}
	if pos > len(e.elements) {
		pos = len(e.elements)
	}
	updated := make([]Element, 0, len(e.elements)+len(elements))
	updated = append(updated, e.elements[:pos]...)
	updated = append(updated, elements...)
	updated = append(updated, e.elements[pos:]...)
	e.elements = updated
	caret := pos + len(elements) - 1
	e.rng = Range{StartIndex: caret, EndIndex: caret}
}

// span returns the contiguous run of elements around idx for which match
// holds.
func (e *Editor) span(idx int, match func(Element) bool) (int, int, bool) {
	if idx < 0 || idx >= len(e.elements) || !match(e.elements[idx]) {
		return 0, 0, false
	}
	from, to := idx, idx
	for from > 0 && match(e.elements[from-1]) {
		from--
	}
	for to < len(e.elements)-1 && match(e.elements[to+1]) {
		to++
	}
	return from, to, true
}
