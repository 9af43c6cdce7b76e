package menu

import "github.com/mindfiredigital/canvas-editor/internal/editor"

// Context is the immutable snapshot of editor state taken for one trigger.
type Context struct {
	StartElement  *editor.Element
	EndElement    *editor.Element
	IsReadonly    bool
	HasSelection  bool
	HasFocus      bool
	IsInTable     bool
	IsCrossRowCol bool
	SelectedText  string
}

// Document exposes the document model to the resolver.
type Document interface {
	IsReadonly() bool
	Elements() []editor.Element
}

// RangeProvider exposes the current selection.
type RangeProvider interface {
	Range() editor.Range
	String() string
}

// PositionProvider reports where the caret sits.
type PositionProvider interface {
	PositionContext() editor.PositionContext
}

// Translator resolves localization keys. An empty result means the key is
// unknown.
type Translator interface {
	Translate(key string) string
}

// Resolve builds a snapshot from the editor collaborators. It never fails:
// out-of-range indices yield nil elements.
func Resolve(doc Document, rng RangeProvider, pos PositionProvider) Context {
	r := rng.Range()
	hasFocus := r.StartIndex >= 0 || r.EndIndex >= 0
	hasSelection := hasFocus && r.StartIndex != r.EndIndex
	inTable := pos.PositionContext().IsTable
	elements := doc.Elements()
	var selected string
	if hasSelection {
		selected = rng.String()
	}
	return Context{
		StartElement:  elementAt(elements, r.StartIndex),
		EndElement:    elementAt(elements, r.EndIndex),
		IsReadonly:    doc.IsReadonly(),
		HasSelection:  hasSelection,
		HasFocus:      hasFocus,
		IsInTable:     inTable,
		IsCrossRowCol: inTable && r.IsCrossRowCol,
		SelectedText:  selected,
	}
}

func elementAt(elements []editor.Element, idx int) *editor.Element {
	if idx < 0 || idx >= len(elements) {
		return nil
	}
	el := elements[idx]
	return &el
}

// StartKind returns the type of the element at the range start, or an empty
// type when there is none.
func (c Context) StartKind() editor.ElementType {
	if c.StartElement == nil {
		return ""
	}
	return c.StartElement.Kind()
}
