package editor

// ElementType classifies an element of the document model.
type ElementType string

const (
	TypeText      ElementType = "text"
	TypeImage     ElementType = "image"
	TypeHyperlink ElementType = "hyperlink"
	TypeControl   ElementType = "control"
	TypeTableCell ElementType = "table-cell"
)

// Image display modes used by the text wrapping submenu.
const (
	DisplayInline = "inline"
	DisplayEmbed  = "embed"
	DisplayUpDown = "up-down"
)

// Element is one unit of the document: a character, an image, part of a
// hyperlink, part of a form control or a character inside a table cell.
type Element struct {
	Value     string      `yaml:"value"`
	Type      ElementType `yaml:"type,omitempty"`
	URL       string      `yaml:"url,omitempty"`
	ControlID string      `yaml:"control,omitempty"`
	TableID   string      `yaml:"table,omitempty"`
	Row       int         `yaml:"row,omitempty"`
	Col       int         `yaml:"col,omitempty"`
	Display   string      `yaml:"display,omitempty"`
	Width     int         `yaml:"width,omitempty"`
	Height    int         `yaml:"height,omitempty"`
}

// Kind returns the element type, treating an empty type as text.
func (e Element) Kind() ElementType {
	if e.Type == "" {
		return TypeText
	}
	return e.Type
}

// IsText reports whether the element contributes to the selected text.
func (e Element) IsText() bool {
	switch e.Kind() {
	case TypeText, TypeHyperlink, TypeControl, TypeTableCell:
		return true
	}
	return false
}

// Range is the current selection. A collapsed range (start == end) is a
// caret; -1 on both ends means the editor has no focus.
type Range struct {
	StartIndex    int  `yaml:"start"`
	EndIndex      int  `yaml:"end"`
	IsCrossRowCol bool `yaml:"crossRowCol,omitempty"`
}

// NoRange is the range of an unfocused editor.
var NoRange = Range{StartIndex: -1, EndIndex: -1}

// Collapsed reports whether the range is a caret.
func (r Range) Collapsed() bool { return r.StartIndex == r.EndIndex }

// PositionContext describes where the caret sits.
type PositionContext struct {
	IsTable bool
	TableID string
	Row     int
	Col     int
}

// TextElements converts a string into one text element per rune.
func TextElements(text string) []Element {
	out := make([]Element, 0, len(text))
	for _, r := range text {
		out = append(out, Element{Value: string(r)})
	}
	return out
}

func cloneElements(elements []Element) []Element {
	if len(elements) == 0 {
		return nil
	}
	dup := make([]Element, len(elements))
	copy(dup, elements)
	return dup
}
