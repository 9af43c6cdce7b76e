package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/mindfiredigital/canvas-editor/internal/editor"
	"github.com/mindfiredigital/canvas-editor/internal/layout"
)

// span is one element laid out on a document line.
type span struct {
	index int
	text  string
	x     int
	w     int
}

// docLayout maps document elements to terminal cells.
type docLayout struct {
	lines [][]span
	width int
}

func elementText(el editor.Element) string {
	switch el.Kind() {
	case editor.TypeImage:
		return "[" + el.Value + "]"
	default:
		if el.Value == "\n" {
			return ""
		}
		return el.Value
	}
}

// layoutDocument wraps elements into lines no wider than width.
func layoutDocument(elements []editor.Element, width int) docLayout {
	if width <= 0 {
		width = defaultWidth
	}
	l := docLayout{width: width, lines: [][]span{nil}}
	x := 0
	for i, el := range elements {
		text := elementText(el)
		w := runewidth.StringWidth(text)
		if x > 0 && x+w > width {
			l.lines = append(l.lines, nil)
			x = 0
		}
		row := len(l.lines) - 1
		l.lines[row] = append(l.lines[row], span{index: i, text: text, x: x, w: w})
		x += w
		if el.Value == "\n" && el.IsText() {
			l.lines = append(l.lines, nil)
			x = 0
		}
	}
	return l
}

// IndexAt returns the element under p, or the closest element before it.
// It returns -1 for an empty document.
func (l docLayout) IndexAt(p layout.Point) int {
	row := p.Y
	if row >= len(l.lines) {
		row = len(l.lines) - 1
	}
	if row < 0 {
		row = 0
	}
	for ; row >= 0; row-- {
		line := l.lines[row]
		if len(line) == 0 {
			continue
		}
		if row != p.Y {
			return line[len(line)-1].index
		}
		for _, s := range line {
			if p.X >= s.x && p.X < s.x+s.w {
				return s.index
			}
		}
		if p.X < line[0].x {
			return line[0].index
		}
		return line[len(line)-1].index
	}
	return -1
}

// Height returns the number of laid out lines.
func (l docLayout) Height() int {
	return len(l.lines)
}

func (m *Model) styleFor(el editor.Element, index int, rng editor.Range) *lipgloss.Style {
	if rng.StartIndex >= 0 {
		if rng.Collapsed() && index == rng.StartIndex {
			return styles.Caret
		}
		if !rng.Collapsed() && index > rng.StartIndex && index <= rng.EndIndex {
			return styles.Selection
		}
	}
	switch el.Kind() {
	case editor.TypeHyperlink:
		return styles.Hyperlink
	case editor.TypeImage:
		return styles.Image
	case editor.TypeControl:
		return styles.Control
	case editor.TypeTableCell:
		return styles.TableCell
	default:
		return styles.Document
	}
}

// renderDocument returns height lines of document text, each padded to the
// layout width.
func (m *Model) renderDocument(l docLayout, height int) []string {
	elements := m.editor.Elements()
	rng := m.editor.Range()
	out := make([]string, 0, height)
	for row := 0; row < height; row++ {
		if row >= len(l.lines) {
			out = append(out, strings.Repeat(" ", l.width))
			continue
		}
		var b strings.Builder
		used := 0
		for _, s := range l.lines[row] {
			if s.w == 0 {
				continue
			}
			style := m.styleFor(elements[s.index], s.index, rng)
			if style != nil {
				b.WriteString(style.Render(s.text))
			} else {
				b.WriteString(s.text)
			}
			used += s.w
		}
		if used < l.width {
			b.WriteString(strings.Repeat(" ", l.width-used))
		}
		out = append(out, b.String())
	}
	return out
}
