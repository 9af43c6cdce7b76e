package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mindfiredigital/canvas-editor/internal/format/table"
	"github.com/mindfiredigital/canvas-editor/internal/ui/state"
)

const submenuIndicator = "›"

var iconGlyphs = map[string]string{
	"cut":               "✂",
	"copy":              "⧉",
	"paste":             "⎘",
	"select-all":        "▣",
	"print":             "⎙",
	"insert-row-col":    "+",
	"delete-row-col":    "-",
	"merge-cell":        "⊞",
	"merge-cancel-cell": "⊟",
	"image-change":      "↻",
	"image":             "▧",
	"image-text-wrap":   "↵",
	"remove-control":    "×",
	"delete-hyperlink":  "×",
	"cancel-hyperlink":  "⊘",
	"edit-hyperlink":    "✎",
	"signature":         "✍",
	"format":            "¶",
}

func iconGlyph(name string) string {
	if name == "" {
		return ""
	}
	if glyph, ok := iconGlyphs[name]; ok {
		return glyph
	}
	return "•"
}

const (
	colIcon = iota
	colLabel
	colShortcut
	colIndicator
)

var panelAlignments = []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignRight, table.AlignLeft}

// renderPanel draws a bordered panel. Rows keep the order of p.Items so row
// i of the content sits at line i+1 of the output.
func renderPanel(p *state.Panel) string {
	rows := make([][]string, 0, len(p.Items))
	for _, item := range p.Items {
		if item.Divider {
			continue
		}
		indicator := ""
		if item.Submenu() {
			indicator = submenuIndicator
		}
		rows = append(rows, []string{iconGlyph(item.Icon), item.Label, item.Shortcut, indicator})
	}
	cells := table.Cells(rows, panelAlignments)
	inner := 1
	for _, row := range cells {
		if w := rowWidth(row); w > inner {
			inner = w
		}
	}
	lines := make([]string, 0, len(p.Items))
	next := 0
	for _, item := range p.Items {
		if item.Divider {
			lines = append(lines, render(styles.Divider, strings.Repeat("─", inner+2)))
			continue
		}
		lines = append(lines, renderRow(cells[next], item.Hover, inner))
		next++
	}
	if len(lines) == 0 {
		lines = append(lines, strings.Repeat(" ", inner+2))
	}
	return render(styles.Panel, strings.Join(lines, "\n"))
}

func rowWidth(row []string) int {
	w, cols := 0, 0
	for _, cell := range row {
		if cell == "" {
			continue
		}
		w += table.CellWidth(cell)
		cols++
	}
	if cols > 1 {
		w += (cols - 1) * len(table.Separator)
	}
	return w
}

// renderRow styles each column of a row and pads it to inner plus one
// space on either side. Hovered rows carry the hover background through
// every column.
func renderRow(row []string, hover bool, inner int) string {
	base := styles.Item
	if hover {
		base = styles.HoverItem
	}
	var b strings.Builder
	b.WriteString(render(base, " "))
	written := false
	for c, cell := range row {
		if cell == "" {
			continue
		}
		if written {
			b.WriteString(render(base, table.Separator))
		}
		written = true
		b.WriteString(render(cellStyle(c, hover, base), cell))
	}
	pad := inner + 1 - rowWidth(row)
	if pad < 1 {
		pad = 1
	}
	b.WriteString(render(base, strings.Repeat(" ", pad)))
	return b.String()
}

func cellStyle(col int, hover bool, base *lipgloss.Style) *lipgloss.Style {
	var style *lipgloss.Style
	switch col {
	case colIcon:
		style = styles.Icon
	case colShortcut:
		if hover {
			return styles.HoverShortcut
		}
		style = styles.Shortcut
	case colIndicator:
		style = styles.Indicator
	case colLabel:
		return base
	}
	if style == nil || base == nil || !hover {
		return style
	}
	inherited := style.Inherit(*base)
	return &inherited
}

func render(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}
