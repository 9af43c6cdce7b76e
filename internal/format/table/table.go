package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Format returns the rows padded according to the widest entry in each column.
// Widths are measured in terminal cells, so wide runes align correctly.
// Columns that are empty in every row are dropped.
func Format(rows [][]string, alignments []Alignment) []string {
	cells := Cells(rows, alignments)
	if cells == nil {
		return nil
	}
	out := make([]string, len(cells))
	for i, row := range cells {
		var b strings.Builder
		for _, cell := range row {
			if cell == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteString(Separator)
			}
			b.WriteString(cell)
		}
		out[i] = b.String()
	}
	return out
}

// Separator is written between the columns Format joins.
const Separator = "  "

// Cells pads every cell to its column width and keeps the column positions,
// so callers can style columns separately. Every row has one cell per
// column; a column that is empty in every row yields "" cells.
func Cells(rows [][]string, alignments []Alignment) [][]string {
	if len(rows) == 0 {
		return nil
	}
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			width := CellWidth(cell)
			if width > widths[c] {
				widths[c] = width
			}
		}
	}
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = make([]string, colCount)
		for c := 0; c < colCount; c++ {
			if widths[c] == 0 {
				continue
			}
			var cell string
			if c < len(row) {
				cell = row[c]
			}
			var b strings.Builder
			width := widths[c] - CellWidth(cell)
			if c < len(alignments) && alignments[c] == AlignRight {
				writeSpaces(&b, width)
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				writeSpaces(&b, width)
			}
			out[i][c] = b.String()
		}
	}
	return out
}

// CellWidth returns the number of terminal cells text occupies.
func CellWidth(text string) int {
	return runewidth.StringWidth(text)
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	b.WriteString(strings.Repeat(" ", count))
}
