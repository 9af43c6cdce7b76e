package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// View implements tea.Model.
func (m *Model) View() string {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	footer := m.footerLines(width)
	docHeight := height - 1 - len(footer)
	if docHeight < 0 {
		docHeight = 0
	}
	lines := m.renderDocument(layoutDocument(m.editor.Elements(), width), docHeight)
	lines = append(lines, footer...)
	lines = append(lines, m.statusLine(width))
	lines = m.surface.overlay(lines, width)
	return strings.Join(lines, "\n")
}

func (m *Model) footerLines(width int) []string {
	if !m.showFooter {
		return nil
	}
	hints := []string{"right-click: menu"}
	for _, binding := range []struct{ keys, desc string }{
		{m.keys.Readonly.Help().Key, m.keys.Readonly.Help().Desc},
		{m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc},
	} {
		hints = append(hints, binding.keys+": "+binding.desc)
	}
	text := padRight(truncateText(strings.Join(hints, " · "), width), width)
	return []string{render(styles.Footer, text)}
}

func (m *Model) statusLine(width int) string {
	if m.errMsg != "" {
		return render(styles.Error, padRight(truncateText(m.errMsg, width), width))
	}
	text := m.status
	if m.editor.IsReadonly() && text != "read-only" {
		if text == "" {
			text = "read-only"
		} else {
			text = "[read-only] " + text
		}
	}
	return render(styles.Status, padRight(truncateText(text, width), width))
}

// overlayLine draws top over base starting at column x, clipping top to the
// [0, width) column range.
func overlayLine(base, top string, x, width int) string {
	topW := ansi.StringWidth(top)
	if x < 0 {
		top = ansi.Cut(top, -x, topW)
		topW += x
		x = 0
	}
	if topW <= 0 || x >= width {
		return base
	}
	if x+topW > width {
		top = ansi.Truncate(top, width-x, "")
		topW = width - x
	}
	if w := ansi.StringWidth(base); w < width {
		base += strings.Repeat(" ", width-w)
	}
	return ansi.Cut(base, 0, x) + top + ansi.Cut(base, x+topW, width)
}

func padRight(text string, width int) string {
	if w := ansi.StringWidth(text); w < width {
		return text + strings.Repeat(" ", width-w)
	}
	return text
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	if ansi.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return ansi.Truncate(text, 1, "")
	}
	return ansi.Truncate(text, width, "…")
}
