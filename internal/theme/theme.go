package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Document      *lipgloss.Style
	Selection     *lipgloss.Style
	Caret         *lipgloss.Style
	Hyperlink     *lipgloss.Style
	Image         *lipgloss.Style
	Control       *lipgloss.Style
	TableCell     *lipgloss.Style
	Panel         *lipgloss.Style
	Item          *lipgloss.Style
	HoverItem     *lipgloss.Style
	Icon          *lipgloss.Style
	Shortcut      *lipgloss.Style
	HoverShortcut *lipgloss.Style
	Indicator     *lipgloss.Style
	Divider       *lipgloss.Style
	Status        *lipgloss.Style
	Error         *lipgloss.Style
	Footer        *lipgloss.Style
}

var defaultStyles = Styles{
	Document: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Selection: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("24")),
	),
	Caret: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")),
	),
	Hyperlink: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true),
	),
	Image: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
	),
	Control: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
	),
	TableCell: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	Panel: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	HoverItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Icon: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	Shortcut: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	HoverShortcut: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Background(lipgloss.Color("238")),
	),
	Indicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Divider: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
