package menu

import "strings"

// SelectedTextPlaceholder is replaced by the selected text in entry labels.
const SelectedTextPlaceholder = "{{selectedText}}"

// FormatName substitutes placeholders in a label template.
func FormatName(template, selectedText string) string {
	if !strings.Contains(template, SelectedTextPlaceholder) {
		return template
	}
	return strings.ReplaceAll(template, SelectedTextPlaceholder, selectedText)
}

// Label returns the display label of an entry: the translation of its key
// when one exists, otherwise its literal name, with placeholders filled in.
func Label(e Entry, tr Translator, ctx Context) string {
	name := e.Name
	if e.I18nKey != "" && tr != nil {
		if translated := tr.Translate(e.I18nKey); translated != "" {
			name = translated
		}
	}
	return FormatName(name, ctx.SelectedText)
}
