package app

import (
	"github.com/mindfiredigital/canvas-editor/internal/editor"
	"github.com/mindfiredigital/canvas-editor/internal/menu"
)

// signatureElement is what the signature entry stamps at the caret.
var signatureElement = editor.Element{
	Value:   "signature",
	Type:    editor.TypeImage,
	Width:   9,
	Height:  1,
	Display: editor.DisplayInline,
}

// HostEntries are the entries the demo host adds on top of the built-ins.
func HostEntries() []menu.Entry {
	return []menu.Entry{
		menu.Action("Signature", menu.All(menu.Editable, menu.Focused), insertSignature).
			WithI18n("contextmenu.host.signature").WithIcon("signature"),
		menu.Action("Format", menu.Editable, formatDocument).
			WithI18n("contextmenu.host.format").WithIcon("format"),
	}
}

func insertSignature(cmd menu.Command, _ menu.Context) {
	if exec, ok := cmd.(menu.Executor); ok {
		exec.InsertElements([]editor.Element{signatureElement})
	}
}

func formatDocument(cmd menu.Command, _ menu.Context) {
	if exec, ok := cmd.(menu.Executor); ok {
		exec.WordTool()
	}
}
