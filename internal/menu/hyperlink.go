package menu

import "github.com/mindfiredigital/canvas-editor/internal/editor"

func onHyperlink(ctx Context) bool {
	return !ctx.IsReadonly && ctx.StartKind() == editor.TypeHyperlink
}

// HyperlinkEntries returns the hyperlink group.
func HyperlinkEntries() []Entry {
	return []Entry{
		Action("Delete hyperlink", onHyperlink, run(Executor.DeleteHyperlink)).
			WithI18n("contextmenu.hyperlink.delete").WithIcon("delete-hyperlink"),
		Action("Cancel hyperlink", onHyperlink, run(Executor.CancelHyperlink)).
			WithI18n("contextmenu.hyperlink.cancel").WithIcon("cancel-hyperlink"),
		Action("Edit hyperlink", onHyperlink, run(Executor.EditHyperlink)).
			WithI18n("contextmenu.hyperlink.edit").WithIcon("edit-hyperlink"),
	}
}
