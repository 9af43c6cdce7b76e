package menu

import "github.com/mindfiredigital/canvas-editor/internal/editor"

// ControlEntries returns the form control group.
func ControlEntries() []Entry {
	return []Entry{
		Action("Delete control", func(ctx Context) bool {
			return !ctx.IsReadonly && !ctx.HasSelection && ctx.StartKind() == editor.TypeControl
		}, run(Executor.DeleteControl)).
			WithI18n("contextmenu.control.delete").WithIcon("remove-control"),
	}
}
