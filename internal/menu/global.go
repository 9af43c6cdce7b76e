package menu

const modKey = "Ctrl"

// GlobalEntries returns the clipboard, select-all and print group.
func GlobalEntries() []Entry {
	return []Entry{
		Action("Cut", All(Editable, Selected), run(Executor.Cut)).
			WithI18n("contextmenu.global.cut").WithIcon("cut").WithShortcut(modKey + " + X"),
		Action("Copy", Selected, run(Executor.Copy)).
			WithI18n("contextmenu.global.copy").WithIcon("copy").WithShortcut(modKey + " + C"),
		Action("Paste", All(Editable, Focused), run(Executor.Paste)).
			WithI18n("contextmenu.global.paste").WithIcon("paste").WithShortcut(modKey + " + V"),
		Action("Select all", Focused, run(Executor.SelectAll)).
			WithI18n("contextmenu.global.selectAll").WithIcon("select-all").WithShortcut(modKey + " + A"),
		Divider(),
		Action("Print", Always, run(Executor.Print)).
			WithI18n("contextmenu.global.print").WithIcon("print"),
		Divider(),
	}
}
