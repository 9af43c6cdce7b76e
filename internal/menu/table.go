package menu

func tableEditable(ctx Context) bool {
	return !ctx.IsReadonly && ctx.IsInTable
}

// TableEntries returns the table editing group.
func TableEntries() []Entry {
	return []Entry{
		Divider(),
		Submenu("Insert row/column", tableEditable,
			Action("Insert row above", Always, run(Executor.InsertTableTopRow)).
				WithI18n("contextmenu.table.insertTopRow").WithIcon("insert-top-row"),
			Action("Insert row below", Always, run(Executor.InsertTableBottomRow)).
				WithI18n("contextmenu.table.insertBottomRow").WithIcon("insert-bottom-row"),
			Action("Insert column left", Always, run(Executor.InsertTableLeftCol)).
				WithI18n("contextmenu.table.insertLeftCol").WithIcon("insert-left-col"),
			Action("Insert column right", Always, run(Executor.InsertTableRightCol)).
				WithI18n("contextmenu.table.insertRightCol").WithIcon("insert-right-col"),
		).WithI18n("contextmenu.table.insertRowCol").WithIcon("insert-row-col"),
		Submenu("Delete row/column", tableEditable,
			Action("Delete row", Always, run(Executor.DeleteTableRow)).
				WithI18n("contextmenu.table.deleteRow").WithIcon("delete-row"),
			Action("Delete column", Always, run(Executor.DeleteTableCol)).
				WithI18n("contextmenu.table.deleteCol").WithIcon("delete-col"),
			Action("Delete table", Always, run(Executor.DeleteTable)).
				WithI18n("contextmenu.table.deleteTable").WithIcon("delete-table"),
		).WithI18n("contextmenu.table.deleteRowCol").WithIcon("delete-row-col"),
		Action("Merge cells", All(tableEditable, func(ctx Context) bool { return ctx.IsCrossRowCol }), run(Executor.MergeTableCell)).
			WithI18n("contextmenu.table.mergeCell").WithIcon("merge-cell"),
		Action("Cancel merge", All(tableEditable, func(ctx Context) bool { return !ctx.IsCrossRowCol }), run(Executor.CancelMergeTableCell)).
			WithI18n("contextmenu.table.mergeCancelCell").WithIcon("merge-cancel-cell"),
	}
}
