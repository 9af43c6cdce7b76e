package menu

import "github.com/mindfiredigital/canvas-editor/internal/editor"

// Executor is the command surface the built-in entries drive. Hosts that
// forward a different command handle simply get no-ops from the built-ins.
type Executor interface {
	Cut()
	Copy()
	Paste()
	SelectAll()
	Print()
	InsertTableTopRow()
	InsertTableBottomRow()
	InsertTableLeftCol()
	InsertTableRightCol()
	DeleteTableRow()
	DeleteTableCol()
	DeleteTable()
	MergeTableCell()
	CancelMergeTableCell()
	ChangeImage()
	SaveAsImage()
	SetImageDisplay(display string)
	DeleteControl()
	DeleteHyperlink()
	CancelHyperlink()
	EditHyperlink()
	InsertElements(elements []editor.Element)
	WordTool()
}

var _ Executor = (*editor.Command)(nil)

// run adapts an executor method into a callback.
func run(fn func(Executor)) Callback {
	return func(cmd Command, _ Context) {
		if exec, ok := cmd.(Executor); ok {
			fn(exec)
		}
	}
}
