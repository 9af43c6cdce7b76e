package menu

import "github.com/mindfiredigital/canvas-editor/internal/editor"

func onImage(ctx Context) bool {
	return ctx.StartKind() == editor.TypeImage
}

func editableImage(ctx Context) bool {
	return !ctx.IsReadonly && onImage(ctx)
}

func setDisplay(display string) Callback {
	return run(func(exec Executor) { exec.SetImageDisplay(display) })
}

// ImageEntries returns the image group.
func ImageEntries() []Entry {
	return []Entry{
		Action("Change image", editableImage, run(Executor.ChangeImage)).
			WithI18n("contextmenu.image.change").WithIcon("image-change"),
		Action("Save image as", onImage, run(Executor.SaveAsImage)).
			WithI18n("contextmenu.image.saveAs").WithIcon("image"),
		Submenu("Text wrapping", editableImage,
			Action("Embed", Always, setDisplay(editor.DisplayEmbed)).
				WithI18n("contextmenu.image.textWrapType.embed"),
			Action("Up and down", Always, setDisplay(editor.DisplayUpDown)).
				WithI18n("contextmenu.image.textWrapType.upDown"),
		).WithI18n("contextmenu.image.textWrap").WithIcon("image-text-wrap"),
	}
}
