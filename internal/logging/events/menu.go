package events

import "github.com/mindfiredigital/canvas-editor/internal/logging"

type MenuTracer struct{}

type DismissReason string

const (
	DismissClick   DismissReason = "click"
	DismissOutside DismissReason = "outside"
	DismissTrigger DismissReason = "trigger"
	DismissHost    DismissReason = "host"
)

var Menu = MenuTracer{}

func (MenuTracer) Open(panel, entries, x, y int) {
	logging.Trace("menu.open", map[string]interface{}{"panel": panel, "entries": entries, "x": x, "y": y})
}

func (MenuTracer) Skip(x, y int) {
	logging.Trace("menu.skip", map[string]interface{}{"x": x, "y": y})
}

func (MenuTracer) Submenu(parent, child int, label string) {
	logging.Trace("menu.submenu", map[string]interface{}{"parent": parent, "child": child, "label": label})
}

func (MenuTracer) Hover(panel, row int, label string) {
	logging.Trace("menu.hover", map[string]interface{}{"panel": panel, "row": row, "label": label})
}

func (MenuTracer) Dismiss(reason DismissReason, panels int) {
	logging.Trace("menu.dismiss", map[string]interface{}{"reason": string(reason), "panels": panels})
}
