package events

import "github.com/mindfiredigital/canvas-editor/internal/logging"

type UITracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Command = CommandTracer{}
)

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (UITracer) Mouse(action, button string, x, y int) {
	logging.Trace("ui.mouse", map[string]interface{}{"action": action, "button": button, "x": x, "y": y})
}

func (UITracer) Caret(start, end int) {
	logging.Trace("ui.caret", map[string]interface{}{"start": start, "end": end})
}

func (CommandTracer) Invoke(id, label string) {
	logging.Trace("command.invoke", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, operation string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "operation": operation})
}
