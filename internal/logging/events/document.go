package events

import "github.com/mindfiredigital/canvas-editor/internal/logging"

type DocumentTracer struct{}

var Document = DocumentTracer{}

func (DocumentTracer) Reload(path string, elements int) {
	logging.Trace("document.reload", map[string]interface{}{"path": path, "elements": elements})
}

func (DocumentTracer) Error(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("document.error", map[string]interface{}{"path": path, "error": err.Error()})
}
