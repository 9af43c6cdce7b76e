package dispatcher

import (
	"fmt"

	"github.com/mindfiredigital/canvas-editor/internal/backend"
	"github.com/mindfiredigital/canvas-editor/internal/editor"
	"github.com/mindfiredigital/canvas-editor/internal/logging/events"
)

// DocumentStore receives reloaded documents.
type DocumentStore interface {
	Load(doc editor.Document)
}

// Dismisser closes any open menu tree whose snapshot a reload invalidates.
type Dismisser interface {
	Dispose()
}

type Result struct {
	DocumentUpdated bool
	Elements        int
	Err             error
}

type Dispatcher struct {
	documents DocumentStore
	menus     Dismisser
}

func New(documents DocumentStore, menus Dismisser) *Dispatcher {
	return &Dispatcher{documents: documents, menus: menus}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		events.Document.Error(evt.Path, evt.Err)
		res.Err = fmt.Errorf("reload %s: %w", evt.Path, evt.Err)
		return res
	}
	switch evt.Kind {
	case backend.KindDocument:
		doc, ok := evt.Data.(editor.Document)
		if !ok {
			return res
		}
		if d.menus != nil {
			d.menus.Dispose()
		}
		d.documents.Load(doc)
		events.Document.Reload(evt.Path, len(doc.Elements))
		res.DocumentUpdated = true
		res.Elements = len(doc.Elements)
	}
	return res
}
