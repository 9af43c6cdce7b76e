package command

import (
	"github.com/mindfiredigital/canvas-editor/internal/logging/events"
	"github.com/mindfiredigital/canvas-editor/internal/menu"
)

// Request encapsulates a leaf entry invocation.
type Request struct {
	ID       string
	Label    string
	Callback menu.Callback
	Command  menu.Command
	Context  menu.Context
}

// Observer is notified after a request ran.
type Observer func(Request)

// Bus coordinates the execution of menu callbacks.
type Bus struct {
	observers []Observer
}

// New initialises a command bus instance.
func New(observers ...Observer) *Bus {
	return &Bus{observers: observers}
}

// Execute runs the request callback synchronously while emitting trace logs.
// It reports whether a callback was invoked.
func (b *Bus) Execute(req Request) bool {
	if req.Callback == nil {
		events.Command.Skip(req.ID, req.Label)
		return false
	}
	events.Command.Invoke(req.ID, req.Label)
	req.Callback(req.Command, req.Context)
	for _, obs := range b.observers {
		obs(req)
	}
	return true
}
