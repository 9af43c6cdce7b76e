package backend

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mindfiredigital/canvas-editor/internal/editor"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindDocument Kind = iota
)

// Event conveys updated data or an error from the watched source.
type Event struct {
	Kind Kind
	Path string
	Data interface{}
	Err  error
}

// Watcher reloads a document fixture whenever it changes on disk and
// publishes the result.
type Watcher struct {
	path     string
	interval time.Duration
	fs       *fsnotify.Watcher

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher watches path. Bursts of file events within interval collapse
// into a single reload.
func NewWatcher(path string, interval time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// the directory survives editors that replace the file on save
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     abs,
		interval: interval,
		fs:       fsw,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	w.wg.Add(1)
	go w.watch()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher and releases the file watch.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the watch goroutine has exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) relevant(evt fsnotify.Event) bool {
	if filepath.Clean(evt.Name) != w.path {
		return false
	}
	return evt.Has(fsnotify.Write) || evt.Has(fsnotify.Create) || evt.Has(fsnotify.Rename)
}

func (w *Watcher) watch() {
	defer w.wg.Done()
	defer w.fs.Close()

	throttle := newThrottle(w.interval)
	var pending <-chan time.Time

	emit := func(evt Event) bool {
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	for {
		select {
		case <-w.ctx.Done():
			return
		case evt, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if w.relevant(evt) {
				pending = time.After(w.interval)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			if !emit(Event{Kind: KindDocument, Path: w.path, Err: err}) {
				return
			}
		case <-pending:
			pending = nil
			if !throttle.wait(w.ctx) {
				return
			}
			doc, err := editor.LoadDocument(w.path)
			if !emit(Event{Kind: KindDocument, Path: w.path, Data: doc, Err: err}) {
				return
			}
		}
	}
}
