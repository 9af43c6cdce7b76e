package app

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mindfiredigital/canvas-editor/internal/backend"
	"github.com/mindfiredigital/canvas-editor/internal/editor"
	"github.com/mindfiredigital/canvas-editor/internal/i18n"
	"github.com/mindfiredigital/canvas-editor/internal/ui"
)

const reloadInterval = 500 * time.Millisecond

// Config describes user-provided application options.
type Config struct {
	Width        int
	Height       int
	DocumentPath string
	Locale       string
	Readonly     bool
	ShowFooter   bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model, watcher, err := NewModel(cfg, &editor.SystemClipboard{})
	if err != nil {
		return err
	}
	if watcher != nil {
		defer watcher.Stop()
	}
	defer model.Close()
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// NewModel loads the catalog and the document named by cfg and returns a
// model with the host entries registered. The watcher is nil when no
// document path is configured.
func NewModel(cfg Config, clipboard editor.Clipboard) (*ui.Model, *backend.Watcher, error) {
	catalog, err := i18n.Load(cfg.Locale)
	if err != nil {
		return nil, nil, fmt.Errorf("load locale %q: %w", cfg.Locale, err)
	}
	doc := editor.DefaultDocument()
	var watcher *backend.Watcher
	if cfg.DocumentPath != "" {
		doc, err = editor.LoadDocument(cfg.DocumentPath)
		if err != nil {
			return nil, nil, err
		}
		watcher, err = backend.NewWatcher(cfg.DocumentPath, reloadInterval)
		if err != nil {
			return nil, nil, fmt.Errorf("watch %s: %w", cfg.DocumentPath, err)
		}
	}
	model := ui.NewModel(ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Document:   doc,
		Readonly:   cfg.Readonly,
		Translator: catalog,
		Clipboard:  clipboard,
		Watcher:    watcher,
	})
	model.RegisterEntries(HostEntries()...)
	return model, watcher, nil
}
