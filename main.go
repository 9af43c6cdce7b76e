package main

import (
	"fmt"
	"os"

	"github.com/mindfiredigital/canvas-editor/internal/app"
	"github.com/mindfiredigital/canvas-editor/internal/config"
	"github.com/mindfiredigital/canvas-editor/internal/i18n"
	"github.com/mindfiredigital/canvas-editor/internal/logging"
	"github.com/mindfiredigital/canvas-editor/internal/logging/events"
)

func main() {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	events.App.Start(startup(cfg))

	err := app.Run(cfg.App)
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	_ = logging.Close()
	if err != nil {
		os.Exit(1)
	}
}

// startup collects the app.start trace: parsed flags, the resolved config,
// where the document comes from and what the terminal looks like.
func startup(cfg config.Config) events.Startup {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath

	s := events.Startup{
		Args:     cfg.Args,
		Flags:    flags,
		Config:   cfg,
		Locales:  i18n.Locales(),
		Document: documentSource(cfg.App.DocumentPath),
		Terminal: events.ProbeTerminal(),
	}
	exe, err := os.Executable()
	s.Executable = exe
	s.Fail("executable", err)
	cwd, err := os.Getwd()
	s.Cwd = cwd
	s.Fail("cwd", err)
	return s
}

// documentSource names where the editor content comes from.
func documentSource(path string) string {
	if path == "" {
		return "builtin"
	}
	return path
}
