package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mindfiredigital/canvas-editor/internal/app"
	"github.com/mindfiredigital/canvas-editor/internal/i18n"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envWidth      = "CANVAS_EDITOR_WIDTH"
	envHeight     = "CANVAS_EDITOR_HEIGHT"
	envDocument   = "CANVAS_EDITOR_DOC"
	envLocale     = "CANVAS_EDITOR_LOCALE"
	envReadonly   = "CANVAS_EDITOR_READONLY"
	envShowFooter = "CANVAS_EDITOR_FOOTER"
	envTrace      = "CANVAS_EDITOR_TRACE"
	envLogFile    = "CANVAS_EDITOR_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("canvas-editor", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	doc := fs.String("doc", envOrDefault(env, envDocument, ""), "path to a YAML document fixture, reloaded on change")
	locale := fs.String("locale", envOrDefault(env, envLocale, i18n.DefaultLocale), "menu label locale (en, zh-CN)")
	readonly := fs.Bool("readonly", envOrBool(env, envReadonly, false), "open the document read-only")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Width:        *width,
			Height:       *height,
			DocumentPath: *doc,
			Locale:       *locale,
			Readonly:     *readonly,
			ShowFooter:   *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"doc":      *doc,
			"locale":   *locale,
			"readonly": strconv.FormatBool(*readonly),
			"footer":   strconv.FormatBool(*footer),
			"trace":    strconv.FormatBool(*trace),
			"logFile":  *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures the configured locale exists and the document fixture,
// when given, is readable.
func Validate(cfg Config) error {
	if !i18n.Supported(cfg.App.Locale) {
		return fmt.Errorf("unsupported locale %q (available: %s)", cfg.App.Locale, strings.Join(i18n.Locales(), ", "))
	}
	if cfg.App.DocumentPath != "" {
		info, err := os.Stat(cfg.App.DocumentPath)
		if err != nil {
			return fmt.Errorf("document: %w", err)
		}
		if info.IsDir() {
			return fmt.Errorf("document %s is a directory", cfg.App.DocumentPath)
		}
	}
	return nil
}
