package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Locale != "en" || cfg.App.Width != 0 || cfg.App.Readonly {
		t.Fatalf("unexpected defaults %+v", cfg.App)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate: %v", err)
	}
}

func TestLoadArgsEnvironmentAndFlags(t *testing.T) {
	env := []string{
		"CANVAS_EDITOR_WIDTH=120",
		"CANVAS_EDITOR_LOCALE=zh-CN",
		"CANVAS_EDITOR_READONLY=true",
		"CANVAS_EDITOR_TRACE=1",
		"BROKEN",
	}
	cfg, err := LoadArgs([]string{"-width", "90", "-footer", "-log-file", "x.log"}, env)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Width != 90 {
		t.Fatalf("expected flag to override env width, got %d", cfg.App.Width)
	}
	if cfg.App.Locale != "zh-CN" || !cfg.App.Readonly || !cfg.App.ShowFooter {
		t.Fatalf("unexpected app config %+v", cfg.App)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "x.log" {
		t.Fatalf("unexpected logging config %+v", cfg.Logging)
	}
	if cfg.Flags["width"] != "90" || cfg.Flags["locale"] != "zh-CN" {
		t.Fatalf("unexpected flags %v", cfg.Flags)
	}
}

func TestLoadArgsRejectsNegativeSize(t *testing.T) {
	if _, err := LoadArgs([]string{"-height", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative height")
	}
}

func TestLoadArgsIgnoresBadEnvValues(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"CANVAS_EDITOR_WIDTH=wide", "CANVAS_EDITOR_FOOTER=maybe"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.ShowFooter {
		t.Fatalf("expected fallbacks, got %+v", cfg.App)
	}
}

func TestValidateLocale(t *testing.T) {
	cfg, _ := LoadArgs([]string{"-locale", "fr"}, nil)
	err := Validate(cfg)
	if err == nil || !strings.Contains(err.Error(), "unsupported locale") {
		t.Fatalf("expected locale error, got %v", err)
	}
}

func TestValidateDocument(t *testing.T) {
	dir := t.TempDir()
	cfg, _ := LoadArgs([]string{"-doc", filepath.Join(dir, "missing.yaml")}, nil)
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected missing document error")
	}
	cfg, _ = LoadArgs([]string{"-doc", dir}, nil)
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected directory error")
	}
	path := filepath.Join(dir, "doc.yaml")
	if err := os.WriteFile(path, []byte("text: hi\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, _ = LoadArgs([]string{"-doc", path}, nil)
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected valid document: %v", err)
	}
}
