package events

import (
	"os"
	"strings"

	"github.com/mindfiredigital/canvas-editor/internal/logging"
	"golang.org/x/term"
)

type AppTracer struct{}

var App = AppTracer{}

// Startup is the payload of the app.start trace.
type Startup struct {
	Args       []string               `json:"argv"`
	Flags      map[string]interface{} `json:"flags"`
	Config     interface{}            `json:"config"`
	Locales    []string               `json:"locales"`
	Document   string                 `json:"document"`
	Executable string                 `json:"executable,omitempty"`
	Cwd        string                 `json:"cwd,omitempty"`
	Errors     map[string]string      `json:"errors,omitempty"`
	Terminal   Terminal               `json:"terminal"`
}

// Fail records why field could not be collected.
func (s *Startup) Fail(field string, err error) {
	if err == nil {
		return
	}
	if s.Errors == nil {
		s.Errors = make(map[string]string)
	}
	s.Errors[field] = err.Error()
}

// Terminal summarises the standard descriptors. Source names the first one
// that reported a size.
type Terminal struct {
	Source string          `json:"source,omitempty"`
	Width  int             `json:"width,omitempty"`
	Height int             `json:"height,omitempty"`
	Probes []TerminalProbe `json:"probes"`
}

type TerminalProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// ProbeTerminal inspects stdin, stdout and stderr.
func ProbeTerminal() Terminal {
	var t Terminal
	for _, f := range []*os.File{os.Stdin, os.Stdout, os.Stderr} {
		p := probeFile(f)
		if t.Source == "" && p.Width > 0 {
			t.Source, t.Width, t.Height = p.Name, p.Width, p.Height
		}
		t.Probes = append(t.Probes, p)
	}
	return t
}

func probeFile(f *os.File) TerminalProbe {
	p := TerminalProbe{Name: strings.TrimPrefix(f.Name(), "/dev/")}
	fd := int(f.Fd())
	if fd < 0 || !term.IsTerminal(fd) {
		return p
	}
	p.IsTerminal = true
	width, height, err := term.GetSize(fd)
	if err != nil {
		p.Error = err.Error()
		return p
	}
	p.Width, p.Height = width, height
	return p
}

func (AppTracer) Start(s Startup) {
	logging.Trace("app.start", s)
}

func (AppTracer) Stop(reason string) {
	logging.Trace("app.stop", map[string]interface{}{"reason": reason})
}
