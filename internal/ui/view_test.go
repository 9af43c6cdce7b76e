package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/mindfiredigital/canvas-editor/internal/editor"
	"github.com/mindfiredigital/canvas-editor/internal/layout"
	"github.com/mindfiredigital/canvas-editor/internal/menu"
	"github.com/mindfiredigital/canvas-editor/internal/testutil"
	"github.com/mindfiredigital/canvas-editor/internal/ui/state"
)

var errTest = errors.New("boom")

func TestRenderPanelGolden(t *testing.T) {
	p := &state.Panel{ID: 1, Items: []*state.Item{
		{Entry: menu.Action("Copy", menu.Always, nil), Label: "Copy", Shortcut: "Ctrl + C"},
		{Entry: menu.Action("Paste", menu.Always, nil), Label: "Paste", Shortcut: "Ctrl + V"},
		{Entry: menu.Divider(), Divider: true},
		{Entry: menu.Submenu("Text wrapping", menu.Always), Label: "Text wrapping"},
	}}
	testutil.AssertGolden(t, "panel_basic.golden", renderPanel(p)+"\n")
}

func TestSurfaceRowBoundsSkipBorder(t *testing.T) {
	s := newTermSurface(func() layout.Size { return layout.Size{W: 80, H: 24} })
	p := &state.Panel{ID: 7, Items: []*state.Item{{Label: "One"}, {Label: "Two"}}}
	s.Mount(p)
	size := s.Measure(7)
	if size.H != 4 {
		t.Fatalf("expected two rows plus border, got %+v", size)
	}
	if got := s.RowBounds(7, 1); got != layout.R(1, 2, size.W-2, 1) {
		t.Fatalf("unexpected row bounds %+v", got)
	}
	s.Reveal(7, layout.Point{X: 2, Y: 3})
	s.Remove(7)
	s.Remove(7)
	if s.Len() != 0 || len(s.order) != 0 {
		t.Fatalf("expected panel removed")
	}
}

func TestOverlayLine(t *testing.T) {
	cases := []struct {
		base  string
		top   string
		x     int
		width int
		want  string
	}{
		{"abcdefgh", "XY", 2, 8, "abXYefgh"},
		{"abc", "XY", 5, 8, "abc  XY "},
		{"abcdefgh", "XYZ", 6, 8, "abcdefXY"},
		{"abcdefgh", "XYZ", -1, 8, "YZcdefgh"},
		{"abcdefgh", "XY", 9, 8, "abcdefgh"},
	}
	for _, tc := range cases {
		if got := ansi.Strip(overlayLine(tc.base, tc.top, tc.x, tc.width)); got != tc.want {
			t.Fatalf("overlayLine(%q, %q, %d) = %q, want %q", tc.base, tc.top, tc.x, got, tc.want)
		}
	}
}

func TestLayoutDocumentWrapsAndMapsPoints(t *testing.T) {
	elements := editor.TextElements("abcdef\ngh")
	l := layoutDocument(elements, 4)
	if l.Height() != 3 {
		t.Fatalf("expected 3 lines, got %d", l.Height())
	}
	cases := []struct {
		p    layout.Point
		want int
	}{
		{layout.Point{X: 0, Y: 0}, 0},
		{layout.Point{X: 3, Y: 0}, 3},
		{layout.Point{X: 1, Y: 1}, 5},
		{layout.Point{X: 9, Y: 1}, 6},
		{layout.Point{X: 1, Y: 2}, 8},
		{layout.Point{X: 0, Y: 9}, 8},
	}
	for _, tc := range cases {
		if got := l.IndexAt(tc.p); got != tc.want {
			t.Fatalf("IndexAt(%+v) = %d, want %d", tc.p, got, tc.want)
		}
	}
	if got := layoutDocument(nil, 10).IndexAt(layout.Point{}); got != -1 {
		t.Fatalf("expected -1 for empty document, got %d", got)
	}
}

func TestImageElementsRenderBracketed(t *testing.T) {
	l := layoutDocument([]editor.Element{{Value: "logo", Type: editor.TypeImage}, {Value: "x"}}, 20)
	if len(l.lines[0]) != 2 || l.lines[0][0].w != 6 || l.lines[0][1].x != 6 {
		t.Fatalf("unexpected layout %+v", l.lines[0])
	}
}

func TestHoveredRowKeepsPanelWidth(t *testing.T) {
	items := func() []*state.Item {
		return []*state.Item{
			{Entry: menu.Action("Copy", menu.Always, nil), Label: "Copy", Icon: "copy", Shortcut: "Ctrl + C"},
			{Entry: menu.Submenu("Text wrapping", menu.Always), Label: "Text wrapping", Icon: "image-text-wrap"},
		}
	}
	plain := &state.Panel{ID: 1, Items: items()}
	hovered := &state.Panel{ID: 2, Items: items()}
	hovered.SetHover(1)
	want := ansi.Strip(renderPanel(plain))
	if got := ansi.Strip(renderPanel(hovered)); got != want {
		t.Fatalf("expected hover to change styling only:\n%s\nvs\n%s", got, want)
	}
	if !strings.Contains(want, "⧉") || !strings.Contains(want, submenuIndicator) {
		t.Fatalf("expected icon and indicator columns:\n%s", want)
	}
}
