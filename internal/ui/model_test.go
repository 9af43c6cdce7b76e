package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mindfiredigital/canvas-editor/internal/backend"
	"github.com/mindfiredigital/canvas-editor/internal/editor"
	"github.com/mindfiredigital/canvas-editor/internal/pointer"
)

func newTestHarness(doc editor.Document) *Harness {
	return newSizedHarness(doc, 60)
}

func newSizedHarness(doc editor.Document, width int) *Harness {
	model := NewModel(Options{
		Width:     width,
		Height:    20,
		Document:  doc,
		Clipboard: &editor.MemoryClipboard{},
	})
	return NewHarness(model)
}

func textDocument(text string) editor.Document {
	return editor.Document{Range: editor.NoRange, Elements: editor.TextElements(text)}
}

func tableDocument() editor.Document {
	elements := editor.TextElements("ab\n")
	for _, r := range "xy" {
		elements = append(elements, editor.Element{Value: string(r), Type: editor.TypeTableCell, TableID: "t1"})
	}
	return editor.Document{Range: editor.NoRange, Elements: elements}
}

func TestRightClickOpensMenuAtPointer(t *testing.T) {
	h := newTestHarness(textDocument("hello world"))
	h.RightClick(3, 0)
	panels := h.Model().Menu().OpenPanels()
	if len(panels) != 1 {
		t.Fatalf("expected root panel, got %d", len(panels))
	}
	if panels[0].Position.X != 3 || panels[0].Position.Y != 0 {
		t.Fatalf("unexpected panel position %+v", panels[0].Position)
	}
	rng := h.Model().Editor().Range()
	if rng.StartIndex != 3 || !rng.Collapsed() {
		t.Fatalf("expected caret moved to 3, got %+v", rng)
	}
	view := h.View()
	for _, want := range []string{"Paste", "Select all", "Print", "Ctrl + V"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Cut") {
		t.Fatalf("did not expect Cut without a selection:\n%s", view)
	}
}

func TestClickingLeafRunsCommand(t *testing.T) {
	h := newTestHarness(textDocument("hello world"))
	h.RightClick(3, 0)
	root := h.Model().Menu().OpenPanels()[0]
	if root.Items[1].Label != "Select all" {
		t.Fatalf("expected Select all on row 1, got %q", root.Items[1].Label)
	}
	h.Click(root.Position.X+2, root.Position.Y+2)
	if h.Model().Menu().IsOpen() {
		t.Fatalf("expected menu closed after click")
	}
	rng := h.Model().Editor().Range()
	if rng.StartIndex != 0 || rng.EndIndex != len("hello world")-1 {
		t.Fatalf("expected everything selected, got %+v", rng)
	}
	if !strings.Contains(h.View(), "Select all: select-all") {
		t.Fatalf("expected status line to report the command:\n%s", h.View())
	}
}

func TestPressOutsideDismissesAndMovesCaret(t *testing.T) {
	h := newTestHarness(textDocument("hello world"))
	h.RightClick(3, 0)
	h.Click(40, 10)
	if h.Model().Menu().IsOpen() {
		t.Fatalf("expected outside press to dismiss the menu")
	}
	rng := h.Model().Editor().Range()
	if rng.StartIndex != 10 || !rng.Collapsed() {
		t.Fatalf("expected caret at the last element, got %+v", rng)
	}
}

func TestRightClickInsideSelectionKeepsIt(t *testing.T) {
	h := newTestHarness(textDocument("hello world"))
	h.Press(tea.MouseButtonLeft, 0, 0)
	h.Send(tea.MouseMsg{X: 4, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	h.Release(tea.MouseButtonLeft, 4, 0)
	h.RightClick(2, 0)
	rng := h.Model().Editor().Range()
	if rng.StartIndex != 0 || rng.EndIndex != 4 {
		t.Fatalf("expected selection kept, got %+v", rng)
	}
	view := h.View()
	if !strings.Contains(view, "Cut") || !strings.Contains(view, "Copy") {
		t.Fatalf("expected clipboard entries for a selection:\n%s", view)
	}
}

func TestSubmenuOpensOnHoverAndRunsChild(t *testing.T) {
	h := newSizedHarness(tableDocument(), 100)
	h.RightClick(0, 1)
	root := h.Model().Menu().OpenPanels()[0]
	row := -1
	for i, item := range root.Items {
		if item.Label == "Insert row/column" {
			row = i
		}
	}
	if row < 0 {
		t.Fatalf("expected table submenu, got %d rows", len(root.Items))
	}
	h.Move(root.Position.X+2, root.Position.Y+1+row)
	panels := h.Model().Menu().OpenPanels()
	if len(panels) != 2 {
		t.Fatalf("expected child panel, got %d", len(panels))
	}
	child := panels[1]
	if child.Position.X != root.Position.X+root.Size.W-1 || child.Position.Y != root.Position.Y+1+row {
		t.Fatalf("expected child anchored at the row's right edge, got %+v", child.Position)
	}
	if !strings.Contains(h.View(), "Insert row above") {
		t.Fatalf("expected child rows in view:\n%s", h.View())
	}

	h.Move(child.Position.X+2, child.Position.Y+1)
	if !root.Items[row].Hover || !child.Items[0].Hover {
		t.Fatalf("expected submenu row and child row hovered")
	}
	h.Click(child.Position.X+2, child.Position.Y+1)
	last, ok := h.Model().Command().Last()
	if !ok || last.Name != "table-insert-top-row" {
		t.Fatalf("expected table insert recorded, got %+v", last)
	}
	if h.Model().Menu().IsOpen() {
		t.Fatalf("expected menu closed")
	}
}

func TestBackendReloadDismissesMenu(t *testing.T) {
	h := newTestHarness(textDocument("hello world"))
	h.RightClick(3, 0)
	h.Send(backendEventMsg{event: backend.Event{
		Kind: backend.KindDocument,
		Path: "doc.yaml",
		Data: textDocument("new"),
	}})
	if h.Model().Menu().IsOpen() {
		t.Fatalf("expected reload to close the menu")
	}
	if h.Model().Editor().Len() != 3 {
		t.Fatalf("expected reloaded document, got %d elements", h.Model().Editor().Len())
	}
	if !strings.Contains(h.View(), "document reloaded") {
		t.Fatalf("expected reload status")
	}
}

func TestBackendErrorShown(t *testing.T) {
	h := newTestHarness(textDocument("hello"))
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindDocument, Path: "doc.yaml", Err: errTest}})
	if !strings.Contains(h.View(), "reload doc.yaml") {
		t.Fatalf("expected error in status line:\n%s", h.View())
	}
}

func TestQuitDetachesMenu(t *testing.T) {
	h := newTestHarness(textDocument("hello"))
	h.RightClick(1, 0)
	_, cmd := h.Model().Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	if h.Model().Menu().IsOpen() {
		t.Fatalf("expected menu disposed on quit")
	}
	if n := h.Model().pointer.Len(pointer.ContextMenu); n != 0 {
		t.Fatalf("expected listeners removed, got %d", n)
	}
}

func TestToggleReadonly(t *testing.T) {
	h := newTestHarness(textDocument("hello"))
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlR})
	if !h.Model().Editor().IsReadonly() {
		t.Fatalf("expected read-only after ctrl+r")
	}
	h.RightClick(1, 0)
	if strings.Contains(h.View(), "Paste") {
		t.Fatalf("expected no paste in read-only mode:\n%s", h.View())
	}
}

func TestWindowSizeRespectsFixedDimensions(t *testing.T) {
	h := NewHarness(NewModel(Options{Width: 30, Document: textDocument("x")}))
	h.Send(tea.WindowSizeMsg{Width: 100, Height: 40})
	m := h.Model()
	if m.width != 30 || m.height != 40 {
		t.Fatalf("expected width fixed and height resized, got %dx%d", m.width, m.height)
	}
	if lines := strings.Split(h.View(), "\n"); len(lines) != 40 {
		t.Fatalf("expected 40 lines, got %d", len(lines))
	}
}

func TestMenuFlipsNearRightEdge(t *testing.T) {
	h := newTestHarness(textDocument(strings.Repeat("a", 59)))
	h.RightClick(58, 0)
	root := h.Model().Menu().OpenPanels()[0]
	if root.Position.X != 58-root.Size.W {
		t.Fatalf("expected flip to %d, got %d", 58-root.Size.W, root.Position.X)
	}
}

func TestReadonlyOptionSurvivesReload(t *testing.T) {
	h := NewHarness(NewModel(Options{
		Width:     60,
		Height:    20,
		Document:  textDocument("hello"),
		Readonly:  true,
		Clipboard: &editor.MemoryClipboard{},
	}))
	h.Send(backendEventMsg{event: backend.Event{
		Kind: backend.KindDocument,
		Path: "doc.yaml",
		Data: textDocument("edited"),
	}})
	if !h.Model().Editor().IsReadonly() {
		t.Fatalf("expected read-only after reload")
	}
	h.RightClick(1, 0)
	if strings.Contains(h.View(), "Paste") {
		t.Fatalf("expected editable entries hidden after reload:\n%s", h.View())
	}
}

func TestRightClickInsidePanelReopensAtPointer(t *testing.T) {
	h := newTestHarness(textDocument("hello world"))
	h.RightClick(3, 0)
	root := h.Model().Menu().OpenPanels()[0]
	x, y := root.Position.X+2, root.Position.Y+2
	h.RightClick(x, y)
	panels := h.Model().Menu().OpenPanels()
	if len(panels) != 1 {
		t.Fatalf("expected a single reopened panel, got %d", len(panels))
	}
	if panels[0].ID == root.ID || panels[0].Position.X != x || panels[0].Position.Y != y {
		t.Fatalf("expected a new panel at (%d,%d), got %+v", x, y, panels[0].Position)
	}
	if rng := h.Model().Editor().Range(); rng.StartIndex != 3 || !rng.Collapsed() {
		t.Fatalf("expected caret untouched, got %+v", rng)
	}
}
