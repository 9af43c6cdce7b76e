package menu

import (
	"testing"

	"github.com/mindfiredigital/canvas-editor/internal/editor"
)

func visible(reg *Registry, ctx Context) map[string]bool {
	filtered, _ := Filter(reg.Entries(), ctx)
	out := make(map[string]bool)
	for _, e := range filtered {
		if !e.IsDivider() {
			out[e.Name] = true
		}
	}
	return out
}

func TestRegistryOrderIsRegistrationOrder(t *testing.T) {
	reg := NewEmptyRegistry()
	reg.Register(Action("first", Always, nil))
	reg.Register(Action("second", Always, nil), Action("third", Always, nil))
	entries := reg.Entries()
	if reg.Len() != 3 || entries[0].Name != "first" || entries[2].Name != "third" {
		t.Fatalf("unexpected order: %+v", entries)
	}
	entries[0].Name = "mutated"
	if reg.Entries()[0].Name != "first" {
		t.Fatalf("expected Entries to return a copy")
	}
}

func TestBuiltinGlobalEntries(t *testing.T) {
	reg := NewRegistry()
	got := visible(reg, Context{HasFocus: true, HasSelection: true})
	for _, name := range []string{"Cut", "Copy", "Paste", "Select all", "Print"} {
		if !got[name] {
			t.Fatalf("expected %q for editable selection, got %v", name, got)
		}
	}
	readonly := visible(reg, Context{IsReadonly: true, HasFocus: true, HasSelection: true})
	if readonly["Cut"] || readonly["Paste"] {
		t.Fatalf("expected no cut/paste in readonly mode, got %v", readonly)
	}
	if !readonly["Copy"] {
		t.Fatalf("expected copy in readonly mode")
	}
}

func TestBuiltinTableEntries(t *testing.T) {
	reg := NewRegistry()
	got := visible(reg, Context{HasFocus: true, IsInTable: true})
	if !got["Insert row/column"] || !got["Delete row/column"] || !got["Cancel merge"] {
		t.Fatalf("expected table entries, got %v", got)
	}
	if got["Merge cells"] {
		t.Fatalf("merge should require a cross row/col selection")
	}
	cross := visible(reg, Context{HasFocus: true, HasSelection: true, IsInTable: true, IsCrossRowCol: true})
	if !cross["Merge cells"] || cross["Cancel merge"] {
		t.Fatalf("expected merge only, got %v", cross)
	}
}

func TestBuiltinElementEntries(t *testing.T) {
	reg := NewRegistry()
	image := &editor.Element{Value: "logo", Type: editor.TypeImage}
	got := visible(reg, Context{HasFocus: true, StartElement: image})
	if !got["Change image"] || !got["Save image as"] || !got["Text wrapping"] {
		t.Fatalf("expected image entries, got %v", got)
	}
	ro := visible(reg, Context{IsReadonly: true, HasFocus: true, StartElement: image})
	if ro["Change image"] || !ro["Save image as"] {
		t.Fatalf("unexpected readonly image entries %v", ro)
	}

	control := &editor.Element{Value: "name", Type: editor.TypeControl}
	if got := visible(reg, Context{HasFocus: true, StartElement: control}); !got["Delete control"] {
		t.Fatalf("expected delete control, got %v", got)
	}

	link := &editor.Element{Value: "docs", Type: editor.TypeHyperlink}
	got = visible(reg, Context{HasFocus: true, StartElement: link})
	for _, name := range []string{"Delete hyperlink", "Cancel hyperlink", "Edit hyperlink"} {
		if !got[name] {
			t.Fatalf("expected %q, got %v", name, got)
		}
	}
}

func TestBuiltinCallbackDrivesExecutor(t *testing.T) {
	ed := editor.New(editor.Document{Elements: editor.TextElements("hello")})
	ed.SetRange(0, 5)
	cmd := editor.NewCommand(ed, editor.WithClipboard(&editor.MemoryClipboard{}))
	for _, e := range GlobalEntries() {
		if e.Name == "Copy" {
			e.Callback(cmd, Context{})
		}
	}
	last, ok := cmd.Last()
	if !ok || last.Name != "copy" {
		t.Fatalf("expected copy recorded, got %+v", last)
	}
}

func TestBuiltinCallbackIgnoresForeignCommand(t *testing.T) {
	for _, e := range GlobalEntries() {
		if e.Callback != nil {
			e.Callback("not an executor", Context{})
		}
	}
}
