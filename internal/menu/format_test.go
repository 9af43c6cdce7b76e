package menu

import "testing"

type mapTranslator map[string]string

func (m mapTranslator) Translate(key string) string { return m[key] }

func TestFormatName(t *testing.T) {
	cases := []struct {
		template string
		selected string
		want     string
	}{
		{"Search {{selectedText}}", "foo", "Search foo"},
		{"{{selectedText}} and {{selectedText}}", "x", "x and x"},
		{"Plain", "ignored", "Plain"},
		{"Search {{selectedText}}", "", "Search "},
	}
	for _, tc := range cases {
		if got := FormatName(tc.template, tc.selected); got != tc.want {
			t.Fatalf("FormatName(%q, %q) = %q, want %q", tc.template, tc.selected, got, tc.want)
		}
	}
}

func TestLabelPrefersTranslation(t *testing.T) {
	tr := mapTranslator{"contextmenu.global.copy": "复制"}
	entry := Action("Copy", Always, nil).WithI18n("contextmenu.global.copy")
	if got := Label(entry, tr, Context{}); got != "复制" {
		t.Fatalf("expected translated label, got %q", got)
	}
}

func TestLabelFallsBackToName(t *testing.T) {
	entry := Action("Look up {{selectedText}}", Always, nil).WithI18n("missing.key")
	got := Label(entry, mapTranslator{}, Context{SelectedText: "word"})
	if got != "Look up word" {
		t.Fatalf("expected literal name fallback, got %q", got)
	}
	if got := Label(entry, nil, Context{}); got != "Look up " {
		t.Fatalf("expected nil translator to use name, got %q", got)
	}
}
