package menu

import (
	"testing"

	"pgregory.net/rapid"
)

func names(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for i, e := range entries {
		if !Rendered(entries, i) {
			continue
		}
		if e.IsDivider() {
			out = append(out, "-")
			continue
		}
		out = append(out, e.Name)
	}
	return out
}

func TestFilterTrimsOuterDividers(t *testing.T) {
	entries := []Entry{
		Divider(),
		Action("A", Always, nil),
		Divider(),
		Action("B", Always, nil),
		Divider(),
	}
	filtered, ok := Filter(entries, Context{})
	if !ok {
		t.Fatalf("expected a match")
	}
	got := names(filtered)
	want := []string{"A", "-", "B"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestFilterKeepsAdjacentInteriorDividers(t *testing.T) {
	entries := []Entry{
		Action("A", Always, nil),
		Divider(),
		Action("hidden", func(Context) bool { return false }, nil),
		Divider(),
		Action("B", Always, nil),
	}
	filtered, _ := Filter(entries, Context{})
	got := names(filtered)
	if len(got) != 4 || got[1] != "-" || got[2] != "-" {
		t.Fatalf("expected both interior dividers, got %v", got)
	}
}

func TestFilterNoMatch(t *testing.T) {
	entries := []Entry{Divider(), Action("A", func(Context) bool { return false }, nil), Divider()}
	if _, ok := Filter(entries, Context{}); ok {
		t.Fatalf("expected no match when only dividers survive")
	}
}

func TestEntryWithoutPredicateNeverMatches(t *testing.T) {
	entries := []Entry{Action("bare", nil, nil)}
	filtered, ok := Filter(entries, Context{HasFocus: true})
	if ok || len(filtered) != 0 {
		t.Fatalf("expected entry without predicate to be skipped, got %v", filtered)
	}
}

func TestFilterDeterministic(t *testing.T) {
	reg := NewRegistry()
	rapid.Check(t, func(t *rapid.T) {
		ctx := Context{
			IsReadonly:    rapid.Bool().Draw(t, "readonly"),
			HasFocus:      rapid.Bool().Draw(t, "focus"),
			IsInTable:     rapid.Bool().Draw(t, "table"),
			IsCrossRowCol: rapid.Bool().Draw(t, "cross"),
		}
		ctx.HasSelection = ctx.HasFocus && rapid.Bool().Draw(t, "selection")
		first, okFirst := Filter(reg.Entries(), ctx)
		second, okSecond := Filter(reg.Entries(), ctx)
		if okFirst != okSecond {
			t.Fatalf("match flag differs between runs")
		}
		a, b := names(first), names(second)
		if len(a) != len(b) {
			t.Fatalf("expected identical lists, got %v and %v", a, b)
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("expected identical lists, got %v and %v", a, b)
			}
		}
	})
}
