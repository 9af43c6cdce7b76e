package menu

// Filter reduces entries to those applicable to ctx in a single pass.
// Dividers are kept provisionally; the renderer drops a leading or trailing
// one. The boolean reports whether any non-divider entry survived, which is
// the condition for opening a menu at all.
func Filter(entries []Entry, ctx Context) ([]Entry, bool) {
	out := make([]Entry, 0, len(entries))
	matched := false
	for _, entry := range entries {
		if entry.IsDivider() {
			out = append(out, entry)
			continue
		}
		if entry.Matches(ctx) {
			out = append(out, entry)
			matched = true
		}
	}
	return out, matched
}

// Rendered reports whether the entry at index i of a render list produces a
// row. Only dividers at the very start or end are dropped; interior
// dividers always render, even when adjacent.
func Rendered(entries []Entry, i int) bool {
	if i < 0 || i >= len(entries) {
		return false
	}
	if !entries[i].IsDivider() {
		return true
	}
	return i != 0 && i != len(entries)-1
}
