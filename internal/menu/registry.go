package menu

// Registry is the ordered flat list of candidate top-level entries.
// Registration order fixes visual order and divider placement.
type Registry struct {
	entries []Entry
}

// NewRegistry returns a registry pre-seeded with the built-in groups.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Register(GlobalEntries()...)
	r.Register(TableEntries()...)
	r.Register(ImageEntries()...)
	r.Register(ControlEntries()...)
	r.Register(HyperlinkEntries()...)
	return r
}

// NewEmptyRegistry returns a registry without built-in entries.
func NewEmptyRegistry() *Registry {
	return &Registry{}
}

// Register appends entries. New entries take effect on the next trigger.
func (r *Registry) Register(entries ...Entry) {
	r.entries = append(r.entries, entries...)
}

// Entries returns a copy of the registered entries in order.
func (r *Registry) Entries() []Entry {
	return cloneEntries(r.entries)
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	return len(r.entries)
}
