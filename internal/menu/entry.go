package menu

// Kind tags the variant held by an Entry.
type Kind int

const (
	KindDivider Kind = iota
	KindAction
	KindSubmenu
)

func (k Kind) String() string {
	switch k {
	case KindDivider:
		return "divider"
	case KindAction:
		return "action"
	case KindSubmenu:
		return "submenu"
	default:
		return "unknown"
	}
}

// Command is the handle forwarded to action callbacks. The engine never
// inspects it.
type Command any

// Predicate decides whether an entry applies to a context snapshot.
type Predicate func(Context) bool

// Callback runs when a leaf action is clicked.
type Callback func(Command, Context)

// Entry is one configured menu row: a divider, a leaf action or a submenu.
type Entry struct {
	Kind     Kind
	Name     string
	Icon     string
	Shortcut string
	I18nKey  string
	When     Predicate
	Callback Callback
	Children []Entry
}

// Divider returns a separator entry.
func Divider() Entry {
	return Entry{Kind: KindDivider}
}

// Action returns a leaf entry.
func Action(name string, when Predicate, callback Callback) Entry {
	return Entry{Kind: KindAction, Name: name, When: when, Callback: callback}
}

// Submenu returns an entry that opens children on hover.
func Submenu(name string, when Predicate, children ...Entry) Entry {
	return Entry{Kind: KindSubmenu, Name: name, When: when, Children: children}
}

// WithIcon sets the icon name.
func (e Entry) WithIcon(icon string) Entry {
	e.Icon = icon
	return e
}

// WithShortcut sets the shortcut hint.
func (e Entry) WithShortcut(shortcut string) Entry {
	e.Shortcut = shortcut
	return e
}

// WithI18n sets the localization key used instead of the literal name.
func (e Entry) WithI18n(key string) Entry {
	e.I18nKey = key
	return e
}

// IsDivider reports whether the entry is a separator.
func (e Entry) IsDivider() bool { return e.Kind == KindDivider }

// HasChildren reports whether the entry opens a submenu.
func (e Entry) HasChildren() bool { return e.Kind == KindSubmenu }

// Matches evaluates the entry predicate. Entries without a predicate never
// match; dividers are not predicate-gated and always report false here.
func (e Entry) Matches(ctx Context) bool {
	if e.Kind == KindDivider || e.When == nil {
		return false
	}
	return e.When(ctx)
}

// Always is a predicate that matches every context.
func Always(Context) bool { return true }

// All combines predicates with logical and.
func All(preds ...Predicate) Predicate {
	return func(ctx Context) bool {
		for _, p := range preds {
			if p == nil || !p(ctx) {
				return false
			}
		}
		return true
	}
}

// Editable matches writable documents.
func Editable(ctx Context) bool { return !ctx.IsReadonly }

// Focused matches when the editor has a caret or selection.
func Focused(ctx Context) bool { return ctx.HasFocus }

// Selected matches when a non-empty range is selected.
func Selected(ctx Context) bool { return ctx.HasSelection }

// InTable matches when the caret sits in a table.
func InTable(ctx Context) bool { return ctx.IsInTable }

func cloneEntries(entries []Entry) []Entry {
	dup := make([]Entry, len(entries))
	copy(dup, entries)
	return dup
}
