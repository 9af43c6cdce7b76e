package editor

import (
	"fmt"
	"strings"
)

// Operation records one executed command.
type Operation struct {
	Name   string
	Detail string
}

func (o Operation) String() string {
	if o.Detail == "" {
		return o.Name
	}
	return o.Name + " " + o.Detail
}

// Command is the command surface handed to context menu callbacks. Table
// layout, printing and dialogs are recorded rather than performed.
type Command struct {
	editor    *Editor
	clipboard Clipboard
	history   []Operation
	onError   func(error)
}

// CommandOption customises a Command.
type CommandOption func(*Command)

// WithClipboard overrides the clipboard used by cut, copy and paste.
func WithClipboard(c Clipboard) CommandOption {
	return func(cmd *Command) { cmd.clipboard = c }
}

// WithErrorHandler receives errors that commands cannot return to their
// caller.
func WithErrorHandler(fn func(error)) CommandOption {
	return func(cmd *Command) { cmd.onError = fn }
}

// NewCommand binds a command surface to an editor.
func NewCommand(e *Editor, opts ...CommandOption) *Command {
	c := &Command{editor: e, clipboard: &SystemClipboard{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// History returns executed operations, oldest first.
func (c *Command) History() []Operation {
	dup := make([]Operation, len(c.history))
	copy(dup, c.history)
	return dup
}

// Last returns the most recent operation.
func (c *Command) Last() (Operation, bool) {
	if len(c.history) == 0 {
		return Operation{}, false
	}
	return c.history[len(c.history)-1], true
}

func (c *Command) record(name, detail string) {
	c.history = append(c.history, Operation{Name: name, Detail: detail})
}

func (c *Command) fail(err error) {
	if err != nil && c.onError != nil {
		c.onError(err)
	}
}

func (c *Command) Cut() {
	if c.editor.IsReadonly() {
		return
	}
	rng := c.editor.Range()
	if rng.Collapsed() {
		return
	}
	text := c.editor.String()
	if err := c.clipboard.WriteAll(text); err != nil {
		c.fail(fmt.Errorf("cut: %w", err))
		return
	}
	c.editor.deleteRange(rng.StartIndex+1, rng.EndIndex)
	c.record("cut", fmt.Sprintf("%q", text))
}

func (c *Command) Copy() {
	text := c.editor.String()
	if text == "" {
		return
	}
	if err := c.clipboard.WriteAll(text); err != nil {
		c.fail(fmt.Errorf("copy: %w", err))
		return
	}
	c.record("copy", fmt.Sprintf("%q", text))
}

func (c *Command) Paste() {
	if c.editor.IsReadonly() {
		return
	}
	text, err := c.clipboard.ReadAll()
	if err != nil {
		c.fail(fmt.Errorf("paste: %w", err))
		return
	}
	if text == "" {
		c.record("paste", "(empty)")
		return
	}
	rng := c.editor.Range()
	if !rng.Collapsed() {
		c.editor.deleteRange(rng.StartIndex+1, rng.EndIndex)
		rng = c.editor.Range()
	}
	c.editor.insertAfter(rng.StartIndex, TextElements(text))
	c.record("paste", fmt.Sprintf("%q", text))
}

func (c *Command) SelectAll() {
	if c.editor.Len() == 0 {
		return
	}
	c.editor.SetRange(0, c.editor.Len()-1)
	c.record("select-all", "")
}

func (c *Command) Print() {
	c.record("print", fmt.Sprintf("%d elements", c.editor.Len()))
}

func (c *Command) tableOp(name string) {
	if c.editor.IsReadonly() {
		return
	}
	pos := c.editor.PositionContext()
	if !pos.IsTable {
		return
	}
	c.record(name, fmt.Sprintf("%s r%dc%d", pos.TableID, pos.Row, pos.Col))
}

func (c *Command) InsertTableTopRow()    { c.tableOp("table-insert-top-row") }
func (c *Command) InsertTableBottomRow() { c.tableOp("table-insert-bottom-row") }
func (c *Command) InsertTableLeftCol()   { c.tableOp("table-insert-left-col") }
func (c *Command) InsertTableRightCol()  { c.tableOp("table-insert-right-col") }
func (c *Command) DeleteTableRow()       { c.tableOp("table-delete-row") }
func (c *Command) DeleteTableCol()       { c.tableOp("table-delete-col") }
func (c *Command) MergeTableCell()       { c.tableOp("table-merge-cell") }
func (c *Command) CancelMergeTableCell() { c.tableOp("table-cancel-merge-cell") }

// DeleteTable removes every cell of the table under the caret.
func (c *Command) DeleteTable() {
	if c.editor.IsReadonly() {
		return
	}
	pos := c.editor.PositionContext()
	if !pos.IsTable {
		return
	}
	from, to, ok := c.editor.span(c.editor.Range().StartIndex, func(el Element) bool {
		return el.Kind() == TypeTableCell && el.TableID == pos.TableID || el.Value == "\n" && el.Kind() == TypeText
	})
	if !ok {
		return
	}
	for from < to && c.editor.elements[from].Kind() != TypeTableCell {
		from++
	}
	c.editor.deleteRange(from, to)
	c.record("table-delete", pos.TableID)
}

func (c *Command) currentImage() (int, bool) {
	idx := c.editor.Range().StartIndex
	if idx < 0 || idx >= c.editor.Len() {
		return 0, false
	}
	return idx, c.editor.elements[idx].Kind() == TypeImage
}

func (c *Command) ChangeImage() {
	if idx, ok := c.currentImage(); ok && !c.editor.IsReadonly() {
		c.record("image-change", c.editor.elements[idx].Value)
	}
}

func (c *Command) SaveAsImage() {
	if idx, ok := c.currentImage(); ok {
		c.record("image-save-as", c.editor.elements[idx].Value)
	}
}

// SetImageDisplay switches the text wrapping mode of the image under the
// caret.
func (c *Command) SetImageDisplay(display string) {
	idx, ok := c.currentImage()
	if !ok || c.editor.IsReadonly() {
		return
	}
	c.editor.elements[idx].Display = display
	c.record("image-display", display)
}

// DeleteControl removes the form control under the caret.
func (c *Command) DeleteControl() {
	if c.editor.IsReadonly() {
		return
	}
	idx := c.editor.Range().StartIndex
	if idx < 0 || idx >= c.editor.Len() {
		return
	}
	id := c.editor.elements[idx].ControlID
	from, to, ok := c.editor.span(idx, func(el Element) bool {
		return el.Kind() == TypeControl && el.ControlID == id
	})
	if !ok {
		return
	}
	c.editor.deleteRange(from, to)
	c.record("control-delete", id)
}

func (c *Command) hyperlinkSpan() (int, int, string, bool) {
	idx := c.editor.Range().StartIndex
	if idx < 0 || idx >= c.editor.Len() {
		return 0, 0, "", false
	}
	url := c.editor.elements[idx].URL
	from, to, ok := c.editor.span(idx, func(el Element) bool {
		return el.Kind() == TypeHyperlink && el.URL == url
	})
	return from, to, url, ok
}

// DeleteHyperlink removes the hyperlink under the caret including its text.
func (c *Command) DeleteHyperlink() {
	if c.editor.IsReadonly() {
		return
	}
	from, to, url, ok := c.hyperlinkSpan()
	if !ok {
		return
	}
	c.editor.deleteRange(from, to)
	c.record("hyperlink-delete", url)
}

// CancelHyperlink turns the hyperlink under the caret back into plain text.
func (c *Command) CancelHyperlink() {
	if c.editor.IsReadonly() {
		return
	}
	from, to, url, ok := c.hyperlinkSpan()
	if !ok {
		return
	}
	for i := from; i <= to; i++ {
		c.editor.elements[i].Type = TypeText
		c.editor.elements[i].URL = ""
	}
	c.record("hyperlink-cancel", url)
}

// EditHyperlink records a request to edit the hyperlink under the caret.
func (c *Command) EditHyperlink() {
	if _, _, url, ok := c.hyperlinkSpan(); ok && !c.editor.IsReadonly() {
		c.record("hyperlink-edit", url)
	}
}

// InsertElements inserts elements at the caret, replacing any selection.
func (c *Command) InsertElements(elements []Element) {
	if c.editor.IsReadonly() || len(elements) == 0 {
		return
	}
	rng := c.editor.Range()
	if !rng.Collapsed() {
		c.editor.deleteRange(rng.StartIndex+1, rng.EndIndex)
		rng = c.editor.Range()
	}
	c.editor.insertAfter(rng.StartIndex, elements)
	c.record("insert", fmt.Sprintf("%d elements", len(elements)))
}

// WordTool collapses runs of blank lines and strips trailing spaces.
func (c *Command) WordTool() {
	if c.editor.IsReadonly() {
		return
	}
	src := c.editor.elements
	out := make([]Element, 0, len(src))
	removed := 0
	for i, el := range src {
		if el.Kind() == TypeText && el.Value == "\n" && len(out) > 1 &&
			out[len(out)-1].Value == "\n" && out[len(out)-2].Value == "\n" {
			removed++
			continue
		}
		if isBlank(el) && trailingBlank(src[i+1:]) {
			removed++
			continue
		}
		out = append(out, el)
	}
	c.editor.elements = out
	c.editor.clampRange()
	c.record("word-tool", fmt.Sprintf("%d removed", removed))
}

func isBlank(el Element) bool {
	return el.Kind() == TypeText && el.Value != "\n" && strings.TrimSpace(el.Value) == ""
}

// trailingBlank reports whether rest holds only blanks up to the next line
// break.
func trailingBlank(rest []Element) bool {
	for _, el := range rest {
		if el.Value == "\n" {
			return true
		}
		if !isBlank(el) {
			return false
		}
	}
	return true
}
