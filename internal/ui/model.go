package ui

import (
	"fmt"
	"reflect"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mindfiredigital/canvas-editor/internal/backend"
	"github.com/mindfiredigital/canvas-editor/internal/contextmenu"
	"github.com/mindfiredigital/canvas-editor/internal/data/dispatcher"
	"github.com/mindfiredigital/canvas-editor/internal/editor"
	"github.com/mindfiredigital/canvas-editor/internal/layout"
	"github.com/mindfiredigital/canvas-editor/internal/logging"
	"github.com/mindfiredigital/canvas-editor/internal/menu"
	"github.com/mindfiredigital/canvas-editor/internal/pointer"
	"github.com/mindfiredigital/canvas-editor/internal/theme"
	"github.com/mindfiredigital/canvas-editor/internal/ui/command"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

type keyMap struct {
	Quit     key.Binding
	Readonly key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Readonly: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "toggle read-only"),
		),
	}
}

// Options configures a Model.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Document   editor.Document
	// Readonly keeps the document read-only across reloads.
	Readonly   bool
	Translator menu.Translator
	Clipboard  editor.Clipboard
	Watcher    *backend.Watcher
}

// Model implements the Bubble Tea model for the editor canvas.
type Model struct {
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	keys        keyMap

	editor   *editor.Editor
	command  *editor.Command
	pointer  *pointer.Bus
	surface  *termSurface
	menu     *contextmenu.ContextMenu
	commands *command.Bus

	backend    *backend.Watcher
	dispatcher *dispatcher.Dispatcher

	status   string
	errMsg   string
	seenOps  int
	pressed  tea.MouseButton
	dragging bool
	anchor   int

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the editor, the context menu and their wiring.
func NewModel(opts Options) *Model {
	m := &Model{
		showFooter: opts.ShowFooter,
		keys:       defaultKeyMap(),
		backend:    opts.Watcher,
		pointer:    pointer.NewBus(),
		width:      defaultWidth,
		height:     defaultHeight,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.editor = editor.New(opts.Document)
	m.editor.ForceReadonly(opts.Readonly)
	cmdOpts := []editor.CommandOption{editor.WithErrorHandler(m.reportError)}
	if opts.Clipboard != nil {
		cmdOpts = append(cmdOpts, editor.WithClipboard(opts.Clipboard))
	}
	m.command = editor.NewCommand(m.editor, cmdOpts...)
	m.commands = command.New(m.noteCommand)
	m.surface = newTermSurface(m.viewport)

	menuOpts := []contextmenu.Option{contextmenu.WithCommandBus(m.commands)}
	if opts.Translator != nil {
		menuOpts = append(menuOpts, contextmenu.WithTranslator(opts.Translator))
	}
	m.menu = contextmenu.New(m.surface, m.pointer, m.editor, m.command, menuOpts...)
	m.dispatcher = dispatcher.New(m.editor, m.menu)
	m.registerHandlers()
	return m
}

// RegisterEntries adds host entries to the context menu.
func (m *Model) RegisterEntries(entries ...menu.Entry) {
	m.menu.RegisterEntries(entries...)
}

// Menu exposes the context menu.
func (m *Model) Menu() *contextmenu.ContextMenu { return m.menu }

// Editor exposes the document editor.
func (m *Model) Editor() *editor.Editor { return m.editor }

// Command exposes the command collaborator handed to entry callbacks.
func (m *Model) Command() *editor.Command { return m.command }

// Close detaches the context menu listeners and closes any open panel.
func (m *Model) Close() {
	m.menu.Dispose()
	m.menu.RemoveEvent()
}

func (m *Model) viewport() layout.Size {
	return layout.Size{W: m.width, H: m.height}
}

func (m *Model) reportError(err error) {
	logging.Error(err)
	m.errMsg = err.Error()
}

func (m *Model) noteCommand(req command.Request) {
	m.errMsg = ""
	history := m.command.History()
	if len(history) > m.seenOps {
		m.seenOps = len(history)
		m.status = fmt.Sprintf("%s: %s", req.Label, history[len(history)-1])
		return
	}
	m.status = req.Label
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}
