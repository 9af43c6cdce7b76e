// Package ui contains the Bubble Tea program that hosts the editor canvas and
// its context menu.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Mouse messages are translated into pointer events (internal/pointer) and
//     dispatched on the bus the context menu subscribed to. The host default
//     for a press (moving the caret) only runs when no listener prevented it.
//
// State ownership:
//   - Document content and the selection live in internal/editor.
//   - Open menu panels live in the context menu tracker; this package only
//     draws them through termSurface, which implements contextmenu.Surface.
//   - Leaf callbacks run through the internal/ui/command bus, whose observer
//     updates the status line.
//
// Backend interactions:
//   - An optional backend.Watcher streams document reloads; Update waits for
//     those events and hands them to the dispatcher, which closes any open
//     menu before replacing the document.
package ui
