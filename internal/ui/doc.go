// Package ui contains the Bubble Tea models behind every termpick widget:
// single choice, multi choice, text entry and the action menu.
//
// Message flow:
//   - Bubble Tea invokes Update with incoming messages. Each model routes them
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, window resizes, action results).
//   - Key handlers translate bindings into transitions on the state types in
//     internal/ui/state (Selection, Multi, Text) or on a menu.Navigator, and
//     return tea.Quit once the session reaches a terminal state.
//   - View recomputes the viewport from the cursor before drawing, so the
//     cursor is always on screen.
//
// Surface geometry:
//   - The title takes width/cols+1 rows followed by a blank row. A footer and
//     the debug block each take their own rows. Whatever remains is the body.
//   - A body that cannot fit its minimum rows ends the session with a
//     SurfaceError wrapping ErrTerminalTooSmall.
//
// Menu actions:
//   - Actions run through the internal/ui/command bus on a worker goroutine.
//     The bus admits one action at a time, writes output into the session's
//     menu.OutputLog and reports back with a command.ResultMsg. Keys other
//     than ctrl+c are ignored until the result arrives.
//
// The Harness type drives any of these models synchronously so key-level
// scenarios can be tested without a terminal.
package ui
