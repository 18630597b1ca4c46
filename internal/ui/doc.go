// Package ui contains the Bubble Tea program behind pinta: a directory pane,
// a tmux session pane and a help overlay.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Each tea.Msg
//     type is routed through a typed handler registry to a focused function
//     (key presses, resizes, loaded sessions, watcher events, ...).
//   - Key presses are routed by the uistate.Controller: the help overlay
//     outranks an active search, which outranks the focused tab.
//   - After every message finishUpdate re-sets list totals and viewports from
//     the current snapshots, so View only ever reads consistent state.
//
// State ownership:
//   - Selection and scrolling live in internal/ui/state (List for the
//     directory pane and help, Tree for sessions, Search for the query).
//   - Directory and session snapshots are held by internal/state stores and
//     written only through the dispatcher.
//   - Side effects (listing sessions, creating a session, copying a path) run
//     as commands built by the internal/ui/command bus. Attaching hands the
//     terminal to tmux through tea.ExecProcess.
//
// Backend interactions:
//   - With --watch a backend.Watcher streams directory changes; Update waits
//     for them and re-lists the current directory.
package ui
