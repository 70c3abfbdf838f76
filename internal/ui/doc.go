// Package ui contains the Bubble Tea program that powers the launcher
// window. The package is structured so the Model type focuses on message
// orchestration, while dedicated helpers own navigation, input, and
// rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update routes each message through a typed handler registry so every
//     tea.Msg is handled by a focused function: key presses split between
//     query editing (internal/ui/input.go) and list navigation
//     (internal/ui/navigation.go), mouse events drive hover, clicks, the
//     wheel and the scrollbar, and resize events recompute the viewport.
//
// State ownership:
//   - Query, result view and list cursor state live in internal/ui/state,
//     which recomputes the filtered results on every query mutation and keeps
//     the cursor inside the viewport.
//   - Spawning the chosen entry and fetching clipboard text run off the
//     update loop through the internal/ui/command bus; their results come
//     back as messages.
//   - Held scrollbar buttons auto-repeat through the Repeater, driven by
//     periodic tick messages while a press is active.
//
// This separation keeps Model.Update compact and makes it easier to test
// independent concerns (editing, navigation, launching) without needing to
// reason about the entire TUI at once.
package ui
