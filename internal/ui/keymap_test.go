package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestCtrlPAndCtrlNMoveCursor(t *testing.T) {
	m := newTestModel(t, 0, 8, manyNames(10)...)
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyCtrlN})
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyCtrlN})
	if m.view.Cursor != 2 {
		t.Fatalf("expected ctrl+n to move down twice, got cursor=%d", m.view.Cursor)
	}
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyCtrlP})
	if m.view.Cursor != 1 {
		t.Fatalf("expected ctrl+p to move back up, got cursor=%d", m.view.Cursor)
	}
}

func TestKeyHintsFollowBindingHelp(t *testing.T) {
	keys := DefaultKeyMap()
	hints := keyHints(keys.Up, keys.Confirm, keys.Quit)
	want := "↑/↓ move  enter launch  esc quit"
	if hints != want {
		t.Fatalf("expected hints %q, got %q", want, hints)
	}
	if got := keyHints(keys.Down); got != "" {
		t.Fatalf("expected bindings without help text to be skipped, got %q", got)
	}
}
