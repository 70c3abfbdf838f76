package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestViewShowsPlaceholderOnEmptyQuery(t *testing.T) {
	m := newTestModel(t, 0, 0, "firefox")
	if view := m.View(); !strings.Contains(view, "type to search") {
		t.Fatalf("expected placeholder in view, got:\n%s", view)
	}
}

func TestViewListsCatalogEntries(t *testing.T) {
	m := newTestModel(t, 0, 0, "firefox", "files")
	view := m.View()
	if !strings.Contains(view, "firefox") || !strings.Contains(view, "files") {
		t.Fatalf("expected both entries in view, got:\n%s", view)
	}
	if strings.Index(view, "firefox") > strings.Index(view, "files") {
		t.Fatalf("expected store order, got:\n%s", view)
	}
}

func TestViewShowsNoMatchesRow(t *testing.T) {
	m := newTestModel(t, 0, 0, "alpha")
	typeString(m, "zzzzzzzzzz")
	if view := m.View(); !strings.Contains(view, `No matches for "zzzzzzzzzz"`) {
		t.Fatalf("expected no-matches row, got:\n%s", view)
	}
}

func TestViewFooterShowsExecAndPosition(t *testing.T) {
	m := newTestModel(t, 0, 0, "firefox", "files")
	m.showFooter = true
	view := m.View()
	if !strings.Contains(view, "firefox %u") {
		t.Fatalf("expected selected exec in footer, got:\n%s", view)
	}
	if !strings.Contains(view, "1/2") {
		t.Fatalf("expected position in footer, got:\n%s", view)
	}
}

func TestViewDrawsScrollbarOnOverflow(t *testing.T) {
	m := newTestModel(t, 30, 8, manyNames(30)...)
	view := m.View()
	if !strings.Contains(view, scrollbarThumb) || !strings.Contains(view, scrollbarTrack) {
		t.Fatalf("expected scrollbar glyphs, got:\n%s", view)
	}
}

func TestViewOmitsScrollbarWhenListFits(t *testing.T) {
	m := newTestModel(t, 30, 8, "firefox")
	if view := m.View(); strings.Contains(view, scrollbarThumb) {
		t.Fatalf("expected no scrollbar for a short list, got:\n%s", view)
	}
}

func TestViewHonorsFixedHeight(t *testing.T) {
	m := newTestModel(t, 30, 6, manyNames(30)...)
	view := m.View()
	if got := strings.Count(view, "\n") + 1; got > 6 {
		t.Fatalf("expected at most 6 lines, got %d:\n%s", got, view)
	}
}

func TestViewShowsLaunchError(t *testing.T) {
	m := newTestModel(t, 0, 0, "firefox")
	m.errMsg = "spawn failed"
	if view := m.View(); !strings.Contains(view, "Error: spawn failed") {
		t.Fatalf("expected error line, got:\n%s", view)
	}
}

func TestResizeRecomputesViewport(t *testing.T) {
	m := newTestModel(t, 0, 0, manyNames(30)...)
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if m.width != 40 || m.height != 10 {
		t.Fatalf("expected 40x10, got %dx%d", m.width, m.height)
	}
	if m.maxVisibleRows() != 9 {
		t.Fatalf("expected 9 visible rows, got %d", m.maxVisibleRows())
	}
}

func TestFixedGeometryIgnoresResize(t *testing.T) {
	m := newTestModel(t, 30, 8, "firefox")
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	if m.width != 30 || m.height != 8 {
		t.Fatalf("expected fixed 30x8, got %dx%d", m.width, m.height)
	}
}
