package state

import "testing"

func newListView(t *testing.T, n int) *View {
	t.Helper()
	return NewView(func(string) ([]int, bool) {
		view := make([]int, n)
		for i := range view {
			view[i] = i
		}
		return view, n == 0
	})
}

func (v *View) mustViewport(t *testing.T, cursor, scroll int) {
	t.Helper()
	if v.Cursor != cursor || v.Scroll != scroll {
		t.Fatalf("expected cursor=%d scroll=%d, got cursor=%d scroll=%d", cursor, scroll, v.Cursor, v.Scroll)
	}
}

func TestMoveDownScrollsAtViewportEdge(t *testing.T) {
	v := newListView(t, 5)
	v.MoveDown(3)
	v.mustViewport(t, 1, 0)
	v.MoveDown(3)
	v.mustViewport(t, 2, 0)
	v.MoveDown(3)
	v.mustViewport(t, 3, 1)
	v.MoveDown(3)
	v.mustViewport(t, 4, 2)
	if v.MoveDown(3) {
		t.Fatalf("move past last row should be a no-op")
	}
	v.mustViewport(t, 4, 2)
}

func TestMoveUpScrollsAtViewportEdge(t *testing.T) {
	v := newListView(t, 5)
	v.Cursor, v.Scroll = 2, 2
	v.MoveUp(3)
	v.mustViewport(t, 1, 1)
	v.MoveUp(3)
	v.mustViewport(t, 0, 0)
	if v.MoveUp(3) {
		t.Fatalf("move before first row should be a no-op")
	}
	v.mustViewport(t, 0, 0)
}

func TestMoveSnapsToFirstVisibleRow(t *testing.T) {
	v := newListView(t, 10)
	v.Cursor, v.Scroll = 0, 4
	v.MoveDown(3)
	v.mustViewport(t, 4, 4)

	v.Cursor, v.Scroll = 9, 4
	v.MoveUp(3)
	v.mustViewport(t, 4, 4)
}

func TestMoveOnEmptyResults(t *testing.T) {
	v := newListView(t, 0)
	if v.MoveDown(3) || v.MoveUp(3) || v.MoveEnd(3) || v.MoveHome(3) {
		t.Fatalf("motions on an empty view should be no-ops")
	}
	v.mustViewport(t, 0, 0)
}

func TestWheelClampsWithoutMovingCursor(t *testing.T) {
	v := newListView(t, 10)
	v.Cursor = 2
	if !v.Wheel(3, 4) {
		t.Fatalf("wheel should scroll")
	}
	v.mustViewport(t, 2, 3)
	v.Wheel(100, 4)
	v.mustViewport(t, 2, 6)
	v.Wheel(-100, 4)
	v.mustViewport(t, 2, 0)
	if v.Wheel(-1, 4) {
		t.Fatalf("wheel at top should be a no-op")
	}
}

func TestWheelShortList(t *testing.T) {
	v := newListView(t, 2)
	if v.Wheel(1, 5) {
		t.Fatalf("wheel must not scroll when everything fits")
	}
	v.mustViewport(t, 0, 0)
}

func TestMoveHomeEnd(t *testing.T) {
	v := newListView(t, 10)
	v.MoveEnd(4)
	v.mustViewport(t, 9, 6)
	v.MoveHome(4)
	v.mustViewport(t, 0, 0)
	if v.MoveHome(4) {
		t.Fatalf("home at first row should be a no-op")
	}
}

func TestMovePageUpDown(t *testing.T) {
	v := newListView(t, 10)
	v.MovePageDown(4)
	v.mustViewport(t, 4, 1)
	v.MovePageDown(4)
	v.mustViewport(t, 8, 5)
	v.MovePageDown(4)
	v.mustViewport(t, 9, 6)
	v.MovePageUp(4)
	v.mustViewport(t, 5, 5)
	v.MovePageUp(4)
	v.mustViewport(t, 1, 1)
	v.MovePageUp(4)
	v.mustViewport(t, 0, 0)
}

func TestSetHover(t *testing.T) {
	v := newListView(t, 3)
	v.Cursor = 1
	if !v.SetHover(2) {
		t.Fatalf("hover change expected")
	}
	if v.Hover != 2 || v.Cursor != 1 {
		t.Fatalf("hover must not move the cursor, got hover=%d cursor=%d", v.Hover, v.Cursor)
	}
	if v.Hovered() != 2 {
		t.Fatalf("expected hovered entry 2, got %d", v.Hovered())
	}
	v.SetHover(99)
	if v.Hover != -1 || v.Hovered() != -1 {
		t.Fatalf("out-of-range hover should clear, got %d", v.Hover)
	}
}

func TestSelectedOnEmptyView(t *testing.T) {
	v := newListView(t, 0)
	if v.Selected() != -1 {
		t.Fatalf("expected -1 on empty view, got %d", v.Selected())
	}
}

func TestEnsureVisiblePullsViewport(t *testing.T) {
	v := newListView(t, 10)
	v.Cursor, v.Scroll = 8, 0
	v.EnsureVisible(3)
	v.mustViewport(t, 8, 6)
	v.Cursor = 1
	v.EnsureVisible(3)
	v.mustViewport(t, 1, 1)
}
