package state

// visible reports whether results row i falls inside the viewport of
// maxVisible rows starting at the scroll offset.
func (v *View) visible(i, maxVisible int) bool {
	return i >= v.Scroll && i < v.Scroll+maxVisible
}

// MoveUp moves the selection one row up. A cursor outside the viewport first
// snaps to the top visible row; at the top edge the viewport scrolls by one.
func (v *View) MoveUp(maxVisible int) bool {
	if len(v.Results) == 0 {
		v.Cursor = 0
		return false
	}
	old := v.Cursor
	if !v.visible(v.Cursor, maxVisible) {
		v.Cursor = v.Scroll
		return v.Cursor != old
	}
	if v.Cursor == 0 {
		return false
	}
	v.Cursor--
	if v.Cursor < v.Scroll {
		v.Scroll--
		if v.Scroll < 0 {
			v.Scroll = 0
		}
	}
	return true
}

// MoveDown mirrors MoveUp toward the end of the results.
func (v *View) MoveDown(maxVisible int) bool {
	if len(v.Results) == 0 {
		v.Cursor = 0
		return false
	}
	old := v.Cursor
	if !v.visible(v.Cursor, maxVisible) {
		v.Cursor = v.Scroll
		return v.Cursor != old
	}
	if v.Cursor >= len(v.Results)-1 {
		return false
	}
	v.Cursor++
	if v.Cursor >= v.Scroll+maxVisible {
		v.Scroll++
	}
	return true
}

// MoveHome moves the cursor to the first row.
func (v *View) MoveHome(maxVisible int) bool {
	if len(v.Results) == 0 {
		v.Cursor = 0
		return false
	}
	old := v.Cursor
	v.Cursor = 0
	v.EnsureVisible(maxVisible)
	return v.Cursor != old
}

// MoveEnd moves the cursor to the last row.
func (v *View) MoveEnd(maxVisible int) bool {
	if len(v.Results) == 0 {
		v.Cursor = 0
		return false
	}
	old := v.Cursor
	v.Cursor = len(v.Results) - 1
	v.EnsureVisible(maxVisible)
	return v.Cursor != old
}

// MovePageUp moves the cursor up by one viewport of rows.
func (v *View) MovePageUp(maxVisible int) bool {
	return v.moveBy(-pageSize(len(v.Results), maxVisible), maxVisible)
}

// MovePageDown moves the cursor down by one viewport of rows.
func (v *View) MovePageDown(maxVisible int) bool {
	return v.moveBy(pageSize(len(v.Results), maxVisible), maxVisible)
}

func (v *View) moveBy(delta, maxVisible int) bool {
	if len(v.Results) == 0 {
		v.Cursor = 0
		return false
	}
	old := v.Cursor
	v.Cursor += delta
	if v.Cursor < 0 {
		v.Cursor = 0
	}
	if v.Cursor >= len(v.Results) {
		v.Cursor = len(v.Results) - 1
	}
	v.EnsureVisible(maxVisible)
	return v.Cursor != old
}

func pageSize(total, maxVisible int) int {
	if total == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > total {
		size = total
	}
	if size < 1 {
		size = 1
	}
	return size
}

// Wheel adjusts the scroll offset by delta rows without touching the cursor,
// clamped to the scrollable range.
func (v *View) Wheel(delta, maxVisible int) bool {
	old := v.Scroll
	v.Scroll += delta
	max := len(v.Results) - maxVisible
	if max < 0 {
		max = 0
	}
	if v.Scroll > max {
		v.Scroll = max
	}
	if v.Scroll < 0 {
		v.Scroll = 0
	}
	return v.Scroll != old
}

// EnsureVisible pulls the viewport to the cursor after motions that may land
// outside it.
func (v *View) EnsureVisible(maxVisible int) {
	if len(v.Results) == 0 {
		v.Cursor = 0
		v.Scroll = 0
		return
	}
	if v.Cursor < 0 {
		v.Cursor = 0
	}
	if v.Cursor >= len(v.Results) {
		v.Cursor = len(v.Results) - 1
	}
	if maxVisible <= 0 {
		v.Scroll = 0
		return
	}
	maxScroll := len(v.Results) - maxVisible
	if maxScroll < 0 {
		maxScroll = 0
	}
	if v.Scroll > maxScroll {
		v.Scroll = maxScroll
	}
	if v.Scroll < 0 {
		v.Scroll = 0
	}
	if v.Cursor < v.Scroll {
		v.Scroll = v.Cursor
	}
	if v.Cursor > v.Scroll+maxVisible-1 {
		v.Scroll = v.Cursor - maxVisible + 1
		if v.Scroll < 0 {
			v.Scroll = 0
		}
		if v.Scroll > maxScroll {
			v.Scroll = maxScroll
		}
	}
}

// SetHover marks results row i as hovered; out-of-range values clear it. The
// list cursor is never affected.
func (v *View) SetHover(i int) bool {
	old := v.Hover
	if i < 0 || i >= len(v.Results) {
		v.Hover = -1
	} else {
		v.Hover = i
	}
	return v.Hover != old
}
