package state

// Refilter recomputes the result view for a query, returning catalog indices
// in display order plus the no-matches flag.
type Refilter func(query string) ([]int, bool)

// View encapsulates the interactive result-list state: the query under edit,
// the filtered view of catalog indices, and the list cursor with its
// viewport. One View exists per run, owned by the update loop.
type View struct {
	Query       string
	QueryCursor int

	Results   []int
	NoMatches bool

	Cursor int
	Scroll int
	Hover  int

	refilter Refilter
}

// NewView constructs a view wired to its refilter function and computes the
// initial (empty-query) results.
func NewView(refilter Refilter) *View {
	v := &View{Hover: -1, refilter: refilter}
	v.Recompute()
	return v
}

// Len reports the number of entries in the current results.
func (v *View) Len() int { return len(v.Results) }

// At returns the catalog index shown at results row i.
func (v *View) At(i int) int { return v.Results[i] }

// Selected returns the catalog index under the list cursor, or -1 when the
// view is empty.
func (v *View) Selected() int {
	if len(v.Results) == 0 || v.Cursor < 0 || v.Cursor >= len(v.Results) {
		return -1
	}
	return v.Results[v.Cursor]
}

// Hovered returns the catalog index under the pointer, or -1 when no row is
// hovered.
func (v *View) Hovered() int {
	if v.Hover < 0 || v.Hover >= len(v.Results) {
		return -1
	}
	return v.Results[v.Hover]
}

// Recompute rebuilds the results from the current query and resets the list
// cursor, scroll offset and hover. Every query mutation funnels through here;
// pure cursor motions never do.
func (v *View) Recompute() {
	if v.refilter == nil {
		v.Results, v.NoMatches = nil, false
	} else {
		v.Results, v.NoMatches = v.refilter(v.Query)
	}
	v.Cursor = 0
	v.Scroll = 0
	v.Hover = -1
}
