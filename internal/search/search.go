// Package search turns a query string into an ordered view of catalog
// indices: substring matches first, fuzzy index matches appended, the whole
// view ranked by launch frequency when any is recorded.
package search

import (
	"sort"
	"strings"

	"github.com/atomicstack/launchpad/internal/catalog"
	"github.com/atomicstack/launchpad/internal/history"
	"github.com/atomicstack/launchpad/internal/index"
)

// Engine recomputes the filtered view for the current query. The catalog and
// tree are read-only; ranks are read at filter time only.
type Engine struct {
	store *catalog.Store
	tree  *index.Tree
	ranks history.Ranks
}

// NewEngine wires the engine to its catalog, fuzzy index and rank table.
func NewEngine(store *catalog.Store, tree *index.Tree, ranks history.Ranks) *Engine {
	return &Engine{store: store, tree: tree, ranks: ranks}
}

// Filter computes the view for query. The empty query yields every catalog
// index in store order with no ranking applied. Otherwise substring matches
// are collected in store order, fuzzy matches within index.MaxDistance are
// appended unless already present, and the combined view is stable-sorted by
// descending launch count whenever the rank table is non-empty. noMatches is
// true only when a non-empty query matches nothing.
func (e *Engine) Filter(query string) (view []int, noMatches bool) {
	total := e.store.Len()
	if query == "" {
		view = make([]int, total)
		for i := range view {
			view[i] = i
		}
		return view, false
	}

	lowered := strings.ToLower(query)
	seen := make(map[int]struct{}, total)
	for i := 0; i < total; i++ {
		if strings.Contains(e.store.At(i).Name, lowered) {
			view = append(view, i)
			seen[i] = struct{}{}
		}
	}
	for _, match := range e.tree.Search(lowered, index.MaxDistance) {
		if _, dup := seen[match]; dup {
			continue
		}
		view = append(view, match)
	}
	if !e.ranks.Empty() {
		sort.SliceStable(view, func(a, b int) bool {
			return e.ranks.Count(e.store.At(view[a]).Name) > e.ranks.Count(e.store.At(view[b]).Name)
		})
	}
	return view, len(view) == 0
}
