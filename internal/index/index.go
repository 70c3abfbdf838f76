// Package index provides a BK-tree over entry names, answering approximate
// match queries by Levenshtein distance with triangle-inequality pruning.
package index

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// MaxDistance is the fixed edit-distance threshold for fuzzy queries.
const MaxDistance = 4

// Tree is a BK-tree built once over a name list and read-only afterwards.
type Tree struct {
	names []string
	root  *node
}

// node holds one entry index and its children keyed by edit distance to the
// parent. Children are owned exclusively by the parent map.
type node struct {
	entry    int
	children map[int]*node
}

// Distance reports the Levenshtein distance between a and b, case-insensitive.
func Distance(a, b string) int {
	return fuzzy.LevenshteinDistance(strings.ToLower(a), strings.ToLower(b))
}

// New builds a tree over the given names in order; the first name becomes the
// root.
func New(names []string) *Tree {
	t := &Tree{names: names}
	for i := range names {
		t.insert(i)
	}
	return t
}

func (t *Tree) insert(entry int) {
	if t.root == nil {
		t.root = &node{entry: entry}
		return
	}
	current := t.root
	for {
		d := Distance(t.names[entry], t.names[current.entry])
		child, ok := current.children[d]
		if !ok {
			if current.children == nil {
				current.children = make(map[int]*node)
			}
			current.children[d] = &node{entry: entry}
			return
		}
		current = child
	}
}

// Len reports the number of indexed names.
func (t *Tree) Len() int { return len(t.names) }

// Search returns the entry indices whose names are within max edit distance
// of target. Subtrees whose edge labels fall outside [d-max, d+max] cannot
// contain a match and are pruned.
func (t *Tree) Search(target string, max int) []int {
	if t.root == nil {
		return nil
	}
	lowered := strings.ToLower(target)
	var matches []int
	t.walk(t.root, lowered, max, &matches)
	return matches
}

func (t *Tree) walk(n *node, target string, max int, matches *[]int) {
	d := Distance(target, t.names[n.entry])
	if d <= max {
		*matches = append(*matches, n.entry)
	}
	if len(n.children) == 0 {
		return
	}
	edges := make([]int, 0, len(n.children))
	for edge := range n.children {
		if edge >= d-max && edge <= d+max {
			edges = append(edges, edge)
		}
	}
	sort.Ints(edges)
	for _, edge := range edges {
		t.walk(n.children[edge], target, max, matches)
	}
}
