package extract

import (
	"sort"

	"github.com/katalvlaran/vrg/dendrogram"
)

// activeSet tracks what still represents part of the live graph: leaf keys
// (each a graph vertex) mapped to their tree node, and internal nodes that
// are neither collapsed nor absorbed by a collapsed ancestor.
type activeSet struct {
	keys map[int]dendrogram.NodeID
	open map[dendrogram.NodeID]struct{}
}

func newActiveSet() *activeSet {
	return &activeSet{
		keys: make(map[int]dendrogram.NodeID),
		open: make(map[dendrogram.NodeID]struct{}),
	}
}

// Len counts live keys and open internal nodes.
func (a *activeSet) Len() int { return len(a.keys) + len(a.open) }

// Keys returns the live vertex keys sorted ascending.
func (a *activeSet) Keys() []int {
	out := make([]int, 0, len(a.keys))
	for k := range a.keys {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}

func (a *activeSet) isOpen(id dendrogram.NodeID) bool {
	_, ok := a.open[id]
	return ok
}

// liveLeaves returns n.Leaves restricted to live keys, sorted ascending.
func (a *activeSet) liveLeaves(n *dendrogram.Node) []int {
	out := make([]int, 0, len(n.Leaves))
	for k := range n.Leaves {
		if _, ok := a.keys[k]; ok {
			out = append(out, k)
		}
	}
	sort.Ints(out)

	return out
}
