package dendrogram

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/community"

	converters "github.com/katalvlaran/vrg/converterts"
	"github.com/katalvlaran/vrg/core"
)

// Louvain clusters g with the hierarchical Louvain method at the given
// resolution and returns the hierarchy as a tree whose leaves are the
// vertices of g.
//
// Parallel edges become edge weight; self-loops are ignored. Single-member
// communities are folded into their member so no internal node has exactly
// one child. A graph without edges yields a flat tree.
func Louvain(g *core.Graph, resolution float64) (*Tree, error) {
	keys := g.Vertices()
	if len(keys) == 0 {
		return nil, fmt.Errorf("Louvain: %w", ErrEmptyTree)
	}

	wg := converters.ToGonum(g)

	t := New()
	b := &louvainBuilder{tree: t, next: keys[len(keys)-1] + 1}

	if wg.Edges().Len() == 0 {
		leaves := make([]NodeID, len(keys))
		for i, k := range keys {
			leaves[i] = t.AddLeaf(k)
		}
		root, err := b.join(leaves)
		if err == nil {
			err = t.SetRoot(root)
		}
		if err != nil {
			return nil, fmt.Errorf("Louvain: %w", err)
		}
		return t, nil
	}

	reduced := community.Modularize(wg, resolution, nil)
	tops := make([]NodeID, 0, len(reduced.Structure()))
	for _, members := range reduced.Structure() {
		id, err := b.build(reduced, members)
		if err != nil {
			return nil, fmt.Errorf("Louvain: %w", err)
		}
		tops = append(tops, id)
	}
	root, err := b.join(tops)
	if err != nil {
		return nil, fmt.Errorf("Louvain: %w", err)
	}
	if err = t.SetRoot(root); err != nil {
		return nil, fmt.Errorf("Louvain: %w", err)
	}

	return t, nil
}

type louvainBuilder struct {
	tree *Tree
	next int
}

// build turns one community of level r into a subtree. Member IDs index the
// structure of the expanded level, or name original vertices at the lowest
// level.
func (b *louvainBuilder) build(r community.ReducedGraph, members []graph.Node) (NodeID, error) {
	members = sortedNodes(members)
	lower := expanded(r)

	kids := make([]NodeID, 0, len(members))
	for _, m := range members {
		if lower == nil {
			kids = append(kids, b.tree.AddLeaf(int(m.ID())))
			continue
		}
		id, err := b.build(lower, lower.Structure()[m.ID()])
		if err != nil {
			return NoNode, err
		}
		kids = append(kids, id)
	}

	return b.join(kids)
}

// join returns the single child itself, or a new internal node over kids.
func (b *louvainBuilder) join(kids []NodeID) (NodeID, error) {
	if len(kids) == 1 {
		return kids[0], nil
	}
	key := b.next
	b.next++

	return b.tree.AddInternal(key, kids...)
}

// expanded unwraps the next lower level, treating a typed nil as nil.
func expanded(r community.ReducedGraph) community.ReducedGraph {
	next := r.Expanded()
	if next == nil {
		return nil
	}
	if u, ok := next.(*community.ReducedUndirected); ok && u == nil {
		return nil
	}

	return next
}

func sortedNodes(nodes []graph.Node) []graph.Node {
	out := append([]graph.Node(nil), nodes...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })

	return out
}
