// SPDX-License-Identifier: MIT
//
// File: gonum.go
// Role: core.Graph <-> gonum simple graphs.

package converters

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/vrg/core"
)

// ToGonum returns g as a gonum weighted undirected graph. Every vertex of g
// becomes a node, isolated ones included.
//
// Complexity: O(V + E).
func ToGonum(g *core.Graph) *simple.WeightedUndirectedGraph {
	wg := simple.NewWeightedUndirectedGraph(0, 0)
	for _, k := range g.Vertices() {
		wg.AddNode(simple.Node(k))
	}
	weights := make(map[[2]int]float64)
	for _, e := range g.Edges() {
		if e.IsLoop() {
			continue
		}
		weights[[2]int{e.From, e.To}]++
	}
	for uv, w := range weights {
		wg.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(uv[0]),
			T: simple.Node(uv[1]),
			W: w,
		})
	}

	return wg
}

// FromGonum copies an undirected gonum graph into a new multigraph. A
// weighted edge of integral weight w >= 1 becomes w parallel edges; any other
// edge becomes a single edge.
//
// Errors:
//   - core.ErrBadVertexKey: a node ID is negative.
func FromGonum(src graph.Undirected) (*core.Graph, error) {
	g := core.NewMultiGraph()
	nodes := src.Nodes()
	for nodes.Next() {
		if err := g.AddVertex(int(nodes.Node().ID())); err != nil {
			return nil, fmt.Errorf("FromGonum: node %d: %w", nodes.Node().ID(), err)
		}
	}

	weighted, isWeighted := src.(graph.WeightedUndirected)
	nodes.Reset()
	for nodes.Next() {
		u := nodes.Node().ID()
		to := src.From(u)
		for to.Next() {
			v := to.Node().ID()
			if v < u {
				continue
			}
			n := 1
			if isWeighted {
				if w, ok := weighted.Weight(u, v); ok && w >= 1 && w == float64(int(w)) {
					n = int(w)
				}
			}
			for i := 0; i < n; i++ {
				if _, err := g.AddEdge(int(u), int(v)); err != nil {
					return nil, fmt.Errorf("FromGonum: edge %d-%d: %w", u, v, err)
				}
			}
		}
	}

	return g, nil
}
