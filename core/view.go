// File: view.go
// Role: Non-mutating views (induced subgraphs).
// Determinism:
//   - Preserves vertex keys, vertex attributes, edge IDs and edge flags.
// Concurrency:
//   - Read lock on source; the result is a fresh graph instance.

package core

// Subgraph returns the subgraph induced by keys: the kept vertices with their
// attributes and every edge whose endpoints are both kept. Keys missing from
// g are ignored. The input graph is not mutated.
//
// Complexity: O(|keys| + E).
func (g *Graph) Subgraph(keys []int) *Graph {
	keep := make(map[int]struct{}, len(keys))
	for _, k := range keys {
		keep[k] = struct{}{}
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		allowMulti: g.allowMulti,
		allowLoops: g.allowLoops,
		nextEdgeID: g.nextEdgeID,
		vertices:   make(map[int]*Vertex, len(keep)),
		edges:      make(map[int]*Edge),
		adjacency:  make(map[int]map[int]map[int]struct{}, len(keep)),
	}
	for k := range keep {
		v, ok := g.vertices[k]
		if !ok {
			continue
		}
		cp := *v
		out.vertices[k] = &cp
		out.adjacency[k] = make(map[int]map[int]struct{})
	}
	for id, e := range g.edges {
		_, okFrom := out.vertices[e.From]
		_, okTo := out.vertices[e.To]
		if !okFrom || !okTo {
			continue
		}
		cp := *e
		out.edges[id] = &cp
		addAdjacency(out, &cp)
	}

	return out
}
