// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edge/Edges/Size,
//       plus Multiplicity.
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc.
//   - Edge IDs are monotonic per graph and carried across Clone/Subgraph.
// Concurrency:
//   - Mutations under mu write lock, read queries under mu read lock.

package core

import "sort"

// AddEdge creates a new undirected edge between u and v, creating missing
// endpoints. The stored edge is normalized so that From <= To.
//
// Steps:
//  1. Validate keys and the loop constraint.
//  2. Lock, ensure endpoints exist.
//  3. Check the multi-edge constraint.
//  4. Issue the next edge ID, apply opts, store and link adjacency.
//
// Errors:
//   - ErrBadVertexKey, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, opts ...EdgeOption) (int, error) {
	if u < 0 || v < 0 {
		return 0, ErrBadVertexKey
	}
	if u == v && !g.allowLoops {
		return 0, ErrLoopNotAllowed
	}
	if u > v {
		u, v = v, u
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(u)
	g.addVertexLocked(v)

	if !g.allowMulti && len(g.adjacency[u][v]) > 0 {
		return 0, ErrMultiEdgeNotAllowed
	}

	g.nextEdgeID++
	e := &Edge{ID: g.nextEdgeID, From: u, To: v}
	for _, opt := range opts {
		opt(e)
	}
	g.edges[e.ID] = e
	addAdjacency(g, e)

	return e.ID, nil
}

// RemoveEdge deletes the edge with the given ID.
//
// Errors:
//   - ErrEdgeNotFound: if no such edge exists.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}
	removeAdjacency(g, e)
	delete(g.edges, id)

	return nil
}

// HasEdge reports whether at least one edge joins u and v.
// Complexity: O(1)
func (g *Graph) HasEdge(u, v int) bool {
	return g.Multiplicity(u, v) > 0
}

// Multiplicity returns the number of parallel edges joining u and v.
// Complexity: O(1)
func (g *Graph) Multiplicity(u, v int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[u][v])
}

// Edge returns a copy of the edge with the given ID.
func (g *Graph) Edge(id int) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[id]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return *e, nil
}

// Edges returns copies of all edges sorted by ID.
// Complexity: O(E log E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Size returns the number of edges, counting parallel edges and loops.
// Complexity: O(1)
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
