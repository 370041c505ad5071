// File: methods_adjacent.go
// Role: Neighborhood queries and adjacency bookkeeping.
// Determinism:
//   - Neighbors() returns incident edges sorted by ID; NeighborKeys() sorted ascending.
// Concurrency:
//   - Queries under mu read lock; helpers below require the write lock.

package core

import "sort"

// Neighbors returns copies of all edges incident to key, sorted by ID.
// A self-loop appears once.
//
// Errors:
//   - ErrVertexNotFound: if key is missing.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(key int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[key]; !ok {
		return nil, ErrVertexNotFound
	}
	var out []Edge
	for _, ids := range g.adjacency[key] {
		for eid := range ids {
			out = append(out, *g.edges[eid])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborKeys returns the distinct keys adjacent to key, sorted ascending.
// key itself is included when it carries a self-loop.
//
// Errors:
//   - ErrVertexNotFound: if key is missing.
func (g *Graph) NeighborKeys(key int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[key]; !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]int, 0, len(g.adjacency[key]))
	for nbr, ids := range g.adjacency[key] {
		if len(ids) > 0 {
			out = append(out, nbr)
		}
	}
	sort.Ints(out)

	return out, nil
}

// addAdjacency links e into the adjacency buckets of both endpoints.
// Must be called under the write lock.
func addAdjacency(g *Graph, e *Edge) {
	ensureAdjacency(g, e.From, e.To)
	g.adjacency[e.From][e.To][e.ID] = struct{}{}
	if e.From != e.To {
		ensureAdjacency(g, e.To, e.From)
		g.adjacency[e.To][e.From][e.ID] = struct{}{}
	}
}

// ensureAdjacency lazily allocates the nested bucket from→to.
func ensureAdjacency(g *Graph, from, to int) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[int]map[int]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[int]struct{})
	}
}

// removeAdjacency removes e.ID from both endpoint buckets, pruning empty ones.
// Must be called under the write lock.
func removeAdjacency(g *Graph, e *Edge) {
	unlink := func(from, to int) {
		if m := g.adjacency[from][to]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.adjacency[from], to)
			}
		}
	}
	unlink(e.From, e.To)
	if e.From != e.To {
		unlink(e.To, e.From)
	}
}
