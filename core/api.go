// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters and the Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.

package core

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	AllowsMulti      bool
	AllowsLoops      bool
	VertexCount      int
	EdgeCount        int
	LoopCount        int
	BoundaryEdges    int
	NonterminalCount int
	ExternalCount    int
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Stats produces a snapshot of flags and counts.
//
// Complexity: O(V+E).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := GraphStats{
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
	}
	for _, v := range g.vertices {
		if v.IsNonterminal() {
			s.NonterminalCount++
		}
		if v.External {
			s.ExternalCount++
		}
	}
	for _, e := range g.edges {
		if e.IsLoop() {
			s.LoopCount++
		}
		if e.Boundary {
			s.BoundaryEdges++
		}
	}

	return s
}
