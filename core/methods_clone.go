// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone carries over nextEdgeID so edge IDs issued on the clone never
//     collide with copied ones.
// Concurrency:
//   - Read lock on the source; no mutation of the source graph.

package core

// CloneEmpty returns a new Graph with identical configuration and vertices,
// but no edges.
//
// Complexity: O(V)
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cloneLocked(false)
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges and
// adjacency. Mutating the clone never affects g.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cloneLocked(true)
}

func (g *Graph) cloneLocked(withEdges bool) *Graph {
	clone := &Graph{
		allowMulti: g.allowMulti,
		allowLoops: g.allowLoops,
		nextEdgeID: g.nextEdgeID,
		vertices:   make(map[int]*Vertex, len(g.vertices)),
		edges:      make(map[int]*Edge),
		adjacency:  make(map[int]map[int]map[int]struct{}, len(g.vertices)),
	}
	for k, v := range g.vertices {
		cp := *v
		clone.vertices[k] = &cp
		clone.adjacency[k] = make(map[int]map[int]struct{})
	}
	if !withEdges {
		return clone
	}
	for id, e := range g.edges {
		cp := *e
		clone.edges[id] = &cp
		addAdjacency(clone, &cp)
	}

	return clone
}

// Clear resets the graph to an empty state while preserving configuration
// flags. Edge IDs restart from 1.
//
// Complexity: O(1)
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices = make(map[int]*Vertex)
	g.edges = make(map[int]*Edge)
	g.adjacency = make(map[int]map[int]map[int]struct{})
	g.nextEdgeID = 0
}
