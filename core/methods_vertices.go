// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns keys sorted ascending.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex if missing (idempotent).
// Options are applied only when the vertex is created; use SetLabel or
// SetBoundaryDegree to change attributes of an existing vertex.
//
// Errors:
//   - ErrBadVertexKey: if key < 0.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(key int, opts ...VertexOption) error {
	if key < 0 {
		return ErrBadVertexKey
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(key, opts...)

	return nil
}

// addVertexLocked registers key if absent. Caller holds the write lock.
func (g *Graph) addVertexLocked(key int, opts ...VertexOption) *Vertex {
	if v, ok := g.vertices[key]; ok {
		return v
	}
	v := &Vertex{Key: key, Label: NoLabel}
	for _, opt := range opts {
		opt(v)
	}
	g.vertices[key] = v
	if g.adjacency[key] == nil {
		g.adjacency[key] = make(map[int]map[int]struct{})
	}

	return v
}

// HasVertex reports whether the vertex key exists.
// Complexity: O(1)
func (g *Graph) HasVertex(key int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[key]

	return ok
}

// Vertex returns a copy of the vertex record for key.
//
// Errors:
//   - ErrVertexNotFound: if key is missing.
func (g *Graph) Vertex(key int) (Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[key]
	if !ok {
		return Vertex{}, ErrVertexNotFound
	}

	return *v, nil
}

// SetLabel sets the label of an existing vertex.
func (g *Graph) SetLabel(key, label int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	v, ok := g.vertices[key]
	if !ok {
		return ErrVertexNotFound
	}
	v.Label = label

	return nil
}

// SetBoundaryDegree sets the boundary degree of an existing vertex.
func (g *Graph) SetBoundaryDegree(key, d int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	v, ok := g.vertices[key]
	if !ok {
		return ErrVertexNotFound
	}
	v.BoundaryDegree = d

	return nil
}

// RemoveVertex deletes a vertex and all incident edges.
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(deg(v)).
func (g *Graph) RemoveVertex(key int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.removeVertexLocked(key)
}

// RemoveVertices deletes every vertex in keys together with incident edges.
// All keys are checked before anything is removed, so a missing key leaves
// the graph untouched.
//
// Complexity: O(Σ deg(v)).
func (g *Graph) RemoveVertices(keys []int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, k := range keys {
		if _, ok := g.vertices[k]; !ok {
			return fmt.Errorf("RemoveVertices(%d): %w", k, ErrVertexNotFound)
		}
	}
	for _, k := range keys {
		if _, ok := g.vertices[k]; !ok {
			continue // duplicate key in input
		}
		if err := g.removeVertexLocked(k); err != nil {
			return err
		}
	}

	return nil
}

// removeVertexLocked unlinks every incident edge and drops the vertex.
func (g *Graph) removeVertexLocked(key int) error {
	if _, ok := g.vertices[key]; !ok {
		return ErrVertexNotFound
	}
	for _, ids := range g.adjacency[key] {
		for eid := range ids {
			if e, ok := g.edges[eid]; ok {
				removeAdjacency(g, e)
				delete(g.edges, eid)
			}
		}
	}
	delete(g.adjacency, key)
	delete(g.vertices, key)

	return nil
}

// Vertices returns all vertex keys sorted ascending.
// Complexity: O(V log V)
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, 0, len(g.vertices))
	for k := range g.vertices {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}

// VertexList returns copies of all vertex records sorted by key.
func (g *Graph) VertexList() []Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })

	return out
}

// Order returns the number of vertices.
// Complexity: O(1)
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of edge ends at key; a self-loop counts twice.
//
// Errors:
//   - ErrVertexNotFound: if key is missing.
//
// Complexity: O(deg(v)).
func (g *Graph) Degree(key int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[key]; !ok {
		return 0, ErrVertexNotFound
	}
	deg := 0
	for nbr, ids := range g.adjacency[key] {
		if nbr == key {
			deg += 2 * len(ids)
			continue
		}
		deg += len(ids)
	}

	return deg, nil
}
