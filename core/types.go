// Package core defines the central Graph, Vertex, and Edge types.
//
// The Graph guards its catalogs with a single sync.RWMutex so read-only
// queries may run concurrently; extraction itself mutates a graph from one
// goroutine only.
package core

import (
	"errors"
	"sync"
)

// NoLabel marks a terminal vertex (one that never went through compression).
const NoLabel = -1

// Sentinel errors for core graph operations.
var (
	// ErrBadVertexKey indicates a negative vertex key.
	ErrBadVertexKey = errors.New("core: vertex key must be non-negative")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
type Vertex struct {
	// Key identifies the vertex within its Graph.
	Key int

	// Label is NoLabel for terminals. A non-negative Label marks a
	// nonterminal and equals the number of boundary edges it replaced.
	Label int

	// BoundaryDegree is the number of boundary edges incident to this vertex
	// in the graph a rule was extracted from. Zero unless set explicitly.
	BoundaryDegree int

	// External marks a boundary stub vertex in a full-information rule RHS.
	External bool
}

// IsNonterminal reports whether v carries a nonterminal label.
func (v *Vertex) IsNonterminal() bool { return v.Label != NoLabel }

// Edge represents an undirected connection between two vertices.
// From <= To always holds for stored edges.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID int

	// From and To are the endpoint keys.
	From int
	To   int

	// Boundary marks an edge that crossed a rule's boundary.
	Boundary bool
}

// IsLoop reports whether the edge is a self-loop.
func (e *Edge) IsLoop() bool { return e.From == e.To }

// Other returns the endpoint of e opposite to key.
func (e *Edge) Other(key int) int {
	if e.From == key {
		return e.To
	}
	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// VertexOption configures attributes of a vertex when added.
type VertexOption func(*Vertex)

// WithLabel sets the vertex label.
func WithLabel(label int) VertexOption {
	return func(v *Vertex) { v.Label = label }
}

// WithBoundaryDegree sets the vertex boundary degree.
func WithBoundaryDegree(d int) VertexOption {
	return func(v *Vertex) { v.BoundaryDegree = d }
}

// AsExternal marks the vertex as an external boundary stub.
func AsExternal() VertexOption {
	return func(v *Vertex) { v.External = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// AsBoundary marks the edge as a boundary edge.
func AsBoundary() EdgeOption {
	return func(e *Edge) { e.Boundary = true }
}

// Graph is the core in-memory multigraph.
//
// mu protects vertices, edges and adjacency. nextEdgeID is the last issued
// edge ID; IDs start at 1 and are never reused within a graph or its clones.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowMulti bool
	allowLoops bool

	// Storage
	nextEdgeID int
	vertices   map[int]*Vertex
	edges      map[int]*Edge

	// adjacency[u][v][edgeID] = struct{}{}; mirrored for u != v.
	adjacency map[int]map[int]map[int]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph allows neither loops nor multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[int]*Vertex),
		edges:     make(map[int]*Edge),
		adjacency: make(map[int]map[int]map[int]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewMultiGraph creates an empty Graph that allows loops and parallel edges.
func NewMultiGraph() *Graph {
	return NewGraph(WithMultiEdges(), WithLoops())
}
