// Package core provides the in-memory multigraph that grammar extraction
// mutates and that every rule right-hand side is built from.
//
// The Graph G = (V,E) is undirected and keyed by non-negative integer vertex
// keys. Keys are not stable identities: when a cluster of vertices is
// compressed, the replacement vertex reuses the minimum key of the cluster.
//
// Supported behaviors (GraphOption):
//
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - NewMultiGraph() enables both; extraction always works on such graphs.
//
// Vertex attributes:
//
//	Label          int   // NoLabel for terminals; boundary size for nonterminals
//	BoundaryDegree int   // external degree carried by rule RHS vertices (part mode)
//	External       bool  // boundary stub vertex of a full-information RHS
//
// Edge attributes:
//
//	ID       int   // monotonic per graph (1, 2, ...), carried across Clone
//	From, To int   // endpoints; stored with From <= To
//	Boundary bool  // edge crossing a rule's boundary (full-information RHS)
//
// Core Methods:
//
//	AddVertex(key, opts...) error          // O(1), idempotent
//	RemoveVertex(key) error                // O(deg(v))
//	RemoveVertices(keys) error             // O(Σ deg)
//	AddEdge(u, v, opts...) (int, error)    // O(1)†, auto-creates endpoints
//	RemoveEdge(id) error                   // O(1)
//	Subgraph(keys) *Graph                  // O(V+E), induced deep copy
//	Clone() *Graph                         // O(V+E), deep copy
//	Order(), Size()                        // O(1)
//	Vertices() []int                       // O(V log V), sorted
//	Edges() []*Edge                        // O(E log E), sorted by ID
//	Degree(key) (int, error)               // loops count twice
//	Multiplicity(u, v) int                 // number of parallel u–v edges
//
// Errors:
//
//	ErrBadVertexKey        – negative vertex key
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
//
// † amortized: nested-map insertion.
package core
