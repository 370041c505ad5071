// Package converters provides adapters between core.Graph and gonum's graph
// representations, so gonum algorithms (community detection in particular)
// can run over the live multigraph.
//
// Parallel edges collapse into one weighted edge whose weight is the
// multiplicity. Self-loops are dropped. Vertex keys become gonum node IDs
// unchanged, and vertex labels are not carried over.
package converters
