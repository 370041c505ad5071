// Package dendrogram provides the hierarchical clustering tree consumed by
// grammar extraction.
//
// A Tree is an arena of *Node values addressed by a stable NodeID. Each node
// carries a mutable representative Key, its children, a parent back-reference
// (an index into the arena, never an owning pointer), the set of graph keys
// it covers (Leaves), the count of those keys (NLeaf) and its depth (Level).
//
// Extraction shrinks a tree in place: MakeLeaf turns an internal node into a
// leaf bearing a new key and detaches its children. Detached nodes stay in the
// arena and can still be looked up by ID, but are no longer reachable from
// the root.
//
// Trees are produced outside the extraction core by one of:
//
//   - Parse / ReadTree: the s-expression text format "((0 1) (2 3) 4)".
//   - Louvain: hierarchical Louvain modularity clustering of a core.Graph.
//   - Random: random binary agglomeration over a set of keys.
//
// Builders give internal nodes keys above every leaf key (max leaf + 1, +2,
// ...) so internal and leaf keys never collide.
//
// Errors:
//
//	ErrEmptyTree     - the tree has no root or no nodes.
//	ErrNodeNotFound  - a NodeID outside the arena.
//	ErrMalformedTree - a structural invariant does not hold.
//	ErrParse         - the text form could not be parsed.
package dendrogram
