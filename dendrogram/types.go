package dendrogram

import "errors"

// NodeID is the stable arena index of a node. It never changes, even when the
// node's Key is reassigned.
type NodeID int

// NoNode marks an absent node reference.
const NoNode NodeID = -1

// NoParent is the Parent value of a node without a parent, such as the root.
const NoParent = NoNode

// Sentinel errors for tree operations.
var (
	// ErrEmptyTree indicates a tree without a root.
	ErrEmptyTree = errors.New("dendrogram: empty tree")

	// ErrNodeNotFound indicates a NodeID outside the arena.
	ErrNodeNotFound = errors.New("dendrogram: node not found")

	// ErrMalformedTree indicates a broken structural invariant
	// (shared child, cycle, leaf/count mismatch, duplicate leaf key).
	ErrMalformedTree = errors.New("dendrogram: malformed tree")

	// ErrParse indicates the text form of a tree could not be parsed.
	ErrParse = errors.New("dendrogram: parse error")
)

// Node is one cluster of the hierarchy.
type Node struct {
	// ID is the stable arena slot of this node.
	ID NodeID

	// Key is the current representative key. For a leaf it is a graph
	// vertex key; it is reassigned when an internal node collapses.
	Key int

	// Children lists the child nodes in order. Empty iff IsLeaf.
	Children []NodeID

	// Parent is the index of the parent node, NoParent for the root.
	Parent NodeID

	// Leaves is the set of graph keys covered by this node.
	Leaves map[int]struct{}

	// NLeaf is the number of graph keys covered by this node.
	NLeaf int

	// Level is the depth from the root (root = 0). Assigned once when the
	// tree is indexed for extraction and kept across collapses.
	Level int

	// IsLeaf reports whether the node currently has no children.
	IsLeaf bool
}

// Tree is an arena of nodes with a designated root.
type Tree struct {
	nodes []*Node
	root  NodeID
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{root: NoNode}
}
