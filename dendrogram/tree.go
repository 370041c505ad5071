package dendrogram

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// AddLeaf appends a leaf covering the single graph key and returns its ID.
func (t *Tree) AddLeaf(key int) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, &Node{
		ID:     id,
		Key:    key,
		Parent: NoParent,
		Leaves: map[int]struct{}{key: {}},
		NLeaf:  1,
		IsLeaf: true,
	})

	return id
}

// AddInternal appends an internal node with the given children. Leaves and
// NLeaf are derived from the children, whose Parent is set to the new node.
//
// Errors:
//   - ErrNodeNotFound: a child ID is outside the arena.
//   - ErrMalformedTree: no children, or a child already has a parent.
func (t *Tree) AddInternal(key int, children ...NodeID) (NodeID, error) {
	if len(children) == 0 {
		return NoNode, fmt.Errorf("AddInternal(%d): no children: %w", key, ErrMalformedTree)
	}
	seen := make(map[NodeID]struct{}, len(children))
	for _, c := range children {
		n, err := t.Node(c)
		if err != nil {
			return NoNode, fmt.Errorf("AddInternal(%d): %w", key, err)
		}
		if _, dup := seen[c]; dup || n.Parent != NoParent || c == t.root {
			return NoNode, fmt.Errorf("AddInternal(%d): child %d already attached: %w", key, c, ErrMalformedTree)
		}
		seen[c] = struct{}{}
	}

	id := NodeID(len(t.nodes))
	node := &Node{
		ID:       id,
		Key:      key,
		Children: append([]NodeID(nil), children...),
		Parent:   NoParent,
		Leaves:   make(map[int]struct{}),
	}
	for _, c := range children {
		child := t.nodes[c]
		child.Parent = id
		for k := range child.Leaves {
			node.Leaves[k] = struct{}{}
		}
		node.NLeaf += child.NLeaf
	}
	t.nodes = append(t.nodes, node)

	return id, nil
}

// SetRoot designates id as the root. The node must not have a parent.
func (t *Tree) SetRoot(id NodeID) error {
	n, err := t.Node(id)
	if err != nil {
		return fmt.Errorf("SetRoot: %w", err)
	}
	if n.Parent != NoParent {
		return fmt.Errorf("SetRoot(%d): node has a parent: %w", id, ErrMalformedTree)
	}
	t.root = id

	return nil
}

// Root returns the root ID, or NoNode if none was set.
func (t *Tree) Root() NodeID { return t.root }

// Node returns the node stored at id. The pointer aliases the arena slot.
func (t *Tree) Node(id NodeID) (*Node, error) {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil, ErrNodeNotFound
	}

	return t.nodes[id], nil
}

// Len returns the number of nodes in the arena, reachable or not.
func (t *Tree) Len() int { return len(t.nodes) }

// Walk visits every node reachable from the root in pre-order, children left
// to right. Returning false from fn stops the walk.
func (t *Tree) Walk(fn func(n *Node) bool) {
	if t.root == NoNode {
		return
	}
	stack := []NodeID{t.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.nodes[id]
		if !fn(n) {
			return
		}
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
}

// MakeLeaf turns node id into a leaf bearing newKey: children are detached,
// Leaves becomes {newKey} and NLeaf becomes 1. Level is kept.
func (t *Tree) MakeLeaf(id NodeID, newKey int) error {
	n, err := t.Node(id)
	if err != nil {
		return fmt.Errorf("MakeLeaf: %w", err)
	}
	n.Children = nil
	n.Key = newKey
	n.Leaves = map[int]struct{}{newKey: {}}
	n.NLeaf = 1
	n.IsLeaf = true

	return nil
}

// LeafKeys returns the keys of all reachable leaves, sorted ascending.
func (t *Tree) LeafKeys() []int {
	var out []int
	t.Walk(func(n *Node) bool {
		if n.IsLeaf {
			out = append(out, n.Key)
		}
		return true
	})
	sort.Ints(out)

	return out
}

// Validate checks the structure reachable from the root:
// every node is visited once, children point back to their parent, internal
// nodes have children, leaves cover exactly their key, Leaves of an internal
// node is the disjoint union of its children's Leaves and NLeaf == |Leaves|.
func (t *Tree) Validate() error {
	if t.root == NoNode || len(t.nodes) == 0 {
		return ErrEmptyTree
	}
	if int(t.root) >= len(t.nodes) {
		return ErrNodeNotFound
	}

	visited := make(map[NodeID]struct{}, len(t.nodes))
	stack := []NodeID{t.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := visited[id]; ok {
			return fmt.Errorf("node %d reached twice: %w", id, ErrMalformedTree)
		}
		visited[id] = struct{}{}
		n := t.nodes[id]

		if n.IsLeaf {
			if len(n.Children) != 0 {
				return fmt.Errorf("leaf %d has children: %w", id, ErrMalformedTree)
			}
			if _, ok := n.Leaves[n.Key]; !ok || len(n.Leaves) != 1 || n.NLeaf != 1 {
				return fmt.Errorf("leaf %d does not cover exactly its key: %w", id, ErrMalformedTree)
			}
			continue
		}

		if len(n.Children) == 0 {
			return fmt.Errorf("internal node %d has no children: %w", id, ErrMalformedTree)
		}
		sum := 0
		union := make(map[int]struct{}, len(n.Leaves))
		for _, c := range n.Children {
			if c < 0 || int(c) >= len(t.nodes) {
				return fmt.Errorf("node %d: child %d: %w", id, c, ErrNodeNotFound)
			}
			child := t.nodes[c]
			if child.Parent != id {
				return fmt.Errorf("child %d does not point back to %d: %w", c, id, ErrMalformedTree)
			}
			sum += child.NLeaf
			for k := range child.Leaves {
				union[k] = struct{}{}
			}
			stack = append(stack, c)
		}
		if sum != n.NLeaf || len(union) != n.NLeaf || len(n.Leaves) != n.NLeaf {
			return fmt.Errorf("node %d: nleaf=%d, children sum=%d, |leaves|=%d: %w",
				id, n.NLeaf, sum, len(n.Leaves), ErrMalformedTree)
		}
		for k := range union {
			if _, ok := n.Leaves[k]; !ok {
				return fmt.Errorf("node %d: leaf key %d missing: %w", id, k, ErrMalformedTree)
			}
		}
	}

	return nil
}

// Clone returns a deep copy of the arena and root.
func (t *Tree) Clone() *Tree {
	out := &Tree{root: t.root, nodes: make([]*Node, len(t.nodes))}
	for i, n := range t.nodes {
		cp := *n
		cp.Children = append([]NodeID(nil), n.Children...)
		cp.Leaves = make(map[int]struct{}, len(n.Leaves))
		for k := range n.Leaves {
			cp.Leaves[k] = struct{}{}
		}
		out.nodes[i] = &cp
	}

	return out
}

// String renders the reachable tree in the s-expression form accepted by
// Parse. Internal keys are not part of the text form.
func (t *Tree) String() string {
	if t.root == NoNode {
		return "()"
	}
	var sb strings.Builder
	t.write(&sb, t.root)

	return sb.String()
}

func (t *Tree) write(sb *strings.Builder, id NodeID) {
	n := t.nodes[id]
	if n.IsLeaf {
		sb.WriteString(strconv.Itoa(n.Key))
		return
	}
	sb.WriteByte('(')
	for i, c := range n.Children {
		if i > 0 {
			sb.WriteByte(' ')
		}
		t.write(sb, c)
	}
	sb.WriteByte(')')
}
