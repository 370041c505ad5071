package extract

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/vrg/core"
	"github.com/katalvlaran/vrg/dendrogram"
	"github.com/katalvlaran/vrg/grammar"
)

// extractor owns every piece of mutable state of one run.
type extractor struct {
	g       *core.Graph
	tree    *dendrogram.Tree
	opts    options
	log     logrus.FieldLogger
	buckets *buckets // nil for the MDL driver
	active  *activeSet
	grammar *grammar.Grammar
	initial int
}

// newExtractor validates tree against g and indexes it in one pre-order
// pass: levels are assigned (root 0), leaves enter the active set and, when
// indexed is true, internal nodes enter the bucket for |nleaf - lambda|.
func newExtractor(g *core.Graph, tree *dendrogram.Tree, opts options, indexed bool) (*extractor, error) {
	if err := tree.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedTree, err)
	}

	x := &extractor{
		g:      g,
		tree:   tree,
		opts:   opts,
		log:    opts.log,
		active: newActiveSet(),
	}
	if indexed {
		x.buckets = newBuckets()
	}

	root, _ := tree.Node(tree.Root())
	root.Level = 0
	tree.Walk(func(n *dendrogram.Node) bool {
		for _, c := range n.Children {
			child, _ := tree.Node(c)
			child.Level = n.Level + 1
		}
		if n.IsLeaf {
			x.active.keys[n.Key] = n.ID
			return true
		}
		x.active.open[n.ID] = struct{}{}
		if x.buckets != nil {
			x.buckets.insert(n.ID, x.score(n))
		}
		return true
	})

	keys := x.active.Keys()
	verts := g.Vertices()
	if len(keys) != len(verts) {
		return nil, fmt.Errorf("%w: tree has %d leaves, graph has %d vertices", ErrMalformedTree, len(keys), len(verts))
	}
	for i := range keys {
		if keys[i] != verts[i] {
			return nil, fmt.Errorf("%w: leaf keys differ from vertex keys", ErrMalformedTree)
		}
	}
	x.initial = x.active.Len()

	return x, nil
}

// score is the greedy bucket score of an internal node.
func (x *extractor) score(n *dendrogram.Node) int {
	d := n.NLeaf - x.opts.lambda
	if d < 0 {
		return -d
	}

	return d
}

func (x *extractor) node(id dendrogram.NodeID) *dendrogram.Node {
	n, err := x.tree.Node(id)
	if err != nil {
		// IDs only ever come from the tree itself.
		panic(fmt.Sprintf("extract: node %d: %v", id, err))
	}

	return n
}

// collapse turns internal node id into a leaf and returns its subtree, the
// live keys it covered. The new leaf takes the minimum subtree key. Internal
// descendants are closed and dropped from the buckets, absorbed keys leave
// the active set, and every ancestor's leaves, nleaf and bucket follow.
func (x *extractor) collapse(id dendrogram.NodeID) ([]int, error) {
	n := x.node(id)
	subtree := x.active.liveLeaves(n)
	if len(subtree) == 0 {
		return nil, fmt.Errorf("%w: node %d covers no live key", ErrMalformedTree, id)
	}
	newKey := subtree[0]

	stack := append([]dendrogram.NodeID(nil), n.Children...)
	for len(stack) > 0 {
		c := x.node(stack[len(stack)-1])
		stack = stack[:len(stack)-1]
		if c.IsLeaf {
			delete(x.active.keys, c.Key)
			continue
		}
		x.close(c.ID)
		stack = append(stack, c.Children...)
	}
	for _, k := range subtree {
		delete(x.active.keys, k)
	}
	x.close(id)

	x.updateParents(n, newKey)
	if err := x.tree.MakeLeaf(id, newKey); err != nil {
		return nil, err
	}
	x.active.keys[newKey] = id

	return subtree, nil
}

func (x *extractor) close(id dendrogram.NodeID) {
	delete(x.active.open, id)
	if x.buckets != nil {
		x.buckets.remove(id)
	}
}

// updateParents walks from n to the root. Every ancestor loses n's leaves,
// gains newKey, drops n.NLeaf-1 from its count and is re-bucketed.
func (x *extractor) updateParents(n *dendrogram.Node, newKey int) {
	delta := n.NLeaf - 1
	for pid := n.Parent; pid != dendrogram.NoParent; {
		p := x.node(pid)
		if x.buckets != nil {
			x.buckets.remove(pid)
		}
		p.NLeaf -= delta
		for k := range n.Leaves {
			delete(p.Leaves, k)
		}
		p.Leaves[newKey] = struct{}{}
		if x.buckets != nil {
			x.buckets.insert(pid, x.score(p))
		}
		pid = p.Parent
	}
}

// progress returns the consumed fraction of the initial active set.
func (x *extractor) progress() float64 {
	if x.initial == 0 {
		return 1
	}

	return 1 - float64(x.active.Len())/float64(x.initial)
}

func (x *extractor) report() {
	p := x.progress()
	x.log.WithFields(logrus.Fields{
		"rules":    x.grammar.Len(),
		"active":   x.active.Len(),
		"vertices": x.g.Order(),
		"progress": fmt.Sprintf("%.1f%%", 100*p),
	}).Debug("rule recorded")
	if x.opts.progress != nil {
		x.opts.progress(p)
	}
}
