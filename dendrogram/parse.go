package dendrogram

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2"
)

// treeExpr is one node of the s-expression form: a bare integer is a leaf,
// a parenthesised list is an internal node.
type treeExpr struct {
	Leaf *int        `parser:"@Int"`
	Kids []*treeExpr `parser:"| \"(\" @@+ \")\""`
}

var parseTreeExpr = participle.MustBuild[treeExpr]()

// Parse builds a tree from its s-expression form, e.g. "((0 1) (2 3) 4)".
// Leaf keys must be distinct non-negative integers. Internal nodes are keyed
// max(leaf)+1, max(leaf)+2, ... in post-order.
func Parse(s string) (*Tree, error) {
	expr, err := parseTreeExpr.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return fromExpr(expr)
}

// ReadTree is Parse over a reader.
func ReadTree(r io.Reader) (*Tree, error) {
	expr, err := parseTreeExpr.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return fromExpr(expr)
}

func fromExpr(expr *treeExpr) (*Tree, error) {
	maxKey := -1
	seen := make(map[int]struct{})
	var scan func(e *treeExpr) error
	scan = func(e *treeExpr) error {
		if e.Leaf != nil {
			if _, dup := seen[*e.Leaf]; dup {
				return fmt.Errorf("duplicate leaf %d: %w", *e.Leaf, ErrMalformedTree)
			}
			seen[*e.Leaf] = struct{}{}
			if *e.Leaf > maxKey {
				maxKey = *e.Leaf
			}
			return nil
		}
		for _, k := range e.Kids {
			if err := scan(k); err != nil {
				return err
			}
		}
		return nil
	}
	if err := scan(expr); err != nil {
		return nil, err
	}

	t := New()
	next := maxKey + 1
	var build func(e *treeExpr) (NodeID, error)
	build = func(e *treeExpr) (NodeID, error) {
		if e.Leaf != nil {
			return t.AddLeaf(*e.Leaf), nil
		}
		kids := make([]NodeID, 0, len(e.Kids))
		for _, k := range e.Kids {
			id, err := build(k)
			if err != nil {
				return NoNode, err
			}
			kids = append(kids, id)
		}
		key := next
		next++
		return t.AddInternal(key, kids...)
	}
	root, err := build(expr)
	if err != nil {
		return nil, err
	}
	if err = t.SetRoot(root); err != nil {
		return nil, err
	}

	return t, nil
}
