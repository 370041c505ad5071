package extract

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/vrg/dendrogram"
	"github.com/katalvlaran/vrg/mdl"
	"github.com/katalvlaran/vrg/rule"
)

// selectMDL scores every internal node reachable from the root by
// mdl(G) / (mdl(G|S) + mdl(S)), where G|S is a trial compression of a copy of
// the live graph and S the node's rule, then collapses the best node. Ties
// keep the node visited first in pre-order.
func (x *extractor) selectMDL() ([]int, error) {
	mdlG := mdl.GraphBits(x.g)
	best := dendrogram.NoNode
	bestScore := math.Inf(-1)

	var stack []dendrogram.NodeID
	if root := x.node(x.tree.Root()); !root.IsLeaf {
		stack = append(stack, root.ID)
	}
	for len(stack) > 0 {
		n := x.node(stack[len(stack)-1])
		stack = stack[:len(stack)-1]

		score, err := x.mdlScore(n, mdlG)
		if err != nil {
			return nil, err
		}
		if score > bestScore {
			best, bestScore = n.ID, score
		}

		for i := len(n.Children) - 1; i >= 0; i-- {
			if c := x.node(n.Children[i]); !c.IsLeaf {
				stack = append(stack, c.ID)
			}
		}
	}
	if best == dendrogram.NoNode {
		return nil, ErrNoSubtree
	}

	subtree, err := x.collapse(best)
	if err != nil {
		return nil, err
	}
	x.log.WithFields(logrus.Fields{
		"node":    best,
		"score":   bestScore,
		"subtree": len(subtree),
	}).Debug("subtree selected")

	return subtree, nil
}

func (x *extractor) mdlScore(n *dendrogram.Node, mdlG float64) (float64, error) {
	trial := x.g.Clone()
	subtree := x.active.liveLeaves(n)
	r, boundary, err := rule.Create(trial, subtree, x.opts.mode)
	if err != nil {
		return 0, err
	}
	mdlS := r.CalculateCost()
	if err = Compress(trial, subtree, boundary); err != nil {
		return 0, err
	}
	denom := mdl.GraphBits(trial) + mdlS
	if denom <= 0 {
		return math.Inf(1), nil
	}

	return mdlG / denom, nil
}
