package extract

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/vrg/dendrogram"
)

// selectGreedy collapses one node from the lowest-scored bucket that still
// holds an open node and returns its subtree. It returns ErrNoSubtree when
// every bucket is exhausted.
func (x *extractor) selectGreedy() ([]int, error) {
	best := dendrogram.NoNode
	bestScore := 0
	var err error
	x.buckets.ascend(func(score int, ids []dendrogram.NodeID) bool {
		cands := ids[:0]
		for _, id := range ids {
			if x.active.isOpen(id) {
				cands = append(cands, id)
			}
		}
		switch len(cands) {
		case 0:
			return true
		case 1:
			best = cands[0]
		default:
			best, err = x.choose(cands)
		}
		bestScore = score
		return false
	})
	if err != nil {
		return nil, err
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
		"key":     subtree[0],
	}).Debug("subtree selected")

	return subtree, nil
}
