package extract

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/vrg/dendrogram"
	"github.com/katalvlaran/vrg/grammar"
	"github.com/katalvlaran/vrg/rule"
)

// rank orders candidates of one bucket; lower is better.
type rank struct {
	level int
	cost  float64
}

// evaluator ranks one candidate node given the rule its subtree would yield.
type evaluator func(n *dendrogram.Node, r *rule.Rule) rank

var evaluators = map[grammar.Selection]evaluator{
	grammar.SelectMDL: func(_ *dendrogram.Node, r *rule.Rule) rank {
		return rank{cost: r.CalculateCost()}
	},
	grammar.SelectLevel: func(n *dendrogram.Node, _ *rule.Rule) rank {
		return rank{level: n.Level}
	},
	grammar.SelectLevelMDL: func(n *dendrogram.Node, r *rule.Rule) rank {
		return rank{level: n.Level, cost: r.CalculateCost()}
	},
}

func (a rank) less(b rank) bool {
	if a.level != b.level {
		return a.level < b.level
	}

	return a.cost < b.cost
}

// choose picks one of several candidates from the same bucket. cands is
// sorted by NodeID, which fixes the order of reuse checks and of ties.
func (x *extractor) choose(cands []dendrogram.NodeID) (dendrogram.NodeID, error) {
	switch sel := x.opts.selection; {
	case sel.PrefersReuse():
	case sel == grammar.SelectRandom:
		return cands[x.opts.rng.Intn(len(cands))], nil
	default:
		return dendrogram.NoNode, fmt.Errorf("%v: %w", sel, grammar.ErrUnknownSelection)
	}
	eval := evaluators[x.opts.selection]

	best := dendrogram.NoNode
	bestRank := rank{level: math.MaxInt, cost: math.Inf(1)}
	for _, id := range cands {
		n := x.node(id)
		r, _, err := rule.Create(x.g, x.active.liveLeaves(n), x.opts.mode)
		if err != nil {
			return dendrogram.NoNode, err
		}
		if x.grammar.Contains(r) {
			x.log.WithFields(logrus.Fields{"node": n.Key, "lhs": r.LHS}).Debug("existing rule found")
			return id, nil
		}
		if rk := eval(n, r); rk.less(bestRank) {
			best, bestRank = id, rk
		}
	}

	return best, nil
}
