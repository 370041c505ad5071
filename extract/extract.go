package extract

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/vrg/core"
	"github.com/katalvlaran/vrg/dendrogram"
	"github.com/katalvlaran/vrg/grammar"
	"github.com/katalvlaran/vrg/rule"
)

const (
	methodExtract    = "Extract"
	methodExtractMDL = "ExtractMDL"
)

// Extract runs the greedy bucketed driver. g and tree are consumed: on
// return g holds the compressed graph and tree the collapsed hierarchy.
//
// The loop stops when no internal node is left, or when the next rule has
// neither boundary edges nor RHS edges; that degenerate rule is not
// recorded, but its subtree is still compressed.
//
// Errors:
//   - ErrMalformedTree: tree is invalid or its leaves differ from g's vertices.
//   - ErrBoundaryMismatch: a rule's LHS disagrees with its boundary edges.
//   - errors from rule.Create and Compress.
func Extract(g *core.Graph, tree *dendrogram.Tree, opts ...Option) (*grammar.Grammar, error) {
	o := newOptions(opts...)
	x, err := newExtractor(g, tree, o, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodExtract, err)
	}
	x.grammar = grammar.New(o.mode, o.lambda, o.selection, o.clustering, o.name)
	x.log.WithFields(logrus.Fields{
		"vertices":  g.Order(),
		"edges":     g.Size(),
		"lambda":    o.lambda,
		"mode":      o.mode,
		"selection": o.selection,
	}).Info("grammar extraction started")

	for {
		subtree, err := x.selectGreedy()
		if errors.Is(err, ErrNoSubtree) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodExtract, err)
		}

		r, boundary, err := x.createRule(subtree)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodExtract, err)
		}
		if r.LHS == 0 && r.Graph.Size() == 0 {
			x.log.WithField("subtree", len(subtree)).Debug("degenerate rule discarded")
			if err = Compress(g, subtree, boundary); err != nil {
				return nil, fmt.Errorf("%s: %w", methodExtract, err)
			}
			break
		}
		x.grammar.Add(r)
		x.report()
		if err = Compress(g, subtree, boundary); err != nil {
			return nil, fmt.Errorf("%s: %w", methodExtract, err)
		}
	}

	x.log.WithFields(logrus.Fields{
		"rules":    x.grammar.Len(),
		"vertices": g.Order(),
	}).Info("grammar extraction finished")

	return x.grammar, nil
}

// ExtractMDL runs the MDL-global driver until g has a single vertex. g and
// tree are consumed as in Extract. The grammar's Lambda is 0.
//
// Errors:
//   - ErrMalformedTree, ErrBoundaryMismatch as for Extract.
//   - ErrNoSubtree: no internal node is left while g has more than one vertex.
func ExtractMDL(g *core.Graph, tree *dendrogram.Tree, opts ...Option) (*grammar.Grammar, error) {
	o := newOptions(opts...)
	x, err := newExtractor(g, tree, o, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodExtractMDL, err)
	}
	x.grammar = grammar.New(o.mode, 0, o.selection, o.clustering, o.name)
	x.log.WithFields(logrus.Fields{
		"vertices": g.Order(),
		"edges":    g.Size(),
		"mode":     o.mode,
	}).Info("MDL grammar extraction started")

	for g.Order() > 1 {
		subtree, err := x.selectMDL()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodExtractMDL, err)
		}
		r, boundary, err := x.createRule(subtree)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodExtractMDL, err)
		}
		x.grammar.Add(r)
		x.report()
		if err = Compress(g, subtree, boundary); err != nil {
			return nil, fmt.Errorf("%s: %w", methodExtractMDL, err)
		}
	}

	x.log.WithFields(logrus.Fields{
		"rules": x.grammar.Len(),
	}).Info("MDL grammar extraction finished")

	return x.grammar, nil
}

// createRule builds the rule for subtree on the live graph and checks the
// boundary invariant.
func (x *extractor) createRule(subtree []int) (*rule.Rule, []core.Edge, error) {
	r, boundary, err := rule.Create(x.g, subtree, x.opts.mode)
	if err != nil {
		return nil, nil, err
	}
	if len(boundary) != r.LHS {
		return nil, nil, fmt.Errorf("lhs=%d, boundary=%d: %w", r.LHS, len(boundary), ErrBoundaryMismatch)
	}

	return r, boundary, nil
}
