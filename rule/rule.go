// Package rule defines grammar productions and builds them from subtrees of
// a live graph.
//
// A Rule replaces one nonterminal vertex with LHS boundary edges by its RHS
// graph. The RHS vertices are renumbered 0..k-1 so structurally identical
// productions extracted from different parts of a graph compare Equal.
package rule

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vrg/core"
	"github.com/katalvlaran/vrg/mdl"
)

// Sentinel errors.
var (
	// ErrUnknownMode indicates an unrecognised mode name.
	ErrUnknownMode = errors.New("rule: unknown mode")

	// ErrEmptySubtree indicates a rule was requested for no vertices.
	ErrEmptySubtree = errors.New("rule: empty subtree")
)

// Rule is a single production LHS -> RHS.
type Rule struct {
	// ID is the position of the rule in its grammar.
	ID int

	// LHS is the number of boundary edges the replaced vertex exposes.
	LHS int

	// Graph is the generalized right-hand side.
	Graph *core.Graph

	// Mode records which boundary information Graph carries.
	Mode Mode

	// Frequency counts how many times the rule was extracted.
	Frequency int

	// Cost is the description length in bits, set by CalculateCost.
	Cost float64
}

// New returns a rule with frequency 1.
func New(lhs int, rhs *core.Graph, mode Mode) *Rule {
	return &Rule{LHS: lhs, Graph: rhs, Mode: mode, Frequency: 1}
}

// CalculateCost computes, stores and returns the rule's description length.
func (r *Rule) CalculateCost() float64 {
	bits := mdl.RuleBits(r.LHS, r.Graph, r.Frequency)
	switch r.Mode {
	case ModeFull:
		bits += mdl.BoundaryEdgeBits(r.Graph)
	case ModePart:
		bits += mdl.BoundaryDegreeBits(r.Graph)
	case ModeNo:
	}
	r.Cost = bits

	return bits
}

// Equal reports whether r and o describe the same production: same mode,
// same LHS and isomorphic RHS graphs (vertex labels, boundary degrees,
// external flags and edge multiplicities included). ID, Frequency and Cost
// are ignored.
func (r *Rule) Equal(o *Rule) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.Mode != o.Mode || r.LHS != o.LHS {
		return false
	}

	return Isomorphic(r.Graph, o.Graph)
}

// String summarizes the rule, e.g. "rule 3: 2 -> (n=4, m=5) x2 [part]".
func (r *Rule) String() string {
	return fmt.Sprintf("rule %d: %d -> (n=%d, m=%d) x%d [%s]",
		r.ID, r.LHS, r.Graph.Order(), r.Graph.Size(), r.Frequency, r.Mode)
}
