// Package grammar holds an extracted vertex replacement grammar: an ordered,
// deduplicated sequence of rules plus the settings they were extracted with.
//
// Add is reuse-aware. Inserting a rule Equal to one already present bumps
// that rule's Frequency instead of appending, so the grammar only ever
// contains structurally distinct productions.
//
// A Grammar is not safe for concurrent mutation.
package grammar

import (
	"errors"

	"github.com/google/uuid"

	"github.com/katalvlaran/vrg/rule"
)

// Sentinel errors.
var (
	// ErrUnknownSelection indicates an unrecognised selection policy name.
	ErrUnknownSelection = errors.New("grammar: unknown selection")

	// ErrDecode indicates a malformed serialized grammar.
	ErrDecode = errors.New("grammar: decode")
)

// Grammar is an ordered set of rules with extraction metadata.
type Grammar struct {
	ID         uuid.UUID
	Name       string
	Clustering string
	Mode       rule.Mode
	Lambda     int
	Selection  Selection
	Rules      []*rule.Rule
}

// New returns an empty grammar with a fresh random ID.
func New(mode rule.Mode, lambda int, selection Selection, clustering, name string) *Grammar {
	return &Grammar{
		ID:         uuid.New(),
		Name:       name,
		Clustering: clustering,
		Mode:       mode,
		Lambda:     lambda,
		Selection:  selection,
	}
}

// Add records r. If an Equal rule is already present its Frequency is
// incremented and that rule is returned with added == false. Otherwise r
// gets the next ID and is appended.
func (g *Grammar) Add(r *rule.Rule) (stored *rule.Rule, added bool) {
	if existing := g.Find(r); existing != nil {
		existing.Frequency++
		return existing, false
	}
	r.ID = len(g.Rules)
	if r.Frequency < 1 {
		r.Frequency = 1
	}
	g.Rules = append(g.Rules, r)

	return r, true
}

// Find returns the stored rule Equal to r, or nil.
func (g *Grammar) Find(r *rule.Rule) *rule.Rule {
	for _, x := range g.Rules {
		if x.Equal(r) {
			return x
		}
	}

	return nil
}

// Contains reports whether a rule Equal to r is present.
func (g *Grammar) Contains(r *rule.Rule) bool { return g.Find(r) != nil }

// Len returns the number of distinct rules.
func (g *Grammar) Len() int { return len(g.Rules) }

// ByLHS returns the rules with the given LHS, in grammar order.
func (g *Grammar) ByLHS(lhs int) []*rule.Rule {
	var out []*rule.Rule
	for _, r := range g.Rules {
		if r.LHS == lhs {
			out = append(out, r)
		}
	}

	return out
}

// Cost returns the total description length of all rules, recomputing each
// rule's cost.
func (g *Grammar) Cost() float64 {
	total := 0.0
	for _, r := range g.Rules {
		total += r.CalculateCost()
	}

	return total
}
