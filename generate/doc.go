// Package generate replays an extracted grammar into a new graph.
//
// Generation starts from the last rule whose LHS is 0 (the rule that
// swallowed the whole graph); when there is none the last rule is used and
// its boundary is left dangling. Then, while the graph has a nonterminal
// vertex, the one with the lowest key is replaced by a rule whose LHS equals
// its label, chosen with probability proportional to rule frequency.
//
// The edges that touched the replaced vertex are reattached to the new RHS
// vertices according to the rule's mode:
//
//   - full: to the inside endpoints of the RHS boundary edges;
//   - part: to RHS vertices in proportion to their boundary degree;
//   - no:   to RHS vertices chosen uniformly at random.
//
// Surplus edges, beyond what the mode's boundary information accounts for,
// land on uniformly random RHS vertices. Self-loops on a replaced vertex are
// dropped.
//
// Errors:
//
//	ErrNoStartRule    - the grammar has no rules.
//	ErrNoMatchingRule - a nonterminal's label matches no rule LHS.
//	ErrStepLimit      - more replacements than WithMaxSteps allows.
package generate
