// Package builder provides deterministic graph constructors that produce
// *core.Graph fixtures: the inputs of grammar extraction in tests, examples
// and the CLI's synthetic mode.
//
// Constructors are composed through one orchestrator:
//
//	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(7)},
//		builder.Cycle(6),
//		builder.Offset(6, builder.RandomSparse(10, 0.2)),
//	)
//
// Every constructor adds its vertices under keys keyOffset+0, keyOffset+1,
// ... (WithKeyOffset); Offset shifts a single constructor so several of them
// can lay out disjoint components in one graph. Constructors validate their parameters and return
// sentinel errors; option constructors panic on meaningless input.
//
// Topologies:
//
//	Path(n)            n >= 2   n-1 edges
//	Cycle(n)           n >= 3   n edges
//	Star(n)            n >= 2   hub keyOffset, n-1 spokes
//	Wheel(n)           n >= 4   hub keyOffset + rim cycle of n-1
//	Complete(n)        n >= 1   n(n-1)/2 edges
//	Grid(rows, cols)   >= 1x1   row-major keys, 4-neighbourhood
//	RandomSparse(n, p) n >= 1   Erdős–Rényi G(n, p); needs WithSeed/WithRand for 0<p<1
//
// Determinism: equal inputs, options and seed yield identical graphs,
// including edge IDs.
package builder
