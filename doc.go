// Package vrg extracts vertex replacement grammars from graphs and replays
// them into new graphs.
//
// A grammar is a list of rules. Each rule says "a nonterminal with this many
// boundary edges may be replaced by this small graph". Extraction walks a
// hierarchical clustering of the input (a dendrogram), repeatedly picks a
// cluster, records it as a rule and collapses it into one nonterminal vertex,
// until the whole graph is a single vertex.
//
// Under the hood, everything is organized under these subpackages:
//
//	core/         live int-keyed multigraph the extraction compresses
//	dendrogram/   cluster tree arena; Parse, Louvain and Random producers
//	rule/         productions, boundary edges, the three rule modes
//	mdl/          description length in bits for graphs and rules
//	grammar/      rule accumulator with frequency counting, YAML codec
//	extract/      greedy and MDL-global extraction drivers, Compress
//	generate/     grammar replay into a new graph
//	graphio/      edge-list reader and writer
//	builder/      synthetic graph constructors (path, cycle, grid, ...)
//	converterts/  bridge to gonum graphs
//	store/        bolthold-backed grammar database
//	config/       koanf configuration layering
//	cmd/vrg/      the vrg command
//
// Quick ASCII example:
//
//	0───1───2───3───4      dendrogram ((0 1) (2 3) 4), λ = 2
//
//	rule 0: 1 -> (n=2, m=1)
//	rule 1: 2 -> (n=2, m=1)
//	rule 2: 0 -> (n=3, m=2)
//
// The path becomes two 2-vertex clusters, then the remaining three vertices
// form the start rule.
//
//	go install github.com/katalvlaran/vrg/cmd/vrg@latest
package vrg
