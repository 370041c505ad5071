// Package extract induces a vertex replacement grammar from a graph and a
// dendrogram over its vertices.
//
// Two drivers are provided:
//
//   - Extract (greedy): internal tree nodes are indexed by the score
//     |nleaf - lambda| in ascending buckets. Each step collapses a node from
//     the lowest non-empty bucket, breaking ties with the configured
//     grammar.Selection, records the rule for its subtree and compresses the
//     graph. Ancestor scores are updated incrementally.
//   - ExtractMDL: each step scores every internal node by
//     mdl(G) / (mdl(G|S) + mdl(S)) on a trial copy of the graph and collapses
//     the best one, until a single vertex remains.
//
// Both drivers mutate the supplied graph and tree in place. The live graph
// always mirrors the active leaf keys of the tree: collapsing a node removes
// its subtree's vertices, adds one nonterminal keyed by the minimum subtree
// key and rewires the boundary edges onto it.
//
// Extraction is single-threaded and holds all of its state in one
// extractor value owned by the call.
package extract
