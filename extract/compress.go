package extract

import (
	"fmt"

	"github.com/katalvlaran/vrg/core"
	"github.com/katalvlaran/vrg/rule"
)

// Compress replaces subtree in g by a single vertex keyed by the minimum
// subtree key and labelled len(boundary), then re-inserts every boundary
// edge with its inside endpoint redirected to the new vertex. An edge with
// both endpoints inside becomes a self-loop.
//
// Errors:
//   - rule.ErrEmptySubtree: subtree has no keys.
//   - core.ErrVertexNotFound: a subtree key is missing from g; g is unchanged.
func Compress(g *core.Graph, subtree []int, boundary []core.Edge) error {
	if len(subtree) == 0 {
		return fmt.Errorf("Compress: %w", rule.ErrEmptySubtree)
	}
	in := make(map[int]struct{}, len(subtree))
	newKey := subtree[0]
	for _, k := range subtree {
		in[k] = struct{}{}
		if k < newKey {
			newKey = k
		}
	}

	if err := g.RemoveVertices(subtree); err != nil {
		return fmt.Errorf("Compress: %w", err)
	}
	if err := g.AddVertex(newKey, core.WithLabel(len(boundary))); err != nil {
		return fmt.Errorf("Compress: %w", err)
	}
	for _, e := range boundary {
		u, v := e.From, e.To
		if _, ok := in[u]; ok {
			u = newKey
		}
		if _, ok := in[v]; ok {
			v = newKey
		}
		if _, err := g.AddEdge(u, v); err != nil {
			return fmt.Errorf("Compress: AddEdge(%d, %d): %w", u, v, err)
		}
	}

	return nil
}
