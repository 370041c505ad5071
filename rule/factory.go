package rule

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/vrg/core"
)

const methodCreate = "Create"

// Create builds the production for collapsing subtree out of g and returns
// it with the boundary edges it was built from. g is not modified.
//
//   - ModeFull: each boundary edge is copied into the RHS as a Boundary edge
//     to an External stub vertex (one stub per distinct outside endpoint),
//     then the RHS is contracted.
//   - ModePart: every RHS vertex records its boundary degree, then the RHS
//     is generalized.
//   - ModeNo: the RHS is generalized with no boundary information.
//
// The returned rule always satisfies LHS == len(boundary).
//
// Errors:
//   - ErrEmptySubtree: subtree has no keys.
//   - core.ErrVertexNotFound: a key of subtree is not in g.
//   - ErrUnknownMode: mode is not one of the three modes.
func Create(g *core.Graph, subtree []int, mode Mode) (*Rule, []core.Edge, error) {
	if len(subtree) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", methodCreate, ErrEmptySubtree)
	}
	for _, k := range subtree {
		if !g.HasVertex(k) {
			return nil, nil, fmt.Errorf("%s: vertex %d: %w", methodCreate, k, core.ErrVertexNotFound)
		}
	}

	sg := g.Subgraph(subtree)
	boundary := BoundaryEdges(g, subtree)

	var rhs *core.Graph
	switch mode {
	case ModeFull:
		for _, e := range boundary {
			inner, outer := e.From, e.To
			if !sg.HasVertex(inner) {
				inner, outer = outer, inner
			}
			if err := sg.AddVertex(outer, core.AsExternal()); err != nil {
				return nil, nil, fmt.Errorf("%s: %w", methodCreate, err)
			}
			if _, err := sg.AddEdge(inner, outer, core.AsBoundary()); err != nil {
				return nil, nil, fmt.Errorf("%s: %w", methodCreate, err)
			}
		}
		rhs = contractRHS(sg)
	case ModePart:
		if err := SetBoundaryDegrees(g, sg); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", methodCreate, err)
		}
		rhs = generalizeRHS(sg)
	case ModeNo:
		rhs = generalizeRHS(sg)
	default:
		return nil, nil, fmt.Errorf("%s: %v: %w", methodCreate, mode, ErrUnknownMode)
	}

	return New(len(boundary), rhs, mode), boundary, nil
}

// generalizeRHS renumbers the vertices of sg to 0..k-1 in key order.
func generalizeRHS(sg *core.Graph) *core.Graph {
	return relabel(sg, sg.VertexList())
}

// contractRHS renumbers internal vertices to 0..k-1 in key order, then the
// external stubs to k.. in key order.
func contractRHS(sg *core.Graph) *core.Graph {
	verts := sg.VertexList()
	sort.SliceStable(verts, func(i, j int) bool {
		return !verts[i].External && verts[j].External
	})

	return relabel(sg, verts)
}

// relabel copies sg into a fresh multigraph where verts[i] becomes key i.
// Edges keep their ID order and flags.
func relabel(sg *core.Graph, verts []core.Vertex) *core.Graph {
	out := core.NewMultiGraph()
	index := make(map[int]int, len(verts))
	for i, v := range verts {
		index[v.Key] = i
		opts := []core.VertexOption{core.WithLabel(v.Label), core.WithBoundaryDegree(v.BoundaryDegree)}
		if v.External {
			opts = append(opts, core.AsExternal())
		}
		_ = out.AddVertex(i, opts...)
	}
	for _, e := range sg.Edges() {
		var opts []core.EdgeOption
		if e.Boundary {
			opts = append(opts, core.AsBoundary())
		}
		_, _ = out.AddEdge(index[e.From], index[e.To], opts...)
	}

	return out
}
