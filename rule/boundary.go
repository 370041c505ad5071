package rule

import "github.com/katalvlaran/vrg/core"

// BoundaryEdges returns the edges of g with exactly one endpoint in subtree,
// ordered by edge ID.
func BoundaryEdges(g *core.Graph, subtree []int) []core.Edge {
	in := keySet(subtree)
	var out []core.Edge
	for _, e := range g.Edges() {
		_, f := in[e.From]
		_, t := in[e.To]
		if f != t {
			out = append(out, e)
		}
	}

	return out
}

// SetBoundaryDegrees sets, on every vertex of rhs, the number of edges of g
// joining that vertex to a vertex outside rhs.
func SetBoundaryDegrees(g *core.Graph, rhs *core.Graph) error {
	inside := keySet(rhs.Vertices())
	for k := range inside {
		edges, err := g.Neighbors(k)
		if err != nil {
			return err
		}
		d := 0
		for _, e := range edges {
			if _, ok := inside[e.Other(k)]; !ok {
				d++
			}
		}
		if err = rhs.SetBoundaryDegree(k, d); err != nil {
			return err
		}
	}

	return nil
}

func keySet(keys []int) map[int]struct{} {
	s := make(map[int]struct{}, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}

	return s
}
