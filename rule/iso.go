package rule

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/vrg/core"
)

// mult counts the plain and boundary edges between two vertices.
type mult struct{ plain, boundary int }

// isoGraph is a dense, index-addressed view of a core.Graph.
type isoGraph struct {
	sig []string       // per-vertex attribute signature
	adj []map[int]mult // adj[i][j] for i, j indices, symmetric, loops on the diagonal
}

func newIsoGraph(g *core.Graph) *isoGraph {
	verts := g.VertexList()
	index := make(map[int]int, len(verts))
	ig := &isoGraph{
		sig: make([]string, len(verts)),
		adj: make([]map[int]mult, len(verts)),
	}
	for i, v := range verts {
		index[v.Key] = i
		ig.sig[i] = fmt.Sprintf("%d/%d/%t", v.Label, v.BoundaryDegree, v.External)
		ig.adj[i] = make(map[int]mult)
	}
	for _, e := range g.Edges() {
		u, v := index[e.From], index[e.To]
		m := ig.adj[u][v]
		if e.Boundary {
			m.boundary++
		} else {
			m.plain++
		}
		ig.adj[u][v] = m
		ig.adj[v][u] = m
	}

	return ig
}

// Isomorphic reports whether a and b are isomorphic as attributed
// multigraphs: a bijection of vertices must preserve label, boundary degree
// and external flag, and the number of plain and boundary edges between
// every pair of vertices.
//
// Colour refinement prunes the search; the final check is an exact
// backtracking match over the refined colour classes.
func Isomorphic(a, b *core.Graph) bool {
	if a.Order() != b.Order() || a.Size() != b.Size() {
		return false
	}
	ga, gb := newIsoGraph(a), newIsoGraph(b)
	ca, cb, ok := refine(ga, gb)
	if !ok {
		return false
	}

	return match(ga, gb, ca, cb)
}

// refine runs colour refinement on both graphs with a shared palette and
// reports false as soon as the colour histograms differ.
func refine(a, b *isoGraph) ([]int, []int, bool) {
	palette := make(map[string]int)
	ca := paint(a.sig, palette)
	cb := paint(b.sig, palette)
	if !sameHistogram(ca, cb) {
		return nil, nil, false
	}

	classes := len(palette)
	for round := 0; round < len(ca); round++ {
		palette = make(map[string]int)
		na := paint(neighbourhoods(a, ca), palette)
		nb := paint(neighbourhoods(b, cb), palette)
		if !sameHistogram(na, nb) {
			return nil, nil, false
		}
		ca, cb = na, nb
		if len(palette) == classes {
			break
		}
		classes = len(palette)
	}

	return ca, cb, true
}

func paint(words []string, palette map[string]int) []int {
	out := make([]int, len(words))
	for i, w := range words {
		c, ok := palette[w]
		if !ok {
			c = len(palette)
			palette[w] = c
		}
		out[i] = c
	}

	return out
}

// neighbourhoods describes each vertex by its colour and the sorted multiset
// of (neighbour colour, plain, boundary) triples.
func neighbourhoods(g *isoGraph, colour []int) []string {
	out := make([]string, len(colour))
	for i := range colour {
		parts := make([]string, 0, len(g.adj[i]))
		for j, m := range g.adj[i] {
			parts = append(parts, fmt.Sprintf("%d:%d:%d", colour[j], m.plain, m.boundary))
		}
		sort.Strings(parts)
		out[i] = fmt.Sprintf("%d|%s", colour[i], strings.Join(parts, ","))
	}

	return out
}

func sameHistogram(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	h := make(map[int]int)
	for _, c := range a {
		h[c]++
	}
	for _, c := range b {
		h[c]--
	}
	for _, n := range h {
		if n != 0 {
			return false
		}
	}

	return true
}

// match searches for a colour-preserving bijection a -> b that preserves
// every pairwise multiplicity. Vertices of a are placed smallest colour
// class first.
func match(a, b *isoGraph, ca, cb []int) bool {
	n := len(ca)
	size := make(map[int]int)
	for _, c := range ca {
		size[c]++
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool {
		sx, sy := size[ca[order[x]]], size[ca[order[y]]]
		if sx != sy {
			return sx < sy
		}
		return ca[order[x]] < ca[order[y]]
	})

	byColour := make(map[int][]int)
	for j, c := range cb {
		byColour[c] = append(byColour[c], j)
	}

	image := make([]int, n)
	used := make([]bool, n)
	var place func(pos int) bool
	place = func(pos int) bool {
		if pos == n {
			return true
		}
		i := order[pos]
		for _, j := range byColour[ca[i]] {
			if used[j] || a.adj[i][i] != b.adj[j][j] {
				continue
			}
			consistent := true
			for p := 0; p < pos; p++ {
				q := order[p]
				if a.adj[i][q] != b.adj[j][image[q]] {
					consistent = false
					break
				}
			}
			if !consistent {
				continue
			}
			image[i] = j
			used[j] = true
			if place(pos + 1) {
				return true
			}
			used[j] = false
		}
		return false
	}

	return place(0)
}
