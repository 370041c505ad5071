// Package mdl computes description lengths, in bits, of graphs and rules.
//
// The encoding follows the VRG model-description-length scheme:
//
//   - a graph costs the bits for its vertex count, its vertex labels and its
//     adjacency rows (neighbour count, which neighbours, edge multiplicities);
//   - a rule costs its LHS arity, its RHS graph, its frequency and whatever
//     boundary information its mode retains.
//
// All lengths are float64 bit counts; they are used only to rank choices.
package mdl

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/vrg/core"
)

// GammaCode returns the Elias gamma code length of n: 2*floor(log2 n)+1.
// Values below 1 cost nothing.
func GammaCode(n int) float64 {
	if n < 1 {
		return 0
	}

	return 2*math.Floor(math.Log2(float64(n))) + 1
}

// log2 is math.Log2 clamped to zero for x <= 1.
func log2(x float64) float64 {
	if x <= 1 {
		return 0
	}

	return math.Log2(x)
}

// GraphBits returns the description length of g.
//
// Vertices are ranked by key. Each row i of the upper-triangular adjacency
// matrix (diagonal included) is encoded as its number of distinct
// neighbours k_i in log2(b+1) bits, where b is the largest k_i, then which
// k_i of the n columns are set in log2 C(n, k_i) bits, then each non-zero
// multiplicity as a gamma code.
func GraphBits(g *core.Graph) float64 {
	verts := g.VertexList()
	n := len(verts)
	if n == 0 {
		return 0
	}

	bits := log2(float64(n))

	labels := make(map[int]struct{})
	rank := make(map[int]int, n)
	for i, v := range verts {
		labels[v.Label] = struct{}{}
		rank[v.Key] = i
	}
	bits += float64(n) * log2(float64(len(labels)))

	rows := make([]map[int]int, n)
	for i := range rows {
		rows[i] = make(map[int]int)
	}
	for _, e := range g.Edges() {
		u, v := rank[e.From], rank[e.To]
		if u > v {
			u, v = v, u
		}
		rows[u][v]++
	}

	b := 0
	for _, row := range rows {
		if len(row) > b {
			b = len(row)
		}
	}
	rowBits := log2(float64(b + 1))
	bits += rowBits
	for _, row := range rows {
		k := len(row)
		bits += rowBits
		bits += combin.LogGeneralizedBinomial(float64(n), float64(k)) / math.Ln2
		for _, m := range row {
			bits += GammaCode(m)
		}
	}

	return bits
}

// RuleBits returns the description length of a rule with the given LHS
// arity, RHS graph and frequency, excluding mode-specific boundary bits.
func RuleBits(lhs int, rhs *core.Graph, frequency int) float64 {
	return GammaCode(lhs+1) + GraphBits(rhs) + GammaCode(frequency+1)
}

// BoundaryDegreeBits returns the bits to store every RHS vertex's boundary
// degree (partial boundary information).
func BoundaryDegreeBits(rhs *core.Graph) float64 {
	bits := 0.0
	for _, v := range rhs.VertexList() {
		bits += GammaCode(v.BoundaryDegree + 1)
	}

	return bits
}

// BoundaryEdgeBits returns the bits to flag which RHS edges are boundary
// edges (full boundary information): one bit per edge.
func BoundaryEdgeBits(rhs *core.Graph) float64 {
	return float64(rhs.Size())
}
