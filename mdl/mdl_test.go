package mdl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vrg/core"
	"github.com/katalvlaran/vrg/mdl"
)

const eps = 1e-9

func TestGammaCode(t *testing.T) {
	cases := map[int]float64{-3: 0, 0: 0, 1: 1, 2: 3, 3: 3, 4: 5, 7: 5, 8: 7, 1024: 21}
	for n, want := range cases {
		assert.Equal(t, want, mdl.GammaCode(n), "n=%d", n)
	}
}

func edge(t *testing.T, g *core.Graph, u, v int) {
	t.Helper()
	_, err := g.AddEdge(u, v)
	require.NoError(t, err)
}

func TestGraphBits(t *testing.T) {
	assert.Zero(t, mdl.GraphBits(core.NewMultiGraph()))

	single := core.NewMultiGraph()
	require.NoError(t, single.AddVertex(0))
	assert.InDelta(t, 0, mdl.GraphBits(single), eps)

	// n=2: log2 n = 1; one label; b = 1 so rows cost 1 bit each plus the
	// header bit; row 0 picks 1 of 2 columns (1 bit) with multiplicity 1 (1 bit).
	g := core.NewMultiGraph()
	edge(t, g, 0, 1)
	assert.InDelta(t, 6, mdl.GraphBits(g), eps)

	// A second parallel edge changes the multiplicity code from 1 to 3 bits.
	edge(t, g, 1, 0)
	assert.InDelta(t, 8, mdl.GraphBits(g), eps)

	// Two distinct labels cost one bit per vertex.
	h := core.NewMultiGraph()
	edge(t, h, 0, 1)
	require.NoError(t, h.SetLabel(0, 2))
	assert.InDelta(t, 8, mdl.GraphBits(h), eps)
}

func TestGraphBits_KeyIndependent(t *testing.T) {
	a := core.NewMultiGraph()
	edge(t, a, 0, 1)
	edge(t, a, 1, 2)

	b := core.NewMultiGraph()
	edge(t, b, 10, 20)
	edge(t, b, 20, 30)

	assert.InDelta(t, mdl.GraphBits(a), mdl.GraphBits(b), eps)
}

func TestRuleBits(t *testing.T) {
	g := core.NewMultiGraph()
	edge(t, g, 0, 1)
	assert.InDelta(t, 3+6+3, mdl.RuleBits(1, g, 1), eps)
	assert.InDelta(t, 1+6+3, mdl.RuleBits(0, g, 2), eps)
}

func TestBoundaryBits(t *testing.T) {
	g := core.NewMultiGraph()
	edge(t, g, 0, 1)
	require.NoError(t, g.SetBoundaryDegree(1, 2))

	assert.InDelta(t, 1+3, mdl.BoundaryDegreeBits(g), eps)
	assert.InDelta(t, 1, mdl.BoundaryEdgeBits(g), eps)
}
