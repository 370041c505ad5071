package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vrg/core"
	"github.com/katalvlaran/vrg/mdl"
	"github.com/katalvlaran/vrg/rule"
)

// pathGraph builds 0-1-...-(n-1).
func pathGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewMultiGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(i))
	}
	for i := 1; i < n; i++ {
		_, err := g.AddEdge(i-1, i)
		require.NoError(t, err)
	}

	return g
}

func TestMode_StringAndParse(t *testing.T) {
	for _, m := range []rule.Mode{rule.ModeFull, rule.ModePart, rule.ModeNo} {
		got, err := rule.ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	assert.Equal(t, "Mode(9)", rule.Mode(9).String())

	_, err := rule.ParseMode("partial")
	assert.ErrorIs(t, err, rule.ErrUnknownMode)
}

func TestBoundaryEdges(t *testing.T) {
	g := pathGraph(t, 5)
	_, _ = g.AddEdge(2, 2) // a loop is never a boundary edge

	b := rule.BoundaryEdges(g, []int{2, 3})
	require.Len(t, b, 2)
	assert.Equal(t, [2]int{1, 2}, [2]int{b[0].From, b[0].To})
	assert.Equal(t, [2]int{3, 4}, [2]int{b[1].From, b[1].To})

	assert.Empty(t, rule.BoundaryEdges(g, []int{0, 1, 2, 3, 4}))
}

func TestSetBoundaryDegrees(t *testing.T) {
	g := pathGraph(t, 5)
	_, _ = g.AddEdge(1, 2)

	sg := g.Subgraph([]int{2, 3})
	require.NoError(t, rule.SetBoundaryDegrees(g, sg))

	v2, _ := sg.Vertex(2)
	v3, _ := sg.Vertex(3)
	assert.Equal(t, 2, v2.BoundaryDegree)
	assert.Equal(t, 1, v3.BoundaryDegree)
}

func TestCreate_NoMode(t *testing.T) {
	g := pathGraph(t, 5)

	r, boundary, err := rule.Create(g, []int{2, 3}, rule.ModeNo)
	require.NoError(t, err)
	assert.Equal(t, 2, r.LHS)
	assert.Len(t, boundary, r.LHS)
	assert.Equal(t, rule.ModeNo, r.Mode)
	assert.Equal(t, 1, r.Frequency)

	assert.Equal(t, []int{0, 1}, r.Graph.Vertices())
	assert.True(t, r.Graph.HasEdge(0, 1))
	assert.Equal(t, 1, r.Graph.Size())

	// The live graph is untouched.
	assert.Equal(t, 5, g.Order())
	assert.Equal(t, 4, g.Size())
}

func TestCreate_PartMode(t *testing.T) {
	g := pathGraph(t, 5)

	r, _, err := rule.Create(g, []int{3, 4}, rule.ModePart)
	require.NoError(t, err)
	assert.Equal(t, 1, r.LHS)

	v0, _ := r.Graph.Vertex(0) // old key 3
	v1, _ := r.Graph.Vertex(1) // old key 4
	assert.Equal(t, 1, v0.BoundaryDegree)
	assert.Equal(t, 0, v1.BoundaryDegree)
}

func TestCreate_FullMode(t *testing.T) {
	// 0-1-2-3-4 plus 1-4: subtree {1,2} has boundary edges 0-1, 1-4, 2-3.
	g := pathGraph(t, 5)
	_, _ = g.AddEdge(1, 4)

	r, boundary, err := rule.Create(g, []int{1, 2}, rule.ModeFull)
	require.NoError(t, err)
	assert.Equal(t, 3, r.LHS)
	assert.Len(t, boundary, 3)

	// Internal 1,2 -> 0,1; stubs 0,3,4 -> 2,3,4.
	assert.Equal(t, []int{0, 1, 2, 3, 4}, r.Graph.Vertices())
	for key, external := range map[int]bool{0: false, 1: false, 2: true, 3: true, 4: true} {
		v, err := r.Graph.Vertex(key)
		require.NoError(t, err)
		assert.Equal(t, external, v.External, "vertex %d", key)
	}
	s := r.Graph.Stats()
	assert.Equal(t, 4, s.EdgeCount)
	assert.Equal(t, 3, s.BoundaryEdges)
	assert.True(t, r.Graph.HasEdge(0, 1))
	assert.True(t, r.Graph.HasEdge(0, 2)) // 1-0
	assert.True(t, r.Graph.HasEdge(1, 3)) // 2-3
	assert.True(t, r.Graph.HasEdge(0, 4)) // 1-4
}

func TestCreate_Errors(t *testing.T) {
	g := pathGraph(t, 3)

	_, _, err := rule.Create(g, nil, rule.ModeNo)
	assert.ErrorIs(t, err, rule.ErrEmptySubtree)

	_, _, err = rule.Create(g, []int{0, 9}, rule.ModeNo)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, _, err = rule.Create(g, []int{0}, rule.Mode(7))
	assert.ErrorIs(t, err, rule.ErrUnknownMode)
}

func TestCreate_KeepsNonterminalLabels(t *testing.T) {
	g := pathGraph(t, 3)
	require.NoError(t, g.SetLabel(1, 2))

	r, _, err := rule.Create(g, []int{0, 1}, rule.ModeNo)
	require.NoError(t, err)
	v, _ := r.Graph.Vertex(1)
	assert.Equal(t, 2, v.Label)
}

func TestRule_EqualAcrossLocations(t *testing.T) {
	g := pathGraph(t, 6)

	a, _, err := rule.Create(g, []int{1, 2}, rule.ModeNo)
	require.NoError(t, err)
	b, _, err := rule.Create(g, []int{3, 4}, rule.ModeNo)
	require.NoError(t, err)
	c, _, err := rule.Create(g, []int{0, 1}, rule.ModeNo)
	require.NoError(t, err)
	d, _, err := rule.Create(g, []int{3, 4}, rule.ModePart)
	require.NoError(t, err)

	assert.True(t, a.Equal(b), "same shape, same LHS")
	assert.False(t, a.Equal(c), "different LHS")
	assert.False(t, b.Equal(d), "different mode")

	b.ID, b.Frequency, b.Cost = 9, 4, 1.5
	assert.True(t, a.Equal(b), "ID, frequency and cost are not structural")

	var nilRule *rule.Rule
	assert.True(t, nilRule.Equal(nil))
	assert.False(t, a.Equal(nil))
}

func TestRule_CalculateCost(t *testing.T) {
	g := pathGraph(t, 4)

	no, _, err := rule.Create(g, []int{1, 2}, rule.ModeNo)
	require.NoError(t, err)
	want := mdl.RuleBits(no.LHS, no.Graph, no.Frequency)
	assert.InDelta(t, want, no.CalculateCost(), 1e-9)
	assert.InDelta(t, want, no.Cost, 1e-9)

	part, _, err := rule.Create(g, []int{1, 2}, rule.ModePart)
	require.NoError(t, err)
	assert.Greater(t, part.CalculateCost(), no.Cost)

	full, _, err := rule.Create(g, []int{1, 2}, rule.ModeFull)
	require.NoError(t, err)
	assert.Greater(t, full.CalculateCost(), 0.0)
}

func TestRule_String(t *testing.T) {
	g := pathGraph(t, 3)
	r, _, err := rule.Create(g, []int{0, 1}, rule.ModePart)
	require.NoError(t, err)
	assert.Equal(t, "rule 0: 1 -> (n=2, m=1) x1 [part]", r.String())
}
