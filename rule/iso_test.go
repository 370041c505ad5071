package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vrg/core"
	"github.com/katalvlaran/vrg/rule"
)

func fromEdges(t *testing.T, edges [][2]int) *core.Graph {
	t.Helper()
	g := core.NewMultiGraph()
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

func TestIsomorphic(t *testing.T) {
	tests := []struct {
		name string
		a, b [][2]int
		want bool
	}{
		{"empty", nil, nil, true},
		{"relabelled triangle", [][2]int{{0, 1}, {1, 2}, {0, 2}}, [][2]int{{7, 9}, {9, 4}, {4, 7}}, true},
		{"path vs star", [][2]int{{0, 1}, {1, 2}, {2, 3}}, [][2]int{{0, 1}, {0, 2}, {0, 3}}, false},
		{"cycle vs two triangles",
			[][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}},
			[][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}}, false},
		{"multiplicity placement",
			[][2]int{{0, 1}, {0, 1}, {1, 2}},
			[][2]int{{2, 1}, {1, 0}, {1, 0}}, true},
		{"multiplicity vs simple",
			[][2]int{{0, 1}, {0, 1}, {1, 2}},
			[][2]int{{0, 1}, {1, 2}, {2, 0}}, false},
		{"loops", [][2]int{{0, 0}, {0, 1}}, [][2]int{{1, 1}, {0, 1}}, true},
		{"loop vs edge", [][2]int{{0, 0}, {0, 1}}, [][2]int{{0, 1}, {0, 1}}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, b := fromEdges(t, tc.a), fromEdges(t, tc.b)
			assert.Equal(t, tc.want, rule.Isomorphic(a, b))
			assert.Equal(t, tc.want, rule.Isomorphic(b, a))
		})
	}
}

func TestIsomorphic_Attributes(t *testing.T) {
	base := func() *core.Graph { return fromEdges(t, [][2]int{{0, 1}, {1, 2}}) }

	a, b := base(), base()
	require.NoError(t, a.SetLabel(0, 3))
	assert.False(t, rule.Isomorphic(a, b))
	require.NoError(t, b.SetLabel(2, 3))
	assert.True(t, rule.Isomorphic(a, b), "end vertices are symmetric")
	require.NoError(t, b.SetLabel(2, core.NoLabel))
	require.NoError(t, b.SetLabel(1, 3))
	assert.False(t, rule.Isomorphic(a, b), "label on the middle vertex")

	c, d := base(), base()
	require.NoError(t, c.SetBoundaryDegree(1, 2))
	assert.False(t, rule.Isomorphic(c, d))

	e := core.NewMultiGraph()
	_, _ = e.AddEdge(0, 1)
	_, _ = e.AddEdge(1, 2, core.AsBoundary())
	assert.False(t, rule.Isomorphic(e, base()), "boundary flag matters")

	f := base()
	require.NoError(t, f.AddVertex(3, core.AsExternal()))
	g := base()
	require.NoError(t, g.AddVertex(3))
	assert.False(t, rule.Isomorphic(f, g), "external flag matters")
}
