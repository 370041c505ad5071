package dendrogram_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vrg/core"
	"github.com/katalvlaran/vrg/dendrogram"
)

// twoTriangles is {0,1,2} and {3,4,5} joined by the bridge 2-3.
func twoTriangles(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewMultiGraph()
	for _, e := range [][2]int{{0, 1}, {1, 2}, {0, 2}, {3, 4}, {4, 5}, {3, 5}, {2, 3}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

func assertNoUnaryNodes(t *testing.T, tr *dendrogram.Tree) {
	t.Helper()
	tr.Walk(func(n *dendrogram.Node) bool {
		if !n.IsLeaf {
			assert.GreaterOrEqual(t, len(n.Children), 2, "node %d", n.ID)
		}
		return true
	})
}

func TestLouvain_CoversEveryVertex(t *testing.T) {
	g := twoTriangles(t)
	// A parallel edge and a loop must not break weighting.
	_, _ = g.AddEdge(0, 1)
	_, _ = g.AddEdge(4, 4)

	tr, err := dendrogram.Louvain(g, 1.0)
	require.NoError(t, err)
	require.NoError(t, tr.Validate())
	assert.Equal(t, g.Vertices(), tr.LeafKeys())
	assertNoUnaryNodes(t, tr)

	root, err := tr.Node(tr.Root())
	require.NoError(t, err)
	assert.Equal(t, 6, root.NLeaf)

	tr.Walk(func(n *dendrogram.Node) bool {
		if !n.IsLeaf {
			assert.Greater(t, n.Key, 5, "internal keys must not collide with leaf keys")
		}
		return true
	})
}

func TestLouvain_NoEdgesIsFlat(t *testing.T) {
	g := core.NewMultiGraph()
	for i := 0; i < 4; i++ {
		require.NoError(t, g.AddVertex(i))
	}

	tr, err := dendrogram.Louvain(g, 1.0)
	require.NoError(t, err)
	require.NoError(t, tr.Validate())
	assert.Equal(t, "(0 1 2 3)", tr.String())
}

func TestLouvain_SingleVertex(t *testing.T) {
	g := core.NewMultiGraph()
	require.NoError(t, g.AddVertex(7))

	tr, err := dendrogram.Louvain(g, 1.0)
	require.NoError(t, err)
	assert.Equal(t, "7", tr.String())
}

func TestLouvain_Empty(t *testing.T) {
	_, err := dendrogram.Louvain(core.NewMultiGraph(), 1.0)
	assert.ErrorIs(t, err, dendrogram.ErrEmptyTree)
}

func TestRandom_IsBinaryAndDeterministic(t *testing.T) {
	keys := []int{4, 0, 3, 1, 2}

	a, err := dendrogram.Random(keys, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	require.NoError(t, a.Validate())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, a.LeafKeys())
	assert.Equal(t, 2*len(keys)-1, a.Len())
	a.Walk(func(n *dendrogram.Node) bool {
		if !n.IsLeaf {
			assert.Len(t, n.Children, 2)
		}
		return true
	})

	b, err := dendrogram.Random(keys, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())
}

func TestRandom_Errors(t *testing.T) {
	_, err := dendrogram.Random(nil, nil)
	assert.ErrorIs(t, err, dendrogram.ErrEmptyTree)

	_, err = dendrogram.Random([]int{1, 1}, nil)
	assert.ErrorIs(t, err, dendrogram.ErrMalformedTree)

	tr, err := dendrogram.Random([]int{9}, nil)
	require.NoError(t, err)
	assert.Equal(t, "9", tr.String())
}
