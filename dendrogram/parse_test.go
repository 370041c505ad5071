package dendrogram_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vrg/dendrogram"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		leaves []int
		nodes  int
		out    string
	}{
		{"single leaf", "3", []int{3}, 1, "3"},
		{"pair", "(0 1)", []int{0, 1}, 3, "(0 1)"},
		{"path", "((0 1) (2 3) 4)", []int{0, 1, 2, 3, 4}, 8, "((0 1) (2 3) 4)"},
		{"whitespace", " ( (0  1)\n\t2 ) ", []int{0, 1, 2}, 5, "((0 1) 2)"},
		{"unary", "((5))", []int{5}, 3, "((5))"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := dendrogram.Parse(tc.in)
			require.NoError(t, err)
			require.NoError(t, tr.Validate())
			assert.Equal(t, tc.leaves, tr.LeafKeys())
			assert.Equal(t, tc.nodes, tr.Len())
			assert.Equal(t, tc.out, tr.String())
		})
	}
}

func TestParse_InternalKeysAboveLeaves(t *testing.T) {
	tr, err := dendrogram.Parse("((0 1) (2 3) 4)")
	require.NoError(t, err)

	var internal []int
	tr.Walk(func(n *dendrogram.Node) bool {
		if !n.IsLeaf {
			internal = append(internal, n.Key)
		}
		return true
	})
	assert.ElementsMatch(t, []int{5, 6, 7}, internal)
	root, _ := tr.Node(tr.Root())
	assert.Equal(t, 7, root.Key)
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"", "(", "()", "(0 1", "(0 x)", "(-1 2)"} {
		_, err := dendrogram.Parse(in)
		assert.ErrorIs(t, err, dendrogram.ErrParse, "input %q", in)
	}

	_, err := dendrogram.Parse("(0 (1 0))")
	assert.ErrorIs(t, err, dendrogram.ErrMalformedTree)
}

func TestReadTree(t *testing.T) {
	tr, err := dendrogram.ReadTree(strings.NewReader("((0 1) 2)\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, tr.LeafKeys())
}
