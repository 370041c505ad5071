package main

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vrg/grammar"
	"github.com/katalvlaran/vrg/graphio"
	"github.com/katalvlaran/vrg/store"
)

// run executes the vrg command with args and returns its stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand("test")
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()

	return out.String(), err
}

const triangleWithTail = "0 1\n1 2\n2 0\n2 3\n3 4\n"

func TestParseShape(t *testing.T) {
	tests := []struct {
		shape string
		n     int
	}{
		{"path:4", 4},
		{"cycle:5", 5},
		{"star:3", 3},
		{"wheel:6", 6},
		{"complete:4", 4},
		{"grid:2x3", 6},
		{"random:10:0.5", 10},
	}
	for _, tc := range tests {
		c, n, err := parseShape(tc.shape)
		require.NoError(t, err, tc.shape)
		assert.NotNil(t, c)
		assert.Equal(t, tc.n, n, tc.shape)
	}

	for _, bad := range []string{"", "hex:3", "path", "path:x", "grid:2", "grid:ax2", "random:5", "random:5:p"} {
		_, _, err := parseShape(bad)
		assert.Error(t, err, bad)
	}
}

func TestSyntheticGraph(t *testing.T) {
	g, err := syntheticGraph("cycle:4 + path:3+grid:2x2", 1)
	require.NoError(t, err)
	assert.Equal(t, 4+3+4, g.Order())
	assert.Equal(t, 4+2+4, g.Size())
	assert.True(t, g.HasEdge(3, 0), "cycle closes on its own keys")
	assert.True(t, g.HasEdge(4, 5), "path starts after the cycle")
	assert.True(t, g.HasEdge(7, 9), "grid column edge")

	_, err = syntheticGraph("path:1", 1)
	assert.Error(t, err)
	_, err = syntheticGraph("path:3+blob:2", 1)
	assert.Error(t, err)
}

func TestExtractCommand(t *testing.T) {
	out, err := run(t, triangleWithTail, "extract", "--lambda", "2", "--name", "tail")
	require.NoError(t, err)

	gr, err := grammar.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "tail", gr.Name)
	assert.Equal(t, 2, gr.Lambda)
	assert.NotZero(t, gr.Len())

	out, err = run(t, triangleWithTail, "extract", "--algorithm", "mdl", "--clustering", "random")
	require.NoError(t, err)
	gr, err = grammar.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Zero(t, gr.Lambda)

	_, err = run(t, triangleWithTail, "extract", "--mode", "sideways")
	assert.Error(t, err)
	_, err = run(t, "0 x\n", "extract")
	assert.Error(t, err)
}

func TestGenerateSynthetic(t *testing.T) {
	out, err := run(t, "", "generate", "--synthetic", "wheel:7", "--lambda", "3")
	require.NoError(t, err)

	g, err := graphio.ReadEdgeList(strings.NewReader(out))
	require.NoError(t, err)
	assert.NotZero(t, g.Order())

	_, err = run(t, "", "generate")
	assert.Error(t, err)
	_, err = run(t, "", "generate", "--synthetic", "hex:3")
	assert.Error(t, err)
}

func TestStoreRoundTrip(t *testing.T) {
	db := filepath.Join(t.TempDir(), "vrg.db")

	_, err := run(t, triangleWithTail, "extract", "--store", db, "--name", "tail", "--lambda", "2")
	require.NoError(t, err)

	s, err := store.Open(db)
	require.NoError(t, err)
	list, err := s.FindByName("tail")
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.Len(t, list, 1)
	id := list[0].ID.String()

	out, err := run(t, "", "grammars", "list", "--store", db)
	require.NoError(t, err)
	assert.Contains(t, out, id)
	assert.Contains(t, out, "tail")

	out, err = run(t, "", "grammars", "show", id, "--store", db)
	require.NoError(t, err)
	gr, err := grammar.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, list[0].ID, gr.ID)

	out, err = run(t, "", "generate", "--id", id, "--store", db)
	require.NoError(t, err)
	_, err = graphio.ReadEdgeList(strings.NewReader(out))
	require.NoError(t, err)

	_, err = run(t, "", "grammars", "delete", id, "--store", db)
	require.NoError(t, err)
	_, err = run(t, "", "grammars", "show", id, "--store", db)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = run(t, "", "grammars", "list")
	assert.Error(t, err, "no store configured")
}
