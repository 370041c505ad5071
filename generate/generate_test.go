package generate_test

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vrg/core"
	"github.com/katalvlaran/vrg/dendrogram"
	"github.com/katalvlaran/vrg/extract"
	"github.com/katalvlaran/vrg/generate"
	"github.com/katalvlaran/vrg/grammar"
	"github.com/katalvlaran/vrg/rule"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func pathGrammar(t *testing.T, mode rule.Mode) *grammar.Grammar {
	t.Helper()
	g := core.NewMultiGraph()
	for i := 0; i < 4; i++ {
		_, err := g.AddEdge(i, i+1)
		require.NoError(t, err)
	}
	tree, err := dendrogram.Parse("((0 1) (2 3) 4)")
	require.NoError(t, err)
	gr, err := extract.Extract(g, tree,
		extract.WithLambda(2), extract.WithMode(mode),
		extract.WithSelection(grammar.SelectLevel), extract.WithLogger(quietLogger()))
	require.NoError(t, err)
	require.Equal(t, 3, gr.Len())

	return gr
}

// rhs builds a rule graph: labels[i] is the label of vertex i.
func rhs(t *testing.T, labels []int, edges ...[2]int) *core.Graph {
	t.Helper()
	g := core.NewMultiGraph()
	for i, l := range labels {
		require.NoError(t, g.AddVertex(i, core.WithLabel(l)))
	}
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

func TestGenerate_ReplaysPath(t *testing.T) {
	for _, mode := range []rule.Mode{rule.ModeFull, rule.ModePart, rule.ModeNo} {
		t.Run(mode.String(), func(t *testing.T) {
			gr := pathGrammar(t, mode)
			for seed := int64(1); seed <= 5; seed++ {
				out, err := generate.Generate(gr, generate.WithSeed(seed), generate.WithLogger(quietLogger()))
				require.NoError(t, err)

				assert.Equal(t, 5, out.Order())
				assert.Equal(t, 4, out.Size())
				assert.Equal(t, []int{0, 1, 2, 3, 4}, out.Vertices())
				for _, v := range out.VertexList() {
					assert.False(t, v.IsNonterminal(), "vertex %d", v.Key)
				}
				for _, e := range out.Edges() {
					assert.False(t, e.IsLoop())
				}
			}
		})
	}
}

func TestGenerate_PartModeKeepsDegrees(t *testing.T) {
	out, err := generate.Generate(pathGrammar(t, rule.ModePart), generate.WithLogger(quietLogger()))
	require.NoError(t, err)

	var degrees []int
	for _, k := range out.Vertices() {
		d, err := out.Degree(k)
		require.NoError(t, err)
		degrees = append(degrees, d)
	}
	ones, twos := 0, 0
	for _, d := range degrees {
		switch d {
		case 1:
			ones++
		case 2:
			twos++
		}
	}
	assert.Equal(t, 2, ones, "degrees %v", degrees)
	assert.Equal(t, 3, twos, "degrees %v", degrees)
}

func TestGenerate_Deterministic(t *testing.T) {
	gr := pathGrammar(t, rule.ModeNo)
	a, err := generate.Generate(gr, generate.WithSeed(7), generate.WithLogger(quietLogger()))
	require.NoError(t, err)
	b, err := generate.Generate(gr, generate.WithSeed(7), generate.WithLogger(quietLogger()))
	require.NoError(t, err)

	assert.Equal(t, a.Edges(), b.Edges())
}

func TestGenerate_FrequencyWeighted(t *testing.T) {
	gr := grammar.New(rule.ModeNo, 2, grammar.SelectRandom, "", "")
	gr.Add(rule.New(0, rhs(t, []int{1}), rule.ModeNo))
	common := rule.New(1, rhs(t, []int{core.NoLabel}), rule.ModeNo)
	common.Frequency = 9
	gr.Add(common)
	gr.Add(rule.New(1, rhs(t, []int{core.NoLabel, core.NoLabel}, [2]int{0, 1}), rule.ModeNo))

	small := 0
	for seed := int64(1); seed <= 200; seed++ {
		out, err := generate.Generate(gr, generate.WithSeed(seed), generate.WithLogger(quietLogger()))
		require.NoError(t, err)
		if out.Order() == 1 {
			small++
		}
	}
	assert.Greater(t, small, 140)
	assert.Less(t, small, 200)
}

func TestGenerate_Errors(t *testing.T) {
	_, err := generate.Generate(nil)
	assert.ErrorIs(t, err, generate.ErrNoStartRule)
	_, err = generate.Generate(grammar.New(rule.ModeNo, 2, grammar.SelectRandom, "", ""))
	assert.ErrorIs(t, err, generate.ErrNoStartRule)

	orphan := grammar.New(rule.ModeNo, 2, grammar.SelectRandom, "", "")
	orphan.Add(rule.New(0, rhs(t, []int{3, core.NoLabel}, [2]int{0, 1}), rule.ModeNo))
	_, err = generate.Generate(orphan, generate.WithLogger(quietLogger()))
	assert.ErrorIs(t, err, generate.ErrNoMatchingRule)

	loop := grammar.New(rule.ModeNo, 2, grammar.SelectRandom, "", "")
	loop.Add(rule.New(0, rhs(t, []int{1}), rule.ModeNo))
	loop.Add(rule.New(1, rhs(t, []int{1, core.NoLabel}, [2]int{0, 1}), rule.ModeNo))
	_, err = generate.Generate(loop, generate.WithMaxSteps(20), generate.WithLogger(quietLogger()))
	assert.ErrorIs(t, err, generate.ErrStepLimit)

	assert.Panics(t, func() { generate.WithMaxSteps(0) })
	assert.Panics(t, func() { generate.WithRand(nil) })
	assert.Panics(t, func() { generate.WithLogger(nil) })
}
