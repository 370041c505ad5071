package extract_test

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/vrg/core"
	"github.com/katalvlaran/vrg/dendrogram"
	"github.com/katalvlaran/vrg/extract"
	"github.com/katalvlaran/vrg/grammar"
	"github.com/katalvlaran/vrg/rule"
)

// ExampleExtract extracts a grammar from the path 0-1-2-3-4 clustered as
// ((0 1) (2 3) 4).
func ExampleExtract() {
	g := core.NewMultiGraph()
	for i := 0; i < 4; i++ {
		_, _ = g.AddEdge(i, i+1)
	}
	tree, _ := dendrogram.Parse("((0 1) (2 3) 4)")

	log := logrus.New()
	log.SetOutput(io.Discard)

	gr, err := extract.Extract(g, tree,
		extract.WithLambda(2),
		extract.WithMode(rule.ModeNo),
		extract.WithSelection(grammar.SelectLevel),
		extract.WithLogger(log),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, r := range gr.Rules {
		fmt.Println(r)
	}
	fmt.Println(g.Vertices())
	// Output:
	// rule 0: 1 -> (n=2, m=1) x1 [no]
	// rule 1: 2 -> (n=2, m=1) x1 [no]
	// rule 2: 0 -> (n=3, m=2) x1 [no]
	// [0]
}
