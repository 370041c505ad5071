package generate

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/vrg/core"
	"github.com/katalvlaran/vrg/grammar"
	"github.com/katalvlaran/vrg/rule"
)

const methodGenerate = "Generate"

type generator struct {
	gr   *grammar.Grammar
	opts options
	out  *core.Graph
	next int
}

// Generate replays gr into a fresh multigraph whose vertices are keyed
// 0..n-1 in creation order. The grammar is not modified.
func Generate(gr *grammar.Grammar, opts ...Option) (*core.Graph, error) {
	if gr == nil || gr.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", methodGenerate, ErrNoStartRule)
	}
	o := newOptions(opts...)
	gen := &generator{gr: gr, opts: o, out: core.NewMultiGraph()}

	start := startRule(gr)
	if err := gen.instantiate(start, nil); err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	steps := 0
	for {
		key, label, ok := gen.nextNonterminal()
		if !ok {
			break
		}
		if steps == o.maxSteps {
			return nil, fmt.Errorf("%s: after %d steps: %w", methodGenerate, steps, ErrStepLimit)
		}
		steps++

		r, err := gen.pick(label)
		if err != nil {
			return nil, fmt.Errorf("%s: vertex %d: %w", methodGenerate, key, err)
		}
		broken, err := gen.detach(key)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodGenerate, err)
		}
		if err = gen.instantiate(r, broken); err != nil {
			return nil, fmt.Errorf("%s: %w", methodGenerate, err)
		}
		o.log.WithFields(logrus.Fields{
			"vertex": key,
			"rule":   r.ID,
			"edges":  len(broken),
		}).Debug("nonterminal replaced")
	}

	out := compact(gen.out)
	o.log.WithFields(logrus.Fields{
		"steps":    steps,
		"vertices": out.Order(),
		"edges":    out.Size(),
	}).Info("graph generated")

	return out, nil
}

// startRule returns the last rule with LHS 0, or the last rule.
func startRule(gr *grammar.Grammar) *rule.Rule {
	for i := len(gr.Rules) - 1; i >= 0; i-- {
		if gr.Rules[i].LHS == 0 {
			return gr.Rules[i]
		}
	}

	return gr.Rules[len(gr.Rules)-1]
}

func (gen *generator) nextNonterminal() (key, label int, ok bool) {
	for _, v := range gen.out.VertexList() {
		if v.IsNonterminal() {
			return v.Key, v.Label, true
		}
	}

	return 0, 0, false
}

// pick draws a rule with LHS lhs, weighted by frequency.
func (gen *generator) pick(lhs int) (*rule.Rule, error) {
	cands := gen.gr.ByLHS(lhs)
	if len(cands) == 0 {
		return nil, fmt.Errorf("label %d: %w", lhs, ErrNoMatchingRule)
	}
	total := 0
	for _, r := range cands {
		total += weight(r)
	}
	x := gen.opts.rng.Intn(total)
	for _, r := range cands {
		if x -= weight(r); x < 0 {
			return r, nil
		}
	}

	return cands[len(cands)-1], nil
}

func weight(r *rule.Rule) int {
	if r.Frequency < 1 {
		return 1
	}

	return r.Frequency
}

// detach removes key from the output and returns the far endpoints of its
// non-loop edges, one entry per edge.
func (gen *generator) detach(key int) ([]int, error) {
	edges, err := gen.out.Neighbors(key)
	if err != nil {
		return nil, err
	}
	var broken []int
	for _, e := range edges {
		if e.IsLoop() {
			continue
		}
		broken = append(broken, e.Other(key))
	}

	return broken, gen.out.RemoveVertex(key)
}

// instantiate copies the internal vertices and edges of r's RHS into the
// output under fresh keys and reattaches the broken edges.
func (gen *generator) instantiate(r *rule.Rule, broken []int) error {
	index := make(map[int]int)
	var inner []int
	for _, v := range r.Graph.VertexList() {
		if v.External {
			continue
		}
		k := gen.next
		gen.next++
		var opts []core.VertexOption
		if v.IsNonterminal() {
			opts = append(opts, core.WithLabel(v.Label))
		}
		if err := gen.out.AddVertex(k, opts...); err != nil {
			return err
		}
		index[v.Key] = k
		inner = append(inner, k)
	}

	// Boundary stubs (full) and boundary degrees (part) both name the RHS
	// vertices that carried the replaced vertex's edges.
	var slots []int
	for _, e := range r.Graph.Edges() {
		u, okU := index[e.From]
		v, okV := index[e.To]
		switch {
		case okU && okV:
			if _, err := gen.out.AddEdge(u, v); err != nil {
				return err
			}
		case okU:
			slots = append(slots, u)
		case okV:
			slots = append(slots, v)
		}
	}
	for _, v := range r.Graph.VertexList() {
		if v.External {
			continue
		}
		for i := 0; i < v.BoundaryDegree; i++ {
			slots = append(slots, index[v.Key])
		}
	}

	if len(inner) == 0 {
		return nil
	}
	rng := gen.opts.rng
	rng.Shuffle(len(slots), func(i, j int) { slots[i], slots[j] = slots[j], slots[i] })
	for i, nb := range broken {
		target := inner[rng.Intn(len(inner))]
		if i < len(slots) {
			target = slots[i]
		}
		if _, err := gen.out.AddEdge(target, nb); err != nil {
			return err
		}
	}

	return nil
}

// compact renumbers g's vertices to 0..n-1 in key order.
func compact(g *core.Graph) *core.Graph {
	out := core.NewMultiGraph()
	index := make(map[int]int)
	for i, v := range g.VertexList() {
		index[v.Key] = i
		_ = out.AddVertex(i, core.WithLabel(v.Label))
	}
	for _, e := range g.Edges() {
		_, _ = out.AddEdge(index[e.From], index[e.To])
	}

	return out
}
