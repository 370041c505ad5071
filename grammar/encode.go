package grammar

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/vrg/core"
	"github.com/katalvlaran/vrg/rule"
)

// document is the YAML form of a Grammar.
type document struct {
	ID         string         `yaml:"id"`
	Name       string         `yaml:"name,omitempty"`
	Clustering string         `yaml:"clustering,omitempty"`
	Mode       string         `yaml:"mode"`
	Lambda     int            `yaml:"lambda"`
	Selection  Selection      `yaml:"selection"`
	Rules      []ruleDocument `yaml:"rules"`
}

type ruleDocument struct {
	ID        int              `yaml:"id"`
	LHS       int              `yaml:"lhs"`
	Frequency int              `yaml:"frequency"`
	Vertices  []vertexDocument `yaml:"vertices"`
	Edges     [][]int          `yaml:"edges,flow"`
	Boundary  [][]int          `yaml:"boundary,flow,omitempty"`
}

type vertexDocument struct {
	Key            int  `yaml:"key"`
	Label          int  `yaml:"label"`
	BoundaryDegree int  `yaml:"boundary_degree,omitempty"`
	External       bool `yaml:"external,omitempty"`
}

// MarshalYAML encodes the selection by name.
func (s Selection) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML decodes a selection name.
func (s *Selection) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseSelection(name)
	if err != nil {
		return err
	}
	*s = parsed

	return nil
}

// MarshalYAML encodes the grammar as a document with one edge list per rule.
func (g *Grammar) MarshalYAML() (interface{}, error) {
	doc := document{
		ID:         g.ID.String(),
		Name:       g.Name,
		Clustering: g.Clustering,
		Mode:       g.Mode.String(),
		Lambda:     g.Lambda,
		Selection:  g.Selection,
		Rules:      make([]ruleDocument, 0, len(g.Rules)),
	}
	for _, r := range g.Rules {
		rd := ruleDocument{ID: r.ID, LHS: r.LHS, Frequency: r.Frequency, Edges: [][]int{}}
		for _, v := range r.Graph.VertexList() {
			rd.Vertices = append(rd.Vertices, vertexDocument{
				Key:            v.Key,
				Label:          v.Label,
				BoundaryDegree: v.BoundaryDegree,
				External:       v.External,
			})
		}
		for _, e := range r.Graph.Edges() {
			if e.Boundary {
				rd.Boundary = append(rd.Boundary, []int{e.From, e.To})
				continue
			}
			rd.Edges = append(rd.Edges, []int{e.From, e.To})
		}
		doc.Rules = append(doc.Rules, rd)
	}

	return doc, nil
}

// UnmarshalYAML decodes a document produced by MarshalYAML.
func (g *Grammar) UnmarshalYAML(value *yaml.Node) error {
	var doc document
	if err := value.Decode(&doc); err != nil {
		return err
	}
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return fmt.Errorf("%w: id: %v", ErrDecode, err)
	}
	mode, err := rule.ParseMode(doc.Mode)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}

	out := Grammar{
		ID:         id,
		Name:       doc.Name,
		Clustering: doc.Clustering,
		Mode:       mode,
		Lambda:     doc.Lambda,
		Selection:  doc.Selection,
	}
	for i, rd := range doc.Rules {
		rhs := core.NewMultiGraph()
		for _, v := range rd.Vertices {
			opts := []core.VertexOption{core.WithLabel(v.Label), core.WithBoundaryDegree(v.BoundaryDegree)}
			if v.External {
				opts = append(opts, core.AsExternal())
			}
			if err = rhs.AddVertex(v.Key, opts...); err != nil {
				return fmt.Errorf("%w: rule %d: %v", ErrDecode, i, err)
			}
		}
		if err = addEdges(rhs, rd.Edges); err != nil {
			return fmt.Errorf("%w: rule %d: %v", ErrDecode, i, err)
		}
		if err = addEdges(rhs, rd.Boundary, core.AsBoundary()); err != nil {
			return fmt.Errorf("%w: rule %d: %v", ErrDecode, i, err)
		}
		r := rule.New(rd.LHS, rhs, mode)
		r.ID = rd.ID
		r.Frequency = rd.Frequency
		out.Rules = append(out.Rules, r)
	}
	*g = out

	return nil
}

func addEdges(g *core.Graph, pairs [][]int, opts ...core.EdgeOption) error {
	for _, p := range pairs {
		if len(p) != 2 {
			return fmt.Errorf("edge %v: want 2 endpoints", p)
		}
		if _, err := g.AddEdge(p[0], p[1], opts...); err != nil {
			return err
		}
	}

	return nil
}

// Encode writes g to w as YAML.
func Encode(w io.Writer, g *Grammar) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(g); err != nil {
		return err
	}

	return enc.Close()
}

// Decode reads one YAML grammar from r.
func Decode(r io.Reader) (*Grammar, error) {
	var g Grammar
	if err := yaml.NewDecoder(r).Decode(&g); err != nil {
		return nil, err
	}

	return &g, nil
}
