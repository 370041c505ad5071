// SPDX-License-Identifier: MIT
// Package: vrg/builder
//
// api.go - the BuildGraph orchestrator and the Constructor type.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vrg/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts (a
// multigraph when gopts is empty), resolves the builder configuration from
// bopts, and applies all constructors in order.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor error, wrapped as "BuildGraph: %w".
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	var g *core.Graph
	if len(gopts) == 0 {
		g = core.NewMultiGraph()
	} else {
		g = core.NewGraph(gopts...)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Offset runs c with every key shifted by offset on top of the configured
// offset, so that constructors can lay out disjoint components.
func Offset(offset int, c Constructor) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if c == nil {
			return fmt.Errorf("Offset: nil constructor: %w", ErrConstructFailed)
		}
		if offset < 0 {
			return fmt.Errorf("Offset: offset=%d < 0: %w", offset, ErrTooFewVertices)
		}
		cfg.keyOffset += offset

		return c(g, cfg)
	}
}

// addVertices inserts keys cfg.key(0..n-1) in ascending order.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		if err := g.AddVertex(cfg.key(i)); err != nil {
			return fmt.Errorf("%s: AddVertex(%d): %w", method, cfg.key(i), err)
		}
	}

	return nil
}

// addEdge inserts the edge between indices i and j.
func addEdge(g *core.Graph, cfg builderConfig, method string, i, j int) error {
	u, v := cfg.key(i), cfg.key(j)
	if _, err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d, %d): %w", method, u, v, err)
	}

	return nil
}
