// SPDX-License-Identifier: MIT
// Package: vrg/builder
//
// impl_star.go - implementation of Star(n) and Wheel(n) constructors.
//
// Contract:
//   - Star: n >= 2; hub is index 0, spokes (0, i) for i = 1..n-1.
//   - Wheel: n >= 4; the star's spokes, then the rim cycle over 1..n-1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vrg/core"
)

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4
)

// Star returns a Constructor that builds a star with n vertices.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		return spokes(g, cfg, methodStar, n)
	}
}

// Wheel returns a Constructor that builds the wheel W_n: a hub joined to
// every vertex of a cycle of n-1 vertices.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := spokes(g, cfg, methodWheel, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			next := i + 1
			if next == n {
				next = 1
			}
			if err := addEdge(g, cfg, methodWheel, i, next); err != nil {
				return err
			}
		}

		return nil
	}
}

func spokes(g *core.Graph, cfg builderConfig, method string, n int) error {
	if err := addVertices(g, cfg, method, n); err != nil {
		return err
	}
	for i := 1; i < n; i++ {
		if err := addEdge(g, cfg, method, 0, i); err != nil {
			return err
		}
	}

	return nil
}
