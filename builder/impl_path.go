// SPDX-License-Identifier: MIT
// Package: vrg/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n >= 2 (else ErrTooFewVertices).
//   - Emits edges (i-1, i) for i = 1..n-1 in increasing order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vrg/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodPath, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}
