// SPDX-License-Identifier: MIT
// Package: ventflow/builder
//
// impl_path.go - chains: Path and Cycle.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ventflow/core"
)

const (
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor for the chain 0-1-...-(n-1).
//
// Errors: ErrTooFewVertices if n < 2.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
		}
		if err := addNodes(g, cfg, "Path", n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := link(g, cfg, "Path", i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor for the ring 0-1-...-(n-1)-0.
//
// Errors: ErrTooFewVertices if n < 3.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addNodes(g, cfg, "Cycle", n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := link(g, cfg, "Cycle", i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
