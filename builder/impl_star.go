// SPDX-License-Identifier: MIT
// Package: ventflow/builder
//
// impl_star.go - hub-and-spokes topology.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ventflow/core"
)

const minStarNodes = 2

// Star returns a Constructor connecting hub index 0 to every other index.
// Leaves are dead ends, so compression keeps only the hub and positive-rate leaves.
//
// Errors: ErrTooFewVertices if n < 2.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
		}
		if err := addNodes(g, cfg, "Star", n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := link(g, cfg, "Star", 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
