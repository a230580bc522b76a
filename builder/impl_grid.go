// SPDX-License-Identifier: MIT
// Package: ventflow/builder
//
// impl_grid.go - rectangular 4-neighbour lattice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ventflow/core"
)

// Grid returns a Constructor for a rows×cols lattice. Index r*cols+c is the
// cell at row r, column c; each cell links to its right and lower neighbour.
//
// Errors: ErrTooFewVertices if rows < 1, cols < 1 or rows*cols < 2.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < 1 || cols < 1 || rows*cols < 2 {
			return fmt.Errorf("Grid: %dx%d: %w", rows, cols, ErrTooFewVertices)
		}
		if err := addNodes(g, cfg, "Grid", rows*cols); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				i := r*cols + c
				if c+1 < cols {
					if err := link(g, cfg, "Grid", i, i+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, cfg, "Grid", i, i+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
