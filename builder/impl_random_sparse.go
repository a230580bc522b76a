// SPDX-License-Identifier: MIT
// Package: ventflow/builder
//
// impl_random_sparse.go - seeded random networks.
//
// RandomSparse samples each unordered pair {i<j} once with probability p
// (Erdős–Rényi G(n,p)); the result may be disconnected. RandomConnected first
// lays a random spanning tree (each i>0 attaches to a uniform earlier index)
// and then adds the same G(n,p) extras, so every node is reachable from index 0.
//
// Determinism: all draws come from cfg.rng in a fixed loop order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ventflow/core"
)

const minRandomNodes = 1

// RandomSparse returns a Constructor for G(n, p).
//
// Errors: ErrTooFewVertices if n < 1; ErrInvalidProbability if p ∉ [0,1].
// Complexity: O(n²) pair trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("RandomSparse: n=%d < min=%d: %w", n, minRandomNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%.6f: %w", p, ErrInvalidProbability)
		}
		if err := addNodes(g, cfg, "RandomSparse", n); err != nil {
			return err
		}

		return sprinkle(g, cfg, "RandomSparse", n, p)
	}
}

// RandomConnected returns a Constructor for a random spanning tree plus G(n, p) extras.
//
// Errors: ErrTooFewVertices if n < 1; ErrInvalidProbability if p ∉ [0,1].
func RandomConnected(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("RandomConnected: n=%d < min=%d: %w", n, minRandomNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomConnected: p=%.6f: %w", p, ErrInvalidProbability)
		}
		if err := addNodes(g, cfg, "RandomConnected", n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := link(g, cfg, "RandomConnected", cfg.rng.Intn(i), i); err != nil {
				return err
			}
		}

		return sprinkle(g, cfg, "RandomConnected", n, p)
	}
}

// sprinkle adds each pair {i<j} with probability p. Existing edges keep the
// cheaper cost, as core.AddEdge does.
func sprinkle(g *core.Graph, cfg builderConfig, method string, n int, p float64) error {
	if p == 0 {
		return nil
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cfg.rng.Float64() >= p {
				continue
			}
			if err := link(g, cfg, method, i, j); err != nil {
				return err
			}
		}
	}

	return nil
}
