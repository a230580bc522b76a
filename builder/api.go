// SPDX-License-Identifier: MIT
// Package: ventflow/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - Constructors are closures over their parameters; BuildGraph supplies (g, cfg).
//   - Node IDs come from cfg.idFn(i) for i = 0..n-1, emitted in ascending i.
//   - Node rates come from cfg.rateFn(cfg.rng, i), drawn in the same order.
//   - Edges cost cfg.costFn(cfg.rng); the default is 1 (raw puzzle tunnels).
//   - Deterministic for a fixed seed and option set; never panics at runtime.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ventflow/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
//
// Complexity: sum of the constructors' costs.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
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

// addNodes inserts n nodes with IDs cfg.idFn(0..n-1) and rates from cfg.rateFn.
func addNodes(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		rate := cfg.rateFn(cfg.rng, i)
		if err := g.AddNode(id, rate); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w", method, id, err)
		}
	}

	return nil
}

// link adds the edge between indices u and v using cfg.costFn.
func link(g *core.Graph, cfg builderConfig, method string, u, v int) error {
	a, b := cfg.idFn(u), cfg.idFn(v)
	c := cfg.costFn(cfg.rng)
	if _, err := g.AddEdge(a, b, c); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s, c=%d): %w", method, a, b, c, err)
	}

	return nil
}
