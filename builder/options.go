// SPDX-License-Identifier: MIT
// Package: ventflow/builder
//
// options.go — functional options and resolved configuration.
//
// Contract (strict):
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/ventflow/core"
)

// defaultSeed keeps unseeded builds reproducible.
const defaultSeed = 1

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// builderConfig is the resolved configuration handed to every Constructor.
type builderConfig struct {
	rng    *rand.Rand
	idFn   func(int) core.NodeID
	rateFn RateFn
	costFn func(*rand.Rand) int64
}

// newBuilderConfig applies opts over the defaults: identity IDs, zero rates,
// unit costs and a fixed-seed RNG.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:    rand.New(rand.NewSource(defaultSeed)),
		idFn:   func(i int) core.NodeID { return core.NodeID(i) },
		rateFn: ConstantRate(0),
		costFn: func(*rand.Rand) int64 { return 1 },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the deterministic node ID generator: idx -> NodeID.
// Panics on nil.
func WithIDScheme(fn func(int) core.NodeID) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRateFn overrides the per-node rate generator. Panics on nil.
func WithRateFn(fn RateFn) BuilderOption {
	if fn == nil {
		panic("builder: WithRateFn(nil)")
	}
	return func(c *builderConfig) { c.rateFn = fn }
}

// WithRates assigns rates by index; indices beyond the slice get 0.
func WithRates(rates ...int64) BuilderOption {
	return WithRateFn(func(_ *rand.Rand, i int) int64 {
		if i < len(rates) {
			return rates[i]
		}
		return 0
	})
}

// WithCostFn overrides the per-edge cost generator. Panics on nil.
// Costs must be positive; core rejects anything else with ErrBadCost.
func WithCostFn(fn func(*rand.Rand) int64) BuilderOption {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}
	return func(c *builderConfig) { c.costFn = fn }
}
