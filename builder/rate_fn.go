// SPDX-License-Identifier: MIT
// Package: ventflow/builder
//
// rate_fn.go - reward rate generators.

package builder

import "math/rand"

// RateFn returns the rate of the node with construction index i.
// Generators draw from rng in index order, so outputs are reproducible.
type RateFn func(rng *rand.Rand, i int) int64

// ConstantRate gives every node the same rate.
func ConstantRate(r int64) RateFn {
	if r < 0 {
		panic("builder: ConstantRate(r<0)")
	}
	return func(*rand.Rand, int) int64 { return r }
}

// UniformRate draws rates uniformly from [lo, hi].
func UniformRate(lo, hi int64) RateFn {
	if lo < 0 || hi < lo {
		panic("builder: UniformRate requires 0 ≤ lo ≤ hi")
	}
	return func(rng *rand.Rand, _ int) int64 { return lo + rng.Int63n(hi-lo+1) }
}

// SparseRate leaves a node at rate 0 with probability zeroP and otherwise draws
// from [1, max]. Index 0 (the usual start node) is always 0, matching puzzle inputs.
func SparseRate(zeroP float64, max int64) RateFn {
	if zeroP < 0 || zeroP > 1 || max < 1 {
		panic("builder: SparseRate requires 0 ≤ zeroP ≤ 1 and max ≥ 1")
	}
	return func(rng *rand.Rand, i int) int64 {
		draw := rng.Float64()
		if i == 0 || draw < zeroP {
			return 0
		}
		return 1 + rng.Int63n(max)
	}
}
