// SPDX-License-Identifier: MIT
// Package: ventflow/builder
//
// errors.go - sentinel errors. Constructors wrap them with method context
// ("Path: n=1 < min=2: ...") and callers test with errors.Is.

package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter below the topology minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrInvalidProbability indicates a probability outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability must be in [0,1]")

	// ErrConstructFailed indicates a structural failure (nil constructor, nil graph).
	ErrConstructFailed = errors.New("builder: construction failed")
)
