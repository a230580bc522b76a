// SPDX-License-Identifier: MIT
// Package: ventflow/schedule
//
// types.go - sentinels, options and the public Result shape.

package schedule

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/ventflow/core"
)

// MaxNodes is the largest table the bitmask state can address.
const MaxNodes = 64

const (
	// DefaultBudget is the number of ticks when WithBudget is not given.
	DefaultBudget int64 = 30

	// DefaultMemoSize is the LRU capacity of the transposition table.
	DefaultMemoSize = 1 << 16

	// checkEvery is the expansion period (power of two) between ctx checks.
	checkEvery = 4096
)

// Sentinel errors.
var (
	ErrNilGraph       = errors.New("schedule: graph is nil")
	ErrNilTable       = errors.New("schedule: distance table is nil")
	ErrNoStart        = errors.New("schedule: start node not set")
	ErrStartNotFound  = errors.New("schedule: start node not in distance table")
	ErrNegativeBudget = errors.New("schedule: budget must be non-negative")
	ErrTooManyNodes   = errors.New("schedule: too many nodes for bitmask state")
	ErrBadWorkers     = errors.New("schedule: workers must be at least 1")
	ErrBadMemo        = errors.New("schedule: memo size must be non-negative")
	ErrUnknownBound   = errors.New("schedule: unknown bound")
)

// Bound selects the pruning policy of the search.
type Bound int

const (
	// NoBound explores every feasible schedule (reference search).
	NoBound Bound = iota

	// OptimisticBound prunes a branch when Score + Σ rate_k·(t−2k+1)⁺ over the
	// remaining candidates (rates descending) cannot beat the incumbent.
	OptimisticBound
)

// String returns the bound name used by the CLI.
func (b Bound) String() string {
	switch b {
	case NoBound:
		return "none"
	case OptimisticBound:
		return "optimistic"
	default:
		return fmt.Sprintf("Bound(%d)", int(b))
	}
}

// ParseBound maps a name back to a Bound.
func ParseBound(s string) (Bound, error) {
	switch s {
	case "none", "exhaustive":
		return NoBound, nil
	case "optimistic", "":
		return OptimisticBound, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownBound, s)
	}
}

// Options configures Solve.
type Options struct {
	Start    core.NodeID
	HasStart bool
	Budget   int64
	Bound    Bound
	Workers  int
	MemoSize int
	Logger   *zap.Logger
	err      error
}

// Option is a functional option for Solve.
type Option func(*Options)

// DefaultOptions returns budget 30, the optimistic bound, one worker, the
// default memo size and a no-op logger. The start node has no default.
func DefaultOptions() Options {
	return Options{
		Budget:   DefaultBudget,
		Bound:    OptimisticBound,
		Workers:  1,
		MemoSize: DefaultMemoSize,
		Logger:   zap.NewNop(),
	}
}

// WithStart sets the node the agent starts on. Required.
func WithStart(id core.NodeID) Option {
	return func(o *Options) {
		o.Start = id
		o.HasStart = true
	}
}

// WithBudget sets the number of ticks available.
func WithBudget(t int64) Option {
	return func(o *Options) {
		if t < 0 {
			o.err = fmt.Errorf("%w: %d", ErrNegativeBudget, t)
			return
		}
		o.Budget = t
	}
}

// WithBound selects the pruning policy.
func WithBound(b Bound) Option {
	return func(o *Options) {
		if b != NoBound && b != OptimisticBound {
			o.err = fmt.Errorf("%w: %s", ErrUnknownBound, b)
			return
		}
		o.Bound = b
	}
}

// WithWorkers splits the first-level choices across n goroutines.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: %d", ErrBadWorkers, n)
			return
		}
		o.Workers = n
	}
}

// WithMemo sets the transposition table capacity; 0 disables it.
func WithMemo(size int) Option {
	return func(o *Options) {
		if size < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadMemo, size)
			return
		}
		o.MemoSize = size
	}
}

// WithLogger attaches a zap logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Activation is one opened valve of the best schedule.
type Activation struct {
	Node      core.NodeID
	Minute    int64 // elapsed ticks when the valve starts releasing
	Remaining int64 // ticks left after opening
	Flow      int64 // total flow after opening
}

// Stats counts search work.
type Stats struct {
	Expanded int64
	Pruned   int64
	MemoHits int64
}

func (s *Stats) add(o Stats) {
	s.Expanded += o.Expanded
	s.Pruned += o.Pruned
	s.MemoHits += o.MemoHits
}

// Result is the outcome of Solve.
type Result struct {
	Score  int64
	Budget int64
	Start  core.NodeID
	Plan   []Activation
	Stats  Stats
}

// BestScore returns the total pressure released by the best schedule.
func (r *Result) BestScore() int64 { return r.Score }
