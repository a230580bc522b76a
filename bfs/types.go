// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/ventflow/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNotFound is returned when the start ID is absent.
	ErrStartNotFound = errors.New("bfs: start node not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: nodes visited, in visit sequence.
//   - Depth: map from node ID to its distance (in hops) from the start.
type Result struct {
	Order []core.NodeID
	Depth map[core.NodeID]int
}

// Reached reports whether id was discovered by the traversal.
func (r *Result) Reached(id core.NodeID) bool {
	_, ok := r.Depth[id]

	return ok
}
