// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on valve networks.
//
// Dijkstra computes the minimum-cost path from a single source node to all
// other reachable nodes. Edge costs in core.Graph are always positive, so the
// non-negativity precondition holds by construction.
//
// Complexity:
//
//	– Time:  O((V + E) log V)
//	– Space: O(V + E)
//
// Options:
//
//	– Source:      ID of the starting node (must be present in the graph).
//	– ReturnPath:  if true, return the predecessor map for path reconstruction.
//	– MaxDistance: optional cap on distances to explore; nodes beyond this stay at Infinity.
//
// Errors (sentinel):
//
//	– ErrNoSource       if no Source option was given.
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrNodeNotFound   if the source node does not exist in the graph.
//	– ErrBadMaxDistance if MaxDistance < 0.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/ventflow/core"
)

// Infinity is the distance reported for nodes that cannot be reached.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that the Source option was never applied.
	ErrNoSource = errors.New("dijkstra: source node not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates that the source node does not exist in the graph.
	ErrNodeNotFound = errors.New("dijkstra: source node not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting node ID; HasSource records whether it was set.
// ReturnPath  – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance – optional cap on distances to explore. Default Infinity (no cap).
type Options struct {
	Source      core.NodeID
	HasSource   bool
	ReturnPath  bool
	MaxDistance int64
	err         error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting node. Required.
func Source(id core.NodeID) Option {
	return func(o *Options) {
		o.Source = id
		o.HasSource = true
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed this value are not explored.
// Negative values surface as ErrBadMaxDistance from Dijkstra.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = ErrBadMaxDistance
			return
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options with no source, no predecessor map and no cap.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: Infinity,
	}
}
