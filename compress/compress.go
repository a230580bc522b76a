// Package compress folds reward-less nodes out of a valve network while
// preserving the shortest-path cost between every node that survives.
//
// Algorithm (vertex elimination):
//
//	while some node x has Rate == 0 and x is neither the start nor kept:
//	    for each pair {u, v} of x's neighbors (u ≠ v):
//	        add edge u—v with cost c(u,x) + c(x,v), keeping the cheaper edge if one exists
//	    remove x and its incident edges
//
// A degree-1 or isolated node is simply removed. Because core.Graph rejects
// self-loops and stores one edge per pair, neighbor pairs can never
// produce degenerate self-edges or duplicate entries.
//
// Complexity:
//   - Time:  O(Σ deg(x)²) over eliminated nodes.
//   - Space: O(V + E) for the working clone.
package compress

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/ventflow/core"
)

// Sentinel errors returned by Compress.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("compress: graph is nil")

	// ErrStartNotFound indicates the start node is absent from the graph.
	ErrStartNotFound = errors.New("compress: start node not found")
)

// Options configures compression.
type Options struct {
	// Keep lists extra nodes that must survive even with Rate == 0.
	Keep map[core.NodeID]struct{}

	// Logger receives a debug line per run. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Option is a functional option for Compress.
type Option func(*Options)

// WithKeep protects ids from elimination.
func WithKeep(ids ...core.NodeID) Option {
	return func(o *Options) {
		for _, id := range ids {
			o.Keep[id] = struct{}{}
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns options with no extra kept nodes and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Keep:   make(map[core.NodeID]struct{}),
		Logger: zap.NewNop(),
	}
}

// Compress returns a new graph containing only start, the kept nodes and
// nodes with a positive rate. g itself is left untouched.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain start (ErrStartNotFound).
//  3. g must pass core.Graph.Validate.
func Compress(g *core.Graph, start core.NodeID, opts ...Option) (*core.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %s", ErrStartNotFound, start)
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}

	out, err := weightedCopy(g)
	if err != nil {
		return nil, err
	}
	removable := eligible(out, start, cfg.Keep)
	for _, x := range removable {
		if err := eliminate(out, x); err != nil {
			return nil, err
		}
	}

	cfg.Logger.Debug("graph compressed",
		zap.Int("nodes_before", g.NodeCount()),
		zap.Int("edges_before", g.EdgeCount()),
		zap.Int("nodes_after", out.NodeCount()),
		zap.Int("edges_after", out.EdgeCount()),
		zap.Int("eliminated", len(removable)),
	)

	return out, nil
}

// Removable lists the nodes Compress would eliminate from g, ascending.
// An empty result means g is already compressed with respect to start.
func Removable(g *core.Graph, start core.NodeID, opts ...Option) []core.NodeID {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return eligible(g, start, cfg.Keep)
}

// eligible returns every zero-rate node other than start and the kept set,
// in ascending ID order so elimination is deterministic.
func eligible(g *core.Graph, start core.NodeID, keep map[core.NodeID]struct{}) []core.NodeID {
	var out []core.NodeID
	for _, id := range g.Nodes() {
		if id == start || g.Rate(id) != 0 {
			continue
		}
		if _, ok := keep[id]; ok {
			continue
		}
		out = append(out, id)
	}

	return out
}

// weightedCopy copies g into a graph without the unit-cost restriction, since
// bypass edges carry summed costs.
func weightedCopy(g *core.Graph) (*core.Graph, error) {
	out := core.NewGraph()
	for _, id := range g.Nodes() {
		if err := out.AddNode(id, g.Rate(id)); err != nil {
			return nil, fmt.Errorf("compress: copy %s: %w", id, err)
		}
	}
	for _, e := range g.Edges() {
		if _, err := out.AddEdge(e.A, e.B, e.Cost); err != nil {
			return nil, fmt.Errorf("compress: copy %s: %w", e.Key(), err)
		}
	}

	return out, nil
}

// eliminate folds x out of g: every neighbor pair gets a bypass edge whose
// cost is the sum of the two edges through x, then x is removed.
func eliminate(g *core.Graph, x core.NodeID) error {
	nbs, err := g.Neighbors(x)
	if err != nil {
		return fmt.Errorf("compress: eliminate %s: %w", x, err)
	}
	costs := make([]int64, len(nbs))
	for i, nb := range nbs {
		costs[i], _ = g.Cost(x, nb)
	}

	var i, j int
	for i = 0; i < len(nbs); i++ {
		for j = i + 1; j < len(nbs); j++ {
			if _, err = g.AddEdge(nbs[i], nbs[j], costs[i]+costs[j]); err != nil {
				return fmt.Errorf("compress: bypass %s-%s via %s: %w", nbs[i], nbs[j], x, err)
			}
		}
	}

	if err = g.RemoveNode(x); err != nil {
		return fmt.Errorf("compress: remove %s: %w", x, err)
	}

	return nil
}
