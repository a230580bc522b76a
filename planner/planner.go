// Package planner runs the whole pipeline on a raw valve network:
// reachability pruning, compression, the distance table and the search.
package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/ventflow/bfs"
	"github.com/katalvlaran/ventflow/compress"
	"github.com/katalvlaran/ventflow/core"
	"github.com/katalvlaran/ventflow/distance"
	"github.com/katalvlaran/ventflow/schedule"
)

// Sentinel errors.
var (
	ErrNilGraph       = errors.New("planner: graph is nil")
	ErrNoStart        = errors.New("planner: start node not set")
	ErrStartNotFound  = errors.New("planner: start node not in graph")
	ErrDisconnected   = errors.New("planner: nodes unreachable from start")
	ErrInvalidNetwork = errors.New("planner: invalid network")
)

// Recorder receives every successful Report.
type Recorder interface {
	Observe(Report)
}

// Report is the outcome of Run.
type Report struct {
	Start       core.NodeID
	Budget      int64
	Score       int64
	Plan        []schedule.Activation
	Raw         *core.Graph
	Compressed  *core.Graph
	Table       *distance.Table
	Unreachable []core.NodeID
	Stats       schedule.Stats
	Elapsed     time.Duration
}

// Options configures Run.
type Options struct {
	Start            core.NodeID
	HasStart         bool
	RequireConnected bool
	Method           distance.Method
	Logger           *zap.Logger
	Recorder         Recorder
	solve            []schedule.Option
}

// Option is a functional option for Run.
type Option func(*Options)

// WithStart sets the start node. Required.
func WithStart(id core.NodeID) Option {
	return func(o *Options) {
		o.Start, o.HasStart = id, true
	}
}

// WithBudget sets the tick budget (see schedule.WithBudget).
func WithBudget(t int64) Option {
	return func(o *Options) { o.solve = append(o.solve, schedule.WithBudget(t)) }
}

// WithBound selects the search bound (see schedule.WithBound).
func WithBound(b schedule.Bound) Option {
	return func(o *Options) { o.solve = append(o.solve, schedule.WithBound(b)) }
}

// WithWorkers sets the search parallelism (see schedule.WithWorkers).
func WithWorkers(n int) Option {
	return func(o *Options) { o.solve = append(o.solve, schedule.WithWorkers(n)) }
}

// WithMemo sets the transposition table size (see schedule.WithMemo).
func WithMemo(size int) Option {
	return func(o *Options) { o.solve = append(o.solve, schedule.WithMemo(size)) }
}

// WithRequireConnected fails the run when any node is unreachable from start.
// Without it such nodes are dropped before compression.
func WithRequireConnected() Option {
	return func(o *Options) { o.RequireConnected = true }
}

// WithMethod selects how the distance table is computed.
func WithMethod(m distance.Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithLogger sets the logger passed down to every stage.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRecorder registers r to observe the final report.
func WithRecorder(r Recorder) Option {
	return func(o *Options) { o.Recorder = r }
}

// Run plans the best opening schedule for the raw network g.
//
// Implementation:
//   - Stage 1: Validate g and the start node.
//   - Stage 2: BFS from start; unreachable nodes are removed or rejected.
//   - Stage 3: Compress, build the distance table, solve.
//
// g is never modified.
func Run(ctx context.Context, g *core.Graph, opts ...Option) (*Report, error) {
	began := time.Now()
	cfg := Options{Method: distance.Dijkstra, Logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Validation.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !cfg.HasStart {
		return nil, ErrNoStart
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidNetwork, err)
	}
	if !g.HasNode(cfg.Start) {
		return nil, fmt.Errorf("%w: %s", ErrStartNotFound, cfg.Start)
	}

	// 2) Reachability.
	reach, err := bfs.BFS(g, cfg.Start, bfs.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("planner: reachability: %w", err)
	}
	unreachable := bfs.Unreached(g, reach)
	work := g
	if len(unreachable) > 0 {
		if cfg.RequireConnected {
			return nil, fmt.Errorf("%w: %d node(s), first %s", ErrDisconnected, len(unreachable), unreachable[0])
		}
		work = g.Clone()
		for _, id := range unreachable {
			if err = work.RemoveNode(id); err != nil {
				return nil, fmt.Errorf("planner: prune %s: %w", id, err)
			}
		}
		cfg.Logger.Warn("pruned unreachable nodes",
			zap.Int("count", len(unreachable)),
			zap.Stringers("nodes", unreachable),
		)
	}

	// 3) Pipeline.
	cg, err := compress.Compress(work, cfg.Start, compress.WithLogger(cfg.Logger))
	if err != nil {
		return nil, fmt.Errorf("planner: compress: %w", err)
	}
	dopts := []distance.Option{distance.WithMethod(cfg.Method)}
	if cfg.RequireConnected {
		dopts = append(dopts, distance.WithRequireConnected())
	}
	tbl, err := distance.Build(cg, dopts...)
	if err != nil {
		return nil, fmt.Errorf("planner: distances: %w", err)
	}
	sopts := append([]schedule.Option{schedule.WithStart(cfg.Start), schedule.WithLogger(cfg.Logger)}, cfg.solve...)
	res, err := schedule.Solve(ctx, cg, tbl, sopts...)
	if err != nil {
		return nil, fmt.Errorf("planner: solve: %w", err)
	}

	rep := &Report{
		Start:       cfg.Start,
		Budget:      res.Budget,
		Score:       res.Score,
		Plan:        res.Plan,
		Raw:         g,
		Compressed:  cg,
		Table:       tbl,
		Unreachable: unreachable,
		Stats:       res.Stats,
		Elapsed:     time.Since(began),
	}
	cfg.Logger.Debug("plan ready",
		zap.Int("raw_nodes", g.NodeCount()),
		zap.Int("compressed_nodes", cg.NodeCount()),
		zap.Int64("score", rep.Score),
		zap.Duration("elapsed", rep.Elapsed),
	)
	if cfg.Recorder != nil {
		cfg.Recorder.Observe(*rep)
	}

	return rep, nil
}
