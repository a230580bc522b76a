// SPDX-License-Identifier: MIT
// Package: ventflow/schedule

package schedule

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ventflow/core"
	"github.com/katalvlaran/ventflow/distance"
)

// Solve finds the opening order that releases the most pressure within the
// budget, starting at the WithStart node of the compressed graph g with
// shortest-path costs from table.
//
// Implementation:
//   - Stage 1: Validate options and inputs; prefetch distances and rates.
//   - Stage 2: Search from the root state, sequentially or with the first-level
//     choices split across WithWorkers goroutines.
//   - Stage 3: Rebuild the plan from the best state's trail.
//
// Errors:
//   - ErrNilGraph, ErrNilTable, ErrNoStart, ErrStartNotFound, ErrTooManyNodes.
//   - Option errors: ErrNegativeBudget, ErrBadWorkers, ErrBadMemo, ErrUnknownBound.
//   - ctx.Err() when cancelled during the search.
func Solve(ctx context.Context, g *core.Graph, table *distance.Table, opts ...Option) (*Result, error) {
	// 1) Options and inputs.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if table == nil {
		return nil, ErrNilTable
	}
	if !cfg.HasStart {
		return nil, ErrNoStart
	}
	start, ok := table.Index(cfg.Start)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStartNotFound, cfg.Start)
	}
	if table.Len() > MaxNodes {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyNodes, table.Len(), MaxNodes)
	}

	p, err := prefetch(g, table, cfg)
	if err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	// 2) Search.
	root := GameState{node: start, remaining: cfg.Budget}
	var (
		best  GameState
		stats Stats
	)
	if cfg.Workers > 1 {
		best, stats, err = p.searchParallel(ctx, root, cfg.Workers)
	} else {
		var incumbent atomic.Int64
		e := newEngine(ctx, p, &incumbent)
		best, _, err = e.walk(root)
		stats = e.stats
	}
	if err != nil {
		return nil, err
	}

	// 3) Extraction.
	res := extract(table, best, cfg)
	res.Stats = stats
	cfg.Logger.Debug("schedule solved",
		zap.Stringer("start", cfg.Start),
		zap.Int64("budget", cfg.Budget),
		zap.Int64("score", res.Score),
		zap.Int("opened", len(res.Plan)),
		zap.Int64("expanded", stats.Expanded),
		zap.Int64("pruned", stats.Pruned),
		zap.Int64("memo_hits", stats.MemoHits),
	)

	return res, nil
}

// prefetch copies the table and rates into dense buffers.
func prefetch(g *core.Graph, table *distance.Table, cfg Options) (*problem, error) {
	n := table.Len()
	p := &problem{
		n:        n,
		useBound: cfg.Bound == OptimisticBound,
		dist:     make([]int64, n*n),
		rate:     make([]int64, n),
	}
	for i := 0; i < n; i++ {
		p.rate[i] = g.Rate(table.ID(i))
		if p.rate[i] > 0 {
			p.byRate = append(p.byRate, i)
		}
		for j := 0; j < n; j++ {
			p.dist[i*n+j] = table.At(i, j)
		}
	}
	sort.SliceStable(p.byRate, func(a, b int) bool {
		return p.rate[p.byRate[a]] > p.rate[p.byRate[b]]
	})
	if cfg.MemoSize > 0 {
		memo, err := lru.New[memoKey, memoEntry](cfg.MemoSize)
		if err != nil {
			return nil, fmt.Errorf("schedule: memo: %w", err)
		}
		p.memo = memo
	}

	return p, nil
}

// searchParallel expands the root once and walks each first-level child in
// its own goroutine. Workers share the incumbent and the memo. The reduction
// runs in exploration order, so the first child wins ties on score.
func (p *problem) searchParallel(ctx context.Context, root GameState, workers int) (GameState, Stats, error) {
	var (
		incumbent atomic.Int64
		stats     Stats
	)
	rootEngine := newEngine(ctx, p, &incumbent)
	kids := rootEngine.children(root)
	if len(kids) == 0 {
		return root, stats, ctx.Err()
	}
	stats.Expanded = 1

	var (
		best    = make([]GameState, len(kids))
		found   = make([]bool, len(kids))
		partial = make([]Stats, len(kids))
	)
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, c := range kids {
		eg.Go(func() error {
			e := newEngine(gctx, p, &incumbent)
			next := root.advance(c.node, c.dist, p.rate[c.node])
			defer func() { partial[i] = e.stats }()
			if e.prune(next) {
				return nil
			}
			got, _, err := e.walk(next)
			if err != nil {
				return err
			}
			best[i], found[i] = got, true
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return root, stats, err
	}

	out := root
	for i := range kids {
		stats.add(partial[i])
		if found[i] && best[i].Score() > out.Score() {
			out = best[i]
		}
	}

	return out, stats, nil
}
