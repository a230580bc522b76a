// Package schedule - depth-first Branch-and-Bound over opening orders.
//
// The engine works on dense indices of a distance.Table. Each state branches to
// every unopened positive-rate node it can reach and open in time; the best
// terminal state of a subtree is returned as a value (fold), so there is no
// shared "best so far" mutable besides the incumbent used for pruning.
//
// Rationale (succinct):
//  1. Prefetch distances and rates into dense buffers; the hot loop never
//     touches maps or the graph lock.
//  2. Children are tried in descending immediate gain rate·(t−d−1), index
//     tiebreak. Good schedules surface early and raise the incumbent.
//  3. OptimisticBound: after k more openings at least 2k−1 ticks are spent, so
//     Score + Σ rate_k·(t−2k+1)⁺ over rates sorted descending never undercounts.
//     A child whose bound is ≤ incumbent is skipped.
//  4. Transposition table: the gain still available from (node, remaining,
//     opened) does not depend on flow or released pressure. Subtrees searched
//     without any cut are cached as their best suffix and replayed on a hit.
//  5. Rare ctx checks (every 4096 expansions) keep cancellation cheap.
//
// Complexity:
//   - Worst case O(k!) in the number k of positive-rate nodes; pruning and the
//     budget keep practical trees small.
//   - Per expansion: O(k log k) for ordering and the bound.

package schedule

import (
	"context"
	"sort"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/ventflow/distance"
)

// memoKey identifies a subproblem.
type memoKey struct {
	node      int
	remaining int64
	opened    uint64
}

// memoEntry is the best suffix of a fully searched subproblem.
type memoEntry struct {
	suffix []int
}

// problem is the read-only data shared by every worker.
type problem struct {
	n        int
	useBound bool
	dist     []int64 // dist[u*n+v], distance.Infinity if unreachable
	rate     []int64
	byRate   []int // candidate indices, rate descending, index tiebreak
	memo     *lru.Cache[memoKey, memoEntry]
}

func (p *problem) at(u, v int) int64 { return p.dist[u*p.n+v] }

// child is one feasible move from a state.
type child struct {
	node int
	dist int64
	gain int64
}

// engine is the per-goroutine search state.
type engine struct {
	*problem
	ctx       context.Context
	incumbent *atomic.Int64
	steps     int
	stats     Stats
}

func newEngine(ctx context.Context, p *problem, incumbent *atomic.Int64) *engine {
	return &engine{problem: p, ctx: ctx, incumbent: incumbent}
}

// offer raises the incumbent to score if it is higher.
func (e *engine) offer(score int64) {
	for {
		cur := e.incumbent.Load()
		if score <= cur || e.incumbent.CompareAndSwap(cur, score) {
			return
		}
	}
}

// reachable reports whether m can be reached from s and opened in time.
func (e *engine) reachable(s GameState, m int) (int64, bool) {
	if s.IsOpen(m) || e.rate[m] == 0 {
		return 0, false
	}
	d := e.at(s.node, m)
	if d == distance.Infinity || d+1 > s.remaining {
		return 0, false
	}

	return d, true
}

// children lists feasible moves ordered by descending gain, index tiebreak.
func (e *engine) children(s GameState) []child {
	var out []child
	for _, m := range e.byRate {
		if d, ok := e.reachable(s, m); ok {
			out = append(out, child{node: m, dist: d, gain: e.rate[m] * (s.remaining - d - 1)})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].gain == out[j].gain {
			return out[i].node < out[j].node
		}
		return out[i].gain > out[j].gain
	})

	return out
}

// bound is the optimistic upper bound of any schedule extending s.
func (e *engine) bound(s GameState) int64 {
	ub := s.Score()
	k := int64(0)
	for _, m := range e.byRate {
		if _, ok := e.reachable(s, m); !ok {
			continue
		}
		k++
		left := s.remaining - 2*k + 1
		if left <= 0 {
			break
		}
		ub += e.rate[m] * left
	}

	return ub
}

// prune reports whether next cannot beat the incumbent.
func (e *engine) prune(next GameState) bool {
	if !e.useBound || e.bound(next) > e.incumbent.Load() {
		return false
	}
	e.stats.Pruned++

	return true
}

// replay re-applies a cached suffix from s.
func (e *engine) replay(s GameState, suffix []int) GameState {
	for _, m := range suffix {
		s = s.advance(m, e.at(s.node, m), e.rate[m])
	}

	return s
}

// walk returns the best terminal state reachable from s. complete is false
// when some descendant was skipped by the bound, in which case the result is
// only guaranteed to be optimal relative to the incumbent.
func (e *engine) walk(s GameState) (best GameState, complete bool, err error) {
	e.steps++
	if e.steps&(checkEvery-1) == 0 {
		if err = e.ctx.Err(); err != nil {
			return s, false, err
		}
	}

	key := memoKey{node: s.node, remaining: s.remaining, opened: s.opened}
	if e.memo != nil {
		if ent, ok := e.memo.Get(key); ok {
			e.stats.MemoHits++
			best = e.replay(s, ent.suffix)
			e.offer(best.Score())
			return best, true, nil
		}
	}

	kids := e.children(s)
	if len(kids) == 0 {
		e.offer(s.Score())
		return s, true, nil
	}
	e.stats.Expanded++

	best, complete = s, true
	var (
		got GameState
		ok  bool
	)
	for _, c := range kids {
		next := s.advance(c.node, c.dist, e.rate[c.node])
		if e.prune(next) {
			complete = false
			continue
		}
		got, ok, err = e.walk(next)
		if err != nil {
			return s, false, err
		}
		complete = complete && ok
		if got.Score() > best.Score() {
			best = got
		}
	}

	if complete && e.memo != nil {
		e.memo.Add(key, memoEntry{suffix: best.suffix(s)})
	}

	return best, complete, nil
}
