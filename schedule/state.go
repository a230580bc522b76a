// SPDX-License-Identifier: MIT
// Package: ventflow/schedule

package schedule

// step is one link of the persistent activation trail. Branches share their
// common prefix, so advancing costs one allocation.
type step struct {
	node int
	left int64 // remaining ticks after opening
	flow int64 // flow after opening
	prev *step
}

// GameState is an immutable search position. The zero value is not useful;
// states are created by Solve and derived with advance.
type GameState struct {
	node      int
	remaining int64
	opened    uint64
	released  int64
	flow      int64
	trail     *step
}

// Node returns the dense table index of the current node.
func (s GameState) Node() int { return s.node }

// Remaining returns the ticks left. Never negative.
func (s GameState) Remaining() int64 { return s.remaining }

// Opened returns the bitmask of opened table indices.
func (s GameState) Opened() uint64 { return s.opened }

// Released returns the pressure released so far.
func (s GameState) Released() int64 { return s.released }

// Flow returns the current per-tick flow.
func (s GameState) Flow() int64 { return s.flow }

// Score is the value of standing still until time runs out.
func (s GameState) Score() int64 { return s.released + s.remaining*s.flow }

// IsOpen reports whether index i has been opened.
func (s GameState) IsOpen(i int) bool { return s.opened&(1<<uint(i)) != 0 }

// advance travels d ticks to m and spends one tick opening it. Travel and the
// opening tick accrue the flow from before the opening. The caller guarantees
// d+1 ≤ remaining.
func (s GameState) advance(m int, d, rate int64) GameState {
	cost := d + 1
	next := GameState{
		node:      m,
		remaining: s.remaining - cost,
		opened:    s.opened | 1<<uint(m),
		released:  s.released + s.flow*cost,
		flow:      s.flow + rate,
	}
	next.trail = &step{node: m, left: next.remaining, flow: next.flow, prev: s.trail}

	return next
}

// suffix lists the nodes opened on the way from ancestor to s, in order.
func (s GameState) suffix(ancestor GameState) []int {
	var out []int
	for p := s.trail; p != nil && p != ancestor.trail; p = p.prev {
		out = append(out, p.node)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}
