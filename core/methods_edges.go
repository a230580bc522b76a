// File: methods_edges.go
// Role: Edge lifecycle & queries over the canonical edge store.
//
// Determinism:
//   - Edges() returns edges sorted by (A, B) ascending.
//
// Invariants:
//   - At most one edge per unordered pair; repeated inserts keep the minimum cost.
//   - edges[Key(a,b)] exists iff b ∈ adjacency[a] and a ∈ adjacency[b].

package core

import (
	"fmt"
	"slices"
)

// AddEdge connects a and b with the given cost.
//
// Implementation:
//   - Stage 1: Validate a ≠ b (ErrSelfLoop) and cost > 0 (ErrBadCost); in unit-cost
//     mode cost must equal 1.
//   - Stage 2: Under the write lock create missing endpoints with rate 0.
//   - Stage 3: Store min(existing, cost) under Key(a, b) and link both adjacency sets.
//
// Behavior highlights:
//   - Re-adding an existing pair never raises its cost, so listing a tunnel from
//     both ends, or folding several paths onto the same pair, stays consistent.
//
// Returns:
//   - int64: the cost stored for the pair after the call.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b NodeID, cost int64) (int64, error) {
	if a == b {
		return 0, fmt.Errorf("%w: %s", ErrSelfLoop, a)
	}
	if cost <= 0 {
		return 0, fmt.Errorf("%w: %s-%s cost=%d", ErrBadCost, a, b, cost)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.unitOnly && cost != 1 {
		return 0, fmt.Errorf("%w: %s-%s cost=%d in unit-cost graph", ErrBadCost, a, b, cost)
	}

	g.ensureNode(a)
	g.ensureNode(b)

	k := Key(a, b)
	if old, ok := g.edges[k]; ok && old <= cost {
		return old, nil
	}
	g.edges[k] = cost
	g.adjacency[a][b] = struct{}{}
	g.adjacency[b][a] = struct{}{}

	return cost, nil
}

// RemoveEdge deletes the edge between a and b.
func (g *Graph) RemoveEdge(a, b NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	k := Key(a, b)
	if _, ok := g.edges[k]; !ok {
		return fmt.Errorf("%w: %s", ErrEdgeNotFound, k)
	}
	delete(g.edges, k)
	delete(g.adjacency[a], b)
	delete(g.adjacency[b], a)

	return nil
}

// HasEdge reports whether a and b are directly connected.
func (g *Graph) HasEdge(a, b NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.edges[Key(a, b)]

	return ok
}

// Cost returns the cost of the edge between a and b.
func (g *Graph) Cost(a, b NodeID) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c, ok := g.edges[Key(a, b)]

	return c, ok
}

// Edges returns every edge sorted by canonical key.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for k, c := range g.edges {
		out = append(out, Edge{A: k.A, B: k.B, Cost: c})
	}
	slices.SortFunc(out, func(x, y Edge) int {
		if x.A != y.A {
			return cmpID(x.A, y.A)
		}

		return cmpID(x.B, y.B)
	})

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

func cmpID(a, b NodeID) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
