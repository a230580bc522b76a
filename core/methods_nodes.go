// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() and Neighbors() return IDs sorted ascending.
//
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"
	"slices"
)

// AddNode inserts the node or, if it already exists, replaces its rate.
//
// Implementation:
//   - Stage 1: Reject negative rates (ErrNegativeRate).
//   - Stage 2: Under the write lock, upsert the Node and bootstrap its adjacency set.
//
// Behavior highlights:
//   - Upsert semantics let callers declare a node after edges already referenced it
//     (AddEdge creates missing endpoints with rate 0).
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddNode(id NodeID, rate int64) error {
	if rate < 0 {
		return fmt.Errorf("%w: node %s rate=%d", ErrNegativeRate, id, rate)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureNode(id).Rate = rate

	return nil
}

// ensureNode returns the node for id, creating it with rate 0 when missing.
// Caller must hold the write lock.
func (g *Graph) ensureNode(id NodeID) *Node {
	n, ok := g.nodes[id]
	if !ok {
		n = &Node{ID: id}
		g.nodes[id] = n
		g.adjacency[id] = make(map[NodeID]struct{})
	}

	return n
}

// HasNode reports whether id is present.
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]

	return ok
}

// Node returns a copy of the node stored under id.
func (g *Graph) Node(id NodeID) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}

	return *n, nil
}

// Rate returns the reward rate of id, or 0 when the node is missing.
func (g *Graph) Rate(id NodeID) int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if n, ok := g.nodes[id]; ok {
		return n.Rate
	}

	return 0
}

// RemoveNode deletes the node and every incident edge.
//
// Complexity: O(deg(id)).
func (g *Graph) RemoveNode(id NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	for nb := range g.adjacency[id] {
		delete(g.edges, Key(id, nb))
		delete(g.adjacency[nb], id)
	}
	delete(g.adjacency, id)
	delete(g.nodes, id)

	return nil
}

// Nodes returns every node ID sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Nodes() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Neighbors returns the IDs adjacent to id, sorted ascending.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id NodeID) ([]NodeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	out := make([]NodeID, 0, len(adj))
	for nb := range adj {
		out = append(out, nb)
	}
	slices.Sort(out)

	return out, nil
}

// Degree returns the number of distinct neighbors of id.
func (g *Graph) Degree(id NodeID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.adjacency[id]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}

	return len(adj), nil
}

// TotalRate returns the sum of every node's rate, the per-tick reward with all
// valves open.
func (g *Graph) TotalRate() int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sum int64
	for _, n := range g.nodes {
		sum += n.Rate
	}

	return sum
}
