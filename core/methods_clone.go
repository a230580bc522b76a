// File: methods_clone.go
// Role: Cloning and structural validation.
// Concurrency:
//   - Read lock for snapshotting; the source graph is never mutated.

package core

import "fmt"

// Clone returns a deep copy of the Graph: configuration, nodes, edges and adjacency.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var opts []GraphOption
	if g.unitOnly {
		opts = append(opts, WithUnitCostOnly())
	}
	clone := NewGraph(opts...)
	for id, n := range g.nodes {
		clone.nodes[id] = &Node{ID: n.ID, Rate: n.Rate}
		adj := make(map[NodeID]struct{}, len(g.adjacency[id]))
		for nb := range g.adjacency[id] {
			adj[nb] = struct{}{}
		}
		clone.adjacency[id] = adj
	}
	for k, c := range g.edges {
		clone.edges[k] = c
	}

	return clone
}

// Validate checks the structural invariants of the graph.
//
// Implementation:
//   - Stage 1: Every node rate is non-negative.
//   - Stage 2: Every edge key is canonical, has a positive cost, references existing
//     nodes, and is mirrored in both adjacency sets.
//   - Stage 3: Every adjacency entry has a matching edge (symmetry).
//
// Errors:
//   - ErrNegativeRate, ErrBadCost, ErrNodeNotFound or ErrInconsistent, wrapped with
//     the offending element.
//
// Complexity: O(V + E).
func (g *Graph) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for id, n := range g.nodes {
		if n.Rate < 0 {
			return fmt.Errorf("%w: node %s rate=%d", ErrNegativeRate, id, n.Rate)
		}
	}
	for k, c := range g.edges {
		if k.A >= k.B {
			return fmt.Errorf("%w: non-canonical key %s", ErrInconsistent, k)
		}
		if c <= 0 {
			return fmt.Errorf("%w: %s cost=%d", ErrBadCost, k, c)
		}
		if _, ok := g.nodes[k.A]; !ok {
			return fmt.Errorf("%w: %s referenced by edge %s", ErrNodeNotFound, k.A, k)
		}
		if _, ok := g.nodes[k.B]; !ok {
			return fmt.Errorf("%w: %s referenced by edge %s", ErrNodeNotFound, k.B, k)
		}
		if _, ok := g.adjacency[k.A][k.B]; !ok {
			return fmt.Errorf("%w: edge %s missing from adjacency of %s", ErrInconsistent, k, k.A)
		}
		if _, ok := g.adjacency[k.B][k.A]; !ok {
			return fmt.Errorf("%w: edge %s missing from adjacency of %s", ErrInconsistent, k, k.B)
		}
	}
	for id, adj := range g.adjacency {
		for nb := range adj {
			if _, ok := g.edges[Key(id, nb)]; !ok {
				return fmt.Errorf("%w: neighbor %s of %s has no edge", ErrInconsistent, nb, id)
			}
		}
	}

	return nil
}
