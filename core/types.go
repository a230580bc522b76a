// SPDX-License-Identifier: MIT
// Package core defines the valve network model: Node, Edge, EdgeKey and Graph,
// together with the sentinel errors and the NewGraph constructor.
//
// All Graph methods are safe for concurrent use; a single sync.RWMutex guards
// the node catalog, the edge store and the adjacency sets so that the three
// structures can never be observed out of step with each other.
//
// Errors:
//
//	ErrNodeNotFound  - requested node does not exist.
//	ErrEdgeNotFound  - requested edge does not exist.
//	ErrNegativeRate  - reward rate below zero.
//	ErrBadCost       - edge cost is not positive (or not 1 in unit-cost mode).
//	ErrSelfLoop      - edge from a node to itself.
//	ErrInconsistent  - Validate found a broken structural invariant.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeRate indicates a reward rate below zero.
	ErrNegativeRate = errors.New("core: negative reward rate")

	// ErrBadCost indicates a non-positive edge cost, or a cost other than 1
	// on a graph built with WithUnitCostOnly.
	ErrBadCost = errors.New("core: bad edge cost")

	// ErrSelfLoop indicates an edge whose endpoints are the same node.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrInconsistent indicates that the edge store and the adjacency sets disagree.
	ErrInconsistent = errors.New("core: inconsistent graph")
)

// NodeID is the opaque identifier of a node. Input labels such as "AA" map onto
// it through ParseLabel.
type NodeID uint32

// Node is a valve: its identity and the reward it emits per remaining time unit
// once activated.
type Node struct {
	// ID uniquely identifies this Node within its Graph.
	ID NodeID

	// Rate is the non-negative per-tick reward once the node is activated.
	Rate int64
}

// EdgeKey is the canonical key of an undirected edge: A < B always holds.
type EdgeKey struct {
	A, B NodeID
}

// Key returns the canonical EdgeKey of the unordered pair {a, b}.
func Key(a, b NodeID) EdgeKey {
	if a > b {
		a, b = b, a
	}

	return EdgeKey{A: a, B: b}
}

// Other returns the endpoint of k opposite to id.
func (k EdgeKey) Other(id NodeID) NodeID {
	if k.A == id {
		return k.B
	}

	return k.A
}

// Edge is an undirected connection between two nodes with a positive travel cost.
type Edge struct {
	// A and B are the endpoints, A < B.
	A, B NodeID

	// Cost is the number of time units needed to travel the edge.
	Cost int64
}

// Key returns the canonical key of e.
func (e Edge) Key() EdgeKey { return EdgeKey{A: e.A, B: e.B} }

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithUnitCostOnly restricts AddEdge to cost 1, which is the shape of a raw,
// uncompressed network read from puzzle input.
func WithUnitCostOnly() GraphOption {
	return func(g *Graph) { g.unitOnly = true }
}

// Graph is an undirected valve network.
//
// nodes holds the node catalog; edges is the canonical edge store keyed by
// EdgeKey; adjacency mirrors edges as neighbor sets in both directions.
type Graph struct {
	mu sync.RWMutex // guards every field below

	unitOnly bool // reject costs other than 1

	nodes     map[NodeID]*Node
	edges     map[EdgeKey]int64
	adjacency map[NodeID]map[NodeID]struct{}
}

// NewGraph creates an empty Graph configured by opts.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:     make(map[NodeID]*Node),
		edges:     make(map[EdgeKey]int64),
		adjacency: make(map[NodeID]map[NodeID]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// UnitCostOnly reports whether the graph was created with WithUnitCostOnly.
func (g *Graph) UnitCostOnly() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.unitOnly
}
