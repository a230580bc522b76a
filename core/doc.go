// Package core provides the thread-safe, in-memory valve network used by every
// other ventflow package.
//
// The Graph G = (V,E) is undirected and weighted:
//
//   - Nodes carry an integer NodeID and a non-negative reward Rate.
//   - Edges carry a positive integer Cost and are stored once per unordered pair
//     under a canonical EdgeKey{A,B} with A < B.
//   - Adding an edge that already exists keeps the cheaper cost, so the store
//     behaves like an adjacency multiset collapsed to its minimum.
//   - Self-loops are rejected.
//
// Why a dedicated model rather than string vertices?
//
//   - Puzzle labels such as "AA" are two base-36 digits; ParseLabel maps them to a
//     dense integer space, which the search engine turns into bitmask positions.
//   - Deterministic iteration: Nodes(), Neighbors(), Edges() return sorted results.
//
// Configuration Options (GraphOption):
//
//	– WithUnitCostOnly()
//	    Raw networks read from puzzle input have unit tunnels; AddEdge(cost≠1) → ErrBadCost.
//
// Core Methods:
//
//	AddNode(id, rate) error                // O(1), upsert
//	AddEdge(a, b, cost) (int64, error)     // O(1), min-merge
//	RemoveNode(id) error                   // O(deg)
//	RemoveEdge(a, b) error                 // O(1)
//	Neighbors(id) ([]NodeID, error)        // O(d log d)
//	Nodes() []NodeID                       // O(V log V)
//	Edges() []Edge                         // O(E log E)
//	Clone() *Graph                         // O(V+E)
//	Validate() error                       // O(V+E)
//
// Errors:
//
//	ErrNodeNotFound, ErrEdgeNotFound, ErrNegativeRate, ErrBadCost,
//	ErrSelfLoop, ErrInconsistent, ErrBadLabel
package core
