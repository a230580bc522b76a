// Package dijkstra implements Dijkstra's shortest-path algorithm on valve networks.
//
// Notes on implementation choices:
//
//   - Each node's edge costs are snapshotted once from core.Graph, so the hot loop
//     does not take the graph lock per relaxation.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Ties in the heap are broken by node ID so runs are reproducible.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/ventflow/core"
)

// Dijkstra computes shortest distances from the source node to all other nodes of g.
//
// Returns:
//
//   - dist: map from node ID to minimum distance (Infinity if unreachable).
//   - prev: optional predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     The source and unreachable nodes have no entry.
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxDistance).
//  2. Source must be set (ErrNoSource).
//  3. g must be non-nil (ErrNilGraph).
//  4. g must contain Source (ErrNodeNotFound).
func Dijkstra(g *core.Graph, opts ...Option) (map[core.NodeID]int64, map[core.NodeID]core.NodeID, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if !cfg.HasSource {
		return nil, nil, ErrNoSource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasNode(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %s", ErrNodeNotFound, cfg.Source)
	}

	// 2) Prepare data structures for the algorithm.
	nodes := g.Nodes()
	r := &runner{
		options: cfg,
		adj:     make(map[core.NodeID][]core.Edge, len(nodes)),
		dist:    make(map[core.NodeID]int64, len(nodes)),
		visited: make(map[core.NodeID]bool, len(nodes)),
		pq:      make(nodePQ, 0, len(nodes)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[core.NodeID]core.NodeID, len(nodes))
	}
	for _, e := range g.Edges() {
		r.adj[e.A] = append(r.adj[e.A], e)
		r.adj[e.B] = append(r.adj[e.B], e)
	}

	// 3) Initialize algorithm state and run main loop.
	r.init(nodes)
	r.process()

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	options Options
	adj     map[core.NodeID][]core.Edge // incident edges per node, snapshotted
	dist    map[core.NodeID]int64       // current best distance from Source
	prev    map[core.NodeID]core.NodeID // predecessor on the shortest path (ReturnPath only)
	visited map[core.NodeID]bool        // distance finalized
	pq      nodePQ                      // min-heap for lazy priority queue
}

// init sets every distance to Infinity and pushes Source=0 into the heap.
func (r *runner) init(nodes []core.NodeID) {
	for _, v := range nodes {
		r.dist[v] = Infinity
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unvisited node and relaxes its edges,
// until the heap is empty or the closest distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}
}

// relax attempts to improve the distance of every neighbor of u.
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner) relax(u core.NodeID) {
	var (
		v       core.NodeID
		newDist int64
	)
	for _, e := range r.adj[u] {
		v = e.Key().Other(u)
		if r.visited[v] {
			continue
		}
		newDist = r.dist[u] + e.Cost
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// PathTo rebuilds the node sequence from the source to dest using a
// predecessor map returned with WithReturnPath. ok is false if dest was not reached.
func PathTo(prev map[core.NodeID]core.NodeID, source, dest core.NodeID) (path []core.NodeID, ok bool) {
	for cur := dest; ; {
		path = append(path, cur)
		if cur == source {
			break
		}
		p, found := prev[cur]
		if !found {
			return nil, false
		}
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

// nodeItem represents a node and its current distance from the source.
type nodeItem struct {
	id   core.NodeID
	dist int64
}

// nodePQ is a min-heap of *nodeItem, ordered by dist then id.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority, ID breaks ties.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist == pq[j].dist {
		return pq[i].id < pq[j].id
	}

	return pq[i].dist < pq[j].dist
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
