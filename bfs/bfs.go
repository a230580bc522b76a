// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances and visit order.
//
// BFS explores nodes in increasing hop count from a start node.
// Edge costs are ignored; on a unit-cost network the hop depth is the
// shortest-path distance.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/ventflow/core"
)

// queueItem pairs a node ID with its BFS depth.
type queueItem struct {
	id    core.NodeID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	ctx     context.Context
	queue   []queueItem
	visited map[core.NodeID]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartNotFound for invalid input, or the
// context error on cancellation.
func BFS(g *core.Graph, start core.NodeID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %s", ErrStartNotFound, start)
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[core.NodeID]bool, n),
		res: &Result{
			Order: make([]core.NodeID, 0, n),
			Depth: make(map[core.NodeID]int, n),
		},
	}

	w.enqueue(start, 0)

	return w.res, w.loop()
}

// Unreached returns the nodes of g that res did not discover, sorted ascending.
func Unreached(g *core.Graph, res *Result) []core.NodeID {
	var out []core.NodeID
	for _, id := range g.Nodes() {
		if !res.Reached(id) {
			out = append(out, id)
		}
	}

	return out
}

// enqueue marks id visited at depth d and adds it to the queue.
func (w *walker) enqueue(id core.NodeID, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors enqueues each unseen neighbor one hop deeper.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %s: %w", item.id, err)
	}
	for _, nbr := range neighbors {
		if !w.visited[nbr] {
			w.enqueue(nbr, item.depth+1)
		}
	}

	return nil
}
