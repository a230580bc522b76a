package distance

import (
	"fmt"

	"github.com/katalvlaran/ventflow/core"
	"github.com/katalvlaran/ventflow/dijkstra"
)

// Method selects how the table is computed.
type Method int

const (
	// Dijkstra runs one single-source search per node: O(V·(V+E) log V).
	Dijkstra Method = iota

	// FloydWarshall relaxes the dense buffer through every intermediate node: O(V³).
	FloydWarshall
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case Dijkstra:
		return "dijkstra"
	case FloydWarshall:
		return "floyd-warshall"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps a method name back to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "dijkstra", "":
		return Dijkstra, nil
	case "floyd-warshall", "floyd":
		return FloydWarshall, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Options configures Build.
type Options struct {
	Method           Method
	RequireConnected bool
}

// Option is a functional option for Build.
type Option func(*Options)

// WithMethod selects the computation method.
func WithMethod(m Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithRequireConnected makes Build fail with ErrDisconnected on any unreachable pair.
func WithRequireConnected() Option {
	return func(o *Options) { o.RequireConnected = true }
}

// Build computes the Distance Table of g.
//
// Implementation:
//   - Stage 1: Allocate the dense table over g.Nodes() (sorted).
//   - Stage 2: Fill it with the selected method. Distances are symmetric, so each
//     Dijkstra run only writes pairs (i, j) with j > i.
//   - Stage 3: Optionally reject unreachable pairs.
//
// Errors:
//   - ErrNilGraph, ErrUnknownMethod, ErrDisconnected (only with WithRequireConnected).
func Build(g *core.Graph, opts ...Option) (*Table, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := Options{Method: Dijkstra}
	for _, opt := range opts {
		opt(&cfg)
	}

	t := newTable(g.Nodes())
	var err error
	switch cfg.Method {
	case Dijkstra:
		err = fillDijkstra(g, t)
	case FloydWarshall:
		fillFloydWarshall(g, t)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownMethod, cfg.Method)
	}
	if err != nil {
		return nil, err
	}

	if cfg.RequireConnected && !t.Connected() {
		a, b := t.firstGap()
		return nil, fmt.Errorf("%w: no path %s-%s", ErrDisconnected, a, b)
	}

	return t, nil
}

// fillDijkstra runs one single-source Dijkstra per node.
func fillDijkstra(g *core.Graph, t *Table) error {
	n := t.Len()
	for i := 0; i < n; i++ {
		dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(t.ids[i]))
		if err != nil {
			return fmt.Errorf("distance: from %s: %w", t.ids[i], err)
		}
		for j := i + 1; j < n; j++ {
			t.set(i, j, dist[t.ids[j]])
		}
	}

	return nil
}

// fillFloydWarshall seeds the buffer with direct edge costs and relaxes it
// through every intermediate node k.
func fillFloydWarshall(g *core.Graph, t *Table) {
	n := t.Len()
	for _, e := range g.Edges() {
		t.set(t.index[e.A], t.index[e.B], e.Cost)
	}

	var (
		i, j, k       int
		dik, dkj, dij int64
	)
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			dik = t.d[i*n+k]
			if dik == Infinity {
				continue
			}
			for j = 0; j < n; j++ {
				dkj = t.d[k*n+j]
				if dkj == Infinity {
					continue
				}
				dij = t.d[i*n+j]
				if dik+dkj < dij {
					t.d[i*n+j] = dik + dkj
				}
			}
		}
	}
}
