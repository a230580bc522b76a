// Package builder_test contains functional tests for the topology constructors,
// verifying counts, adjacency, rates and seeded reproducibility.
package builder_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/ventflow/bfs"
	"github.com/katalvlaran/ventflow/builder"
	"github.com/katalvlaran/ventflow/core"
)

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name:  "Path(4)",
			ctor:  builder.Path(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 3; i++ {
					if c, ok := g.Cost(core.NodeID(i), core.NodeID(i+1)); !ok || c != 1 {
						t.Errorf("Path: edge %d-%d: cost=%d ok=%v", i, i+1, c, ok)
					}
				}
			},
		},
		{
			name:  "Cycle(5)",
			ctor:  builder.Cycle(5),
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				if !g.HasEdge(4, 0) {
					t.Error("Cycle: missing closing edge 4-0")
				}
			},
		},
		{
			name:  "Star(4)",
			ctor:  builder.Star(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				if d, err := g.Degree(0); err != nil || d != 3 {
					t.Errorf("Star: hub degree=%d err=%v, want 3", d, err)
				}
			},
		},
		{
			name:  "Grid(2x3)",
			ctor:  builder.Grid(2, 3),
			wantV: 6, wantE: 7,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				if !g.HasEdge(1, 4) || g.HasEdge(2, 3) {
					t.Error("Grid: wrong wrap-around at row boundary")
				}
			},
		},
		{
			name:  "RandomSparse(p=1)",
			ctor:  builder.RandomSparse(5, 1),
			wantV: 5, wantE: 10,
		},
		{
			name:  "RandomSparse(p=0)",
			ctor:  builder.RandomSparse(5, 0),
			wantV: 5, wantE: 0,
		},
		{
			name:  "RandomConnected(p=0)",
			ctor:  builder.RandomConnected(8, 0),
			wantV: 8, wantE: 7,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				res, err := bfs.BFS(g, 0)
				if err != nil {
					t.Fatal(err)
				}
				if len(res.Order) != 8 {
					t.Errorf("RandomConnected: reached %d of 8 nodes", len(res.Order))
				}
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			if err != nil {
				t.Fatalf("BuildGraph: %v", err)
			}
			if got := g.NodeCount(); got != tc.wantV {
				t.Errorf("nodes=%d, want %d", got, tc.wantV)
			}
			if got := g.EdgeCount(); got != tc.wantE {
				t.Errorf("edges=%d, want %d", got, tc.wantE)
			}
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Grid(1x1)", builder.Grid(1, 1), builder.ErrTooFewVertices},
		{"RandomSparse(0)", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse(p>1)", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomConnected(p<0)", builder.RandomConnected(3, -0.1), builder.ErrInvalidProbability},
		{"nil", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.BuildGraph(nil, nil, tc.ctor)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err=%v, want %v", err, tc.want)
			}
		})
	}
}

func TestBuilders_UnitCostGraph(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithUnitCostOnly()}, nil, builder.Grid(3, 3))
	if err != nil {
		t.Fatalf("unit-cost grid: %v", err)
	}
	if !g.UnitCostOnly() {
		t.Error("graph option not applied")
	}
}

func TestBuilders_Rates(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithRates(0, 13, 2)}, builder.Path(4))
	if err != nil {
		t.Fatal(err)
	}
	want := []int64{0, 13, 2, 0}
	for i, r := range want {
		if got := g.Rate(core.NodeID(i)); got != r {
			t.Errorf("rate[%d]=%d, want %d", i, got, r)
		}
	}
	if got := g.TotalRate(); got != 15 {
		t.Errorf("TotalRate=%d, want 15", got)
	}
}

func TestBuilders_SeedReproducible(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(42), builder.WithRateFn(builder.SparseRate(0.5, 20))},
			builder.RandomConnected(12, 0.2))
		if err != nil {
			t.Fatal(err)
		}
		return g
	}
	a, b := build(), build()
	ea, eb := a.Edges(), b.Edges()
	if len(ea) != len(eb) {
		t.Fatalf("edge counts differ: %d vs %d", len(ea), len(eb))
	}
	for i := range ea {
		if ea[i] != eb[i] {
			t.Fatalf("edge %d differs: %v vs %v", i, ea[i], eb[i])
		}
	}
	for _, id := range a.Nodes() {
		if a.Rate(id) != b.Rate(id) {
			t.Fatalf("rate of %s differs", id)
		}
	}
	if a.Rate(0) != 0 {
		t.Errorf("SparseRate must leave index 0 at rate 0, got %d", a.Rate(0))
	}
}
