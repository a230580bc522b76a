package schedule_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ventflow/compress"
	"github.com/katalvlaran/ventflow/core"
	"github.com/katalvlaran/ventflow/distance"
	"github.com/katalvlaran/ventflow/scan"
)

// prepare compresses g around start and builds its distance table.
func prepare(t testing.TB, g *core.Graph, start core.NodeID) (*core.Graph, *distance.Table) {
	t.Helper()
	cg, err := compress.Compress(g, start)
	require.NoError(t, err)
	tbl, err := distance.Build(cg)
	require.NoError(t, err)

	return cg, tbl
}

// loadSmall returns the compressed ten-valve example network.
func loadSmall(t testing.TB) (*core.Graph, *distance.Table) {
	t.Helper()
	data, err := os.ReadFile("../testdata/small.txt")
	require.NoError(t, err)
	raw, err := scan.ParseString(string(data))
	require.NoError(t, err)

	return prepare(t, raw, core.MustLabel("AA"))
}

// exhaustive is a plain reference search over the table, without pruning,
// memo or ordering.
func exhaustive(g *core.Graph, tbl *distance.Table, start core.NodeID, budget int64) int64 {
	n := tbl.Len()
	s, _ := tbl.Index(start)
	opened := make([]bool, n)
	var rec func(u int, t int64) int64
	rec = func(u int, t int64) int64 {
		var best int64
		for m := 0; m < n; m++ {
			rate := g.Rate(tbl.ID(m))
			d := tbl.At(u, m)
			if opened[m] || rate == 0 || d == distance.Infinity || d+1 > t {
				continue
			}
			left := t - d - 1
			opened[m] = true
			if v := rate*left + rec(m, left); v > best {
				best = v
			}
			opened[m] = false
		}
		return best
	}

	return rec(s, budget)
}
