package planner_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/ventflow/core"
	"github.com/katalvlaran/ventflow/distance"
	"github.com/katalvlaran/ventflow/planner"
	"github.com/katalvlaran/ventflow/scan"
	"github.com/katalvlaran/ventflow/schedule"
)

var aa = core.MustLabel("AA")

func loadSmall(t *testing.T) *core.Graph {
	t.Helper()
	data, err := os.ReadFile("../testdata/small.txt")
	require.NoError(t, err)
	g, err := scan.ParseString(string(data))
	require.NoError(t, err)

	return g
}

type recorder struct{ reports []planner.Report }

func (r *recorder) Observe(rep planner.Report) { r.reports = append(r.reports, rep) }

func TestRun_SmallNetwork(t *testing.T) {
	g := loadSmall(t)
	rec := &recorder{}

	rep, err := planner.Run(context.Background(), g,
		planner.WithStart(aa),
		planner.WithBudget(30),
		planner.WithRecorder(rec),
	)
	require.NoError(t, err)

	assert.Equal(t, int64(1651), rep.Score)
	assert.Equal(t, int64(30), rep.Budget)
	assert.Len(t, rep.Plan, 6)
	assert.Equal(t, 10, rep.Raw.NodeCount(), "input untouched")
	assert.Equal(t, 7, rep.Compressed.NodeCount())
	assert.Equal(t, 7, rep.Table.Len())
	assert.Empty(t, rep.Unreachable)
	require.Len(t, rec.reports, 1)
	assert.Equal(t, rep.Score, rec.reports[0].Score)
}

func TestRun_OptionsAgree(t *testing.T) {
	g := loadSmall(t)
	variants := [][]planner.Option{
		{planner.WithMethod(distance.FloydWarshall)},
		{planner.WithWorkers(4), planner.WithMemo(0)},
		{planner.WithBound(schedule.NoBound)},
		{planner.WithRequireConnected()},
	}
	for i, extra := range variants {
		opts := append([]planner.Option{planner.WithStart(aa)}, extra...)
		rep, err := planner.Run(context.Background(), g, opts...)
		require.NoError(t, err, "variant %d", i)
		assert.Equal(t, int64(1651), rep.Score, "variant %d", i)
	}
}

func TestRun_Unreachable(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge(aa, core.MustLabel("BB"), 1)
	require.NoError(t, err)
	require.NoError(t, g.AddNode(core.MustLabel("BB"), 4))
	zz := core.MustLabel("ZZ")
	require.NoError(t, g.AddNode(zz, 100))

	rep, err := planner.Run(context.Background(), g, planner.WithStart(aa), planner.WithBudget(5))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{zz}, rep.Unreachable)
	assert.Equal(t, int64(4*3), rep.Score)
	assert.False(t, rep.Compressed.HasNode(zz))
	assert.True(t, g.HasNode(zz), "input untouched")

	_, err = planner.Run(context.Background(), g, planner.WithStart(aa), planner.WithRequireConnected())
	assert.ErrorIs(t, err, planner.ErrDisconnected)
}

func TestRun_WarnsOnPrunedNodes(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge(aa, core.MustLabel("BB"), 1)
	require.NoError(t, err)
	require.NoError(t, g.AddNode(core.MustLabel("ZZ"), 100))

	obs, logs := observer.New(zapcore.WarnLevel)
	_, err = planner.Run(context.Background(), g,
		planner.WithStart(aa), planner.WithBudget(5), planner.WithLogger(zap.New(obs)))
	require.NoError(t, err)

	pruned := logs.FilterMessage("pruned unreachable nodes").All()
	require.Len(t, pruned, 1)
	assert.Equal(t, zapcore.WarnLevel, pruned[0].Level)
	assert.Equal(t, int64(1), pruned[0].ContextMap()["count"])
}

func TestRun_Errors(t *testing.T) {
	ctx := context.Background()
	g := loadSmall(t)

	_, err := planner.Run(ctx, nil, planner.WithStart(aa))
	assert.ErrorIs(t, err, planner.ErrNilGraph)

	_, err = planner.Run(ctx, g)
	assert.ErrorIs(t, err, planner.ErrNoStart)

	_, err = planner.Run(ctx, g, planner.WithStart(core.MustLabel("QQ")))
	assert.ErrorIs(t, err, planner.ErrStartNotFound)

	_, err = planner.Run(ctx, g, planner.WithStart(aa), planner.WithBudget(-3))
	assert.ErrorIs(t, err, schedule.ErrNegativeBudget)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = planner.Run(cancelled, g, planner.WithStart(aa))
	assert.ErrorIs(t, err, context.Canceled)
}
