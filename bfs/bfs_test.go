package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ventflow/bfs"
	"github.com/katalvlaran/ventflow/core"
)

// line builds 0—1—2—…—(n-1) with unit costs.
func line(n int) *core.Graph {
	g := core.NewGraph(core.WithUnitCostOnly())
	for i := 1; i < n; i++ {
		_, _ = g.AddEdge(core.NodeID(i-1), core.NodeID(i), 1)
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(core.NewGraph(), 7)
	require.ErrorIs(t, err, bfs.ErrStartNotFound)
}

func TestBFS_LineDepths(t *testing.T) {
	res, err := bfs.BFS(line(5), 0)
	require.NoError(t, err)

	assert.Equal(t, []core.NodeID{0, 1, 2, 3, 4}, res.Order)
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, res.Depth[core.NodeID(i)])
	}
	assert.True(t, res.Reached(0), "start is reached at depth 0")
}

func TestBFS_IgnoresCostsCountsHops(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(0, 1, 10)
	_, _ = g.AddEdge(0, 2, 1)
	_, _ = g.AddEdge(2, 1, 1)

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Depth[1])
}

func TestBFS_UnreachedComponent(t *testing.T) {
	g := line(3)
	_, _ = g.AddEdge(10, 11, 1)
	require.NoError(t, g.AddNode(20, 5))

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.False(t, res.Reached(10))
	assert.Equal(t, []core.NodeID{10, 11, 20}, bfs.Unreached(g, res))
}

func TestBFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(line(4), 0, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
