// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ventflow/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls from a hub
// are safe and every spoke appears exactly once.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	hub := core.NodeID(5000)
	var wg sync.WaitGroup
	wg.Add(num)

	errs := make(chan error, num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge(hub, core.NodeID(id), 1)
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	nbs, err := g.Neighbors(hub)
	require.NoError(t, err)
	require.Len(t, nbs, num)
	require.NoError(t, g.Validate())
}

// TestConcurrentReadWrite mixes readers and writers to surface races under -race.
func TestConcurrentReadWrite(t *testing.T) {
	g := core.NewGraph()
	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(3 * rounds)

	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			_, _ = g.AddEdge(core.NodeID(id), core.NodeID(id+1), int64(id%3+1))
		}(i)
		go func(id int) {
			defer wg.Done()
			_ = g.RemoveNode(core.NodeID(id))
		}(i)
		go func() {
			defer wg.Done()
			_ = g.Edges()
			_ = g.Nodes()
		}()
	}
	wg.Wait()

	require.NoError(t, g.Validate())
}
