// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/ventflow/core"
	"github.com/katalvlaran/ventflow/dijkstra"
)

// ExampleDijkstra computes distances over a compressed-looking network where
// tunnels have already been folded into multi-step edges.
func ExampleDijkstra() {
	aa, dd, ee, hh := core.MustLabel("AA"), core.MustLabel("DD"), core.MustLabel("EE"), core.MustLabel("HH")

	g := core.NewGraph()
	_, _ = g.AddEdge(aa, dd, 1)
	_, _ = g.AddEdge(dd, ee, 1)
	_, _ = g.AddEdge(ee, hh, 3)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(aa), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := dijkstra.PathTo(prev, aa, hh)

	fmt.Printf("dist[HH]=%d path=%v\n", dist[hh], path)
	// Output: dist[HH]=5 path=[AA DD EE HH]
}
