package core_test

import (
	"fmt"

	"github.com/katalvlaran/ventflow/core"
)

// ExampleGraph builds a three-valve line and lists its edges.
func ExampleGraph() {
	g := core.NewGraph(core.WithUnitCostOnly())
	aa, bb, cc := core.MustLabel("AA"), core.MustLabel("BB"), core.MustLabel("CC")

	_ = g.AddNode(aa, 0)
	_ = g.AddNode(bb, 13)
	_ = g.AddNode(cc, 2)
	_, _ = g.AddEdge(aa, bb, 1)
	_, _ = g.AddEdge(bb, aa, 1) // the same tunnel listed from the other end
	_, _ = g.AddEdge(bb, cc, 1)

	for _, e := range g.Edges() {
		fmt.Printf("%s-%s cost=%d\n", e.A, e.B, e.Cost)
	}
	fmt.Println("total rate:", g.TotalRate())
	// Output:
	// AA-BB cost=1
	// BB-CC cost=1
	// total rate: 15
}
