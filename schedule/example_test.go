package schedule_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/ventflow/compress"
	"github.com/katalvlaran/ventflow/core"
	"github.com/katalvlaran/ventflow/distance"
	"github.com/katalvlaran/ventflow/scan"
	"github.com/katalvlaran/ventflow/schedule"
)

// ExampleSolve runs the full pipeline on a three-valve line.
func ExampleSolve() {
	input := strings.Join([]string{
		"Valve AA has flow rate=0; tunnel leads to valve BB",
		"Valve BB has flow rate=13; tunnels lead to valves AA, CC",
		"Valve CC has flow rate=2; tunnel leads to valve BB",
	}, "\n")

	raw, err := scan.ParseString(input)
	if err != nil {
		fmt.Println(err)
		return
	}
	aa := core.MustLabel("AA")
	cg, _ := compress.Compress(raw, aa)
	tbl, _ := distance.Build(cg)

	res, err := schedule.Solve(context.Background(), cg, tbl,
		schedule.WithStart(aa),
		schedule.WithBudget(30),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("score:", res.BestScore())
	for _, a := range res.Plan {
		fmt.Printf("minute %d: open %s (flow %d)\n", a.Minute, a.Node, a.Flow)
	}
	// Output:
	// score: 416
	// minute 2: open BB (flow 13)
	// minute 4: open CC (flow 15)
}
