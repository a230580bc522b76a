package schedule

import "github.com/katalvlaran/ventflow/distance"

// extract walks the best state's trail back to the root and emits the plan in
// opening order.
func extract(table *distance.Table, best GameState, cfg Options) *Result {
	res := &Result{
		Score:  best.Score(),
		Budget: cfg.Budget,
		Start:  cfg.Start,
	}
	for p := best.trail; p != nil; p = p.prev {
		res.Plan = append(res.Plan, Activation{
			Node:      table.ID(p.node),
			Minute:    cfg.Budget - p.left,
			Remaining: p.left,
			Flow:      p.flow,
		})
	}
	for i, j := 0, len(res.Plan)-1; i < j; i, j = i+1, j-1 {
		res.Plan[i], res.Plan[j] = res.Plan[j], res.Plan[i]
	}

	return res
}

// Replay recomputes the score of plan from its activations: each valve
// releases its rate for every tick it stays open. Useful for checking that a
// plan and its score agree.
func (r *Result) Replay() int64 {
	var (
		total int64
		prev  int64
	)
	for _, a := range r.Plan {
		total += (a.Flow - prev) * a.Remaining
		prev = a.Flow
	}

	return total
}
