// Package schedule searches for the opening order of valves that releases the
// most pressure within a tick budget.
//
// The agent starts on a node with every valve closed. Moving between two nodes
// costs their shortest-path distance in ticks and opening a valve costs one
// more tick; from then on the valve releases its rate every remaining tick.
// The score of a state is
//
//	Released + Remaining × Flow
//
// i.e. what it would release if it stood still until the budget runs out.
//
// Solve runs an exact depth-first Branch-and-Bound with an optimistic upper
// bound, an LRU transposition table and an optional parallel first level.
// All variants return the same Score; with several workers, schedules of equal
// score may be reported in a different order.
//
//	res, err := schedule.Solve(ctx, compressed, table,
//		schedule.WithStart(core.MustLabel("AA")),
//		schedule.WithBudget(30),
//	)
package schedule
