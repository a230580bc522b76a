// Package ventflow plans how to open pressure-release valves in a tunnel
// network so that the most pressure escapes before time runs out.
//
// The work is split across small packages, leaf first:
//
//	core/      — thread-safe undirected valve network: nodes with rates, edges with costs
//	scan/      — parser for "Valve AA has flow rate=0; tunnels lead to valves DD, II" lines
//	dot/       — Graphviz DOT import/export (rates in xlabel, costs in weight)
//	bfs/       — hop-count traversal, used for reachability pruning
//	dijkstra/  — single-source shortest paths with a lazy heap
//	compress/  — folds zero-rate nodes away while keeping every surviving distance
//	distance/  — dense all-pairs table (Dijkstra per node or Floyd–Warshall)
//	schedule/  — exact Branch-and-Bound search with memo and parallel first level
//	planner/   — runs the whole pipeline and reports the plan
//	builder/   — deterministic topologies and random networks for tests and benchmarks
//
// The ventflow command (cmd/ventflow) wires the pipeline to YAML/.env/flag
// configuration, zap logging and a Prometheus textfile exporter.
//
// Quick start:
//
//	g, _ := scan.Parse(f)
//	rep, err := planner.Run(ctx, g,
//		planner.WithStart(core.MustLabel("AA")),
//		planner.WithBudget(30),
//	)
//	fmt.Println(rep.Score)
package ventflow
