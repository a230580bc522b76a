package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/ventflow/core"
	"github.com/katalvlaran/ventflow/dijkstra"
	"github.com/katalvlaran/ventflow/distance"
	"github.com/katalvlaran/ventflow/dot"
	"github.com/katalvlaran/ventflow/internal/config"
	"github.com/katalvlaran/ventflow/internal/logging"
	"github.com/katalvlaran/ventflow/internal/metrics"
	"github.com/katalvlaran/ventflow/planner"
	"github.com/katalvlaran/ventflow/scan"
	"github.com/katalvlaran/ventflow/schedule"
)

// run encapsulates the command logic for easier testing and error handling.
func run(outW io.Writer, args []string) error {
	cfg, opts, shouldExit, err := parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return usageError("%v", err)
	}
	defer func() { _ = logger.Sync() }()
	logger = logging.WithRun(logger, uuid.NewString())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return execute(ctx, outW, cfg, opts, logger)
}

// execute loads the network, plans and writes every requested output.
func execute(ctx context.Context, outW io.Writer, cfg config.Config, opts options, logger *zap.Logger) error {
	start, err := core.ParseLabel(cfg.Start)
	if err != nil {
		return usageError("invalid start: %v", err)
	}
	bound, err := schedule.ParseBound(cfg.Bound)
	if err != nil {
		return usageError("%v", err)
	}
	method, err := distance.ParseMethod(cfg.Method)
	if err != nil {
		return usageError("%v", err)
	}

	g, err := load(cfg.Input, cfg.Format)
	if err != nil {
		return runtimeError("%v", err)
	}
	logger.Info("network loaded",
		zap.String("input", cfg.Input),
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()),
	)

	popts := []planner.Option{
		planner.WithStart(start),
		planner.WithBudget(cfg.Budget),
		planner.WithBound(bound),
		planner.WithWorkers(cfg.Workers),
		planner.WithMemo(cfg.Memo),
		planner.WithMethod(method),
		planner.WithLogger(logger),
	}
	if cfg.RequireConnected {
		popts = append(popts, planner.WithRequireConnected())
	}
	var collector *metrics.Collector
	if cfg.MetricsFile != "" {
		collector = metrics.NewCollector()
		popts = append(popts, planner.WithRecorder(collector))
	}

	rep, err := planner.Run(ctx, g, popts...)
	if err != nil {
		return runtimeError("%v", err)
	}
	logger.Info("plan ready",
		zap.Int64("score", rep.Score),
		zap.Int("unreachable", len(rep.Unreachable)),
		zap.Int64("expanded", rep.Stats.Expanded),
		zap.Duration("elapsed", rep.Elapsed),
	)

	fmt.Fprintf(outW, "best score: %d\n", rep.Score)
	if opts.printPlan {
		if err = writePlan(outW, rep); err != nil {
			return runtimeError("%v", err)
		}
	}
	if cfg.DotOut != "" {
		if err = writeDot(cfg.DotOut, rep); err != nil {
			return runtimeError("%v", err)
		}
	}
	if collector != nil {
		if err = collector.WriteTextfile(cfg.MetricsFile); err != nil {
			return runtimeError("%v", err)
		}
	}

	return nil
}

// load reads the network from path ("-" is stdin) in the given format.
func load(path, format string) (*core.Graph, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	if format == "dot" {
		return dot.Decode(r)
	}

	return scan.Parse(r)
}

func writePlan(w io.Writer, rep *planner.Report) error {
	from := rep.Start
	for _, a := range rep.Plan {
		route, err := travelRoute(rep.Raw, from, a.Node, rep.Budget)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "minute %2d: open %s (flow %d, %d left)\n", a.Minute, a.Node, a.Flow, a.Remaining)
		fmt.Fprintf(w, "           via %s\n", joinIDs(route, " "))
		from = a.Node
	}
	if len(rep.Unreachable) > 0 {
		fmt.Fprintf(w, "unreachable: %s\n", joinIDs(rep.Unreachable, ", "))
	}

	return nil
}

// travelRoute is the shortest tunnel sequence from one valve to the next
// over the uncompressed network.
func travelRoute(g *core.Graph, from, to core.NodeID, budget int64) ([]core.NodeID, error) {
	_, prev, err := dijkstra.Dijkstra(g,
		dijkstra.Source(from),
		dijkstra.WithReturnPath(),
		dijkstra.WithMaxDistance(budget),
	)
	if err != nil {
		return nil, err
	}
	route, ok := dijkstra.PathTo(prev, from, to)
	if !ok {
		return nil, fmt.Errorf("no route from %s to %s within %d minutes", from, to, budget)
	}

	return route, nil
}

func joinIDs(ids []core.NodeID, sep string) string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.String()
	}

	return strings.Join(names, sep)
}

func writeDot(path string, rep *planner.Report) error {
	opts := make([]dot.Option, 0, len(rep.Plan))
	for _, a := range rep.Plan {
		opts = append(opts, dot.WithHighlight(a.Node, a.Minute))
	}
	text, err := dot.Encode(rep.Compressed, opts...)
	if err != nil {
		return err
	}

	return os.WriteFile(path, []byte(text), 0o644)
}
