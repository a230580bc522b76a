package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/ventflow/internal/config"
)

// ExitError is an error that carries a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

func runtimeError(format string, args ...any) *ExitError {
	return &ExitError{Code: 1, Message: fmt.Sprintf(format, args...)}
}

// options are the settings that only exist on the command line.
type options struct {
	printPlan bool
}

// parse resolves the configuration: defaults, the -config file, .env and
// VENTFLOW_* variables, then every flag given explicitly. shouldExit is true
// after -h or when no input was named.
func parse(args []string, output io.Writer) (cfg config.Config, opts options, shouldExit bool, err error) {
	fs := flag.NewFlagSet("ventflow", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
ventflow - plan the valve opening order that releases the most pressure.

Usage:
  ventflow [options] [INPUT]

Arguments:
  INPUT
    Valve network file ("-" for stdin). Text scan lines or Graphviz DOT.

Options:
`)
		fs.PrintDefaults()
	}

	def := config.Default()
	configPath := fs.String("config", "", "YAML configuration file.")
	fs.String("input", "", "Valve network file (same as INPUT).")
	fs.String("format", def.Format, "Input format: 'text' or 'dot'.")
	fs.String("start", def.Start, "Start node label.")
	fs.Int64("budget", def.Budget, "Ticks available.")
	fs.Int("workers", def.Workers, "Goroutines for the first search level.")
	fs.Int("memo", def.Memo, "Transposition table entries, 0 disables.")
	fs.String("bound", def.Bound, "Search bound: 'none' or 'optimistic'.")
	fs.String("method", def.Method, "Distance method: 'dijkstra' or 'floyd-warshall'.")
	fs.Bool("require-connected", false, "Fail when a node is unreachable from start.")
	fs.String("log-level", def.LogLevel, "Logging level: 'debug', 'info', 'warn', 'error'.")
	fs.String("log-format", def.LogFormat, "Log output format: 'json' or 'console'.")
	fs.String("dot-out", "", "Write the compressed network with the plan as DOT.")
	fs.String("metrics-file", "", "Write Prometheus metrics in textfile format.")
	fs.BoolVar(&opts.printPlan, "plan", false, "Print the opening schedule.")

	if err = fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return cfg, opts, true, nil
		}
		return cfg, opts, false, usageError("%v", err)
	}

	cfg, err = config.Load(*configPath)
	if err != nil {
		return cfg, opts, false, usageError("%v", err)
	}
	if err = applyFlags(fs, &cfg); err != nil {
		return cfg, opts, false, err
	}
	if fs.NArg() > 0 {
		cfg.Input = fs.Arg(0)
	}
	if cfg.Input == "" {
		fs.Usage()
		return cfg, opts, true, nil
	}
	if err = config.Validate(cfg); err != nil {
		return cfg, opts, false, usageError("%v", err)
	}

	return cfg, opts, false, nil
}

// applyFlags copies every explicitly set flag into cfg.
func applyFlags(fs *flag.FlagSet, cfg *config.Config) error {
	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		v := f.Value.String()
		switch f.Name {
		case "input":
			cfg.Input = v
		case "format":
			cfg.Format = v
		case "start":
			cfg.Start = v
		case "budget":
			cfg.Budget, err = strconv.ParseInt(v, 10, 64)
		case "workers":
			cfg.Workers, err = strconv.Atoi(v)
		case "memo":
			cfg.Memo, err = strconv.Atoi(v)
		case "bound":
			cfg.Bound = v
		case "method":
			cfg.Method = v
		case "require-connected":
			cfg.RequireConnected, err = strconv.ParseBool(v)
		case "log-level":
			cfg.LogLevel = v
		case "log-format":
			cfg.LogFormat = v
		case "dot-out":
			cfg.DotOut = v
		case "metrics-file":
			cfg.MetricsFile = v
		}
	})
	if err != nil {
		return usageError("invalid flag value: %v", err)
	}

	return nil
}
