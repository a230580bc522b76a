// Package metrics records planner runs as Prometheus metrics on a private
// registry, for export through node_exporter's textfile collector.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/ventflow/planner"
)

// Namespace prefixes every metric name.
const Namespace = "ventflow"

// Collector holds all Prometheus metrics for the application.
type Collector struct {
	registry *prometheus.Registry

	Runs            prometheus.Counter
	Score           prometheus.Gauge
	Expanded        prometheus.Counter
	Pruned          prometheus.Counter
	MemoHits        prometheus.Counter
	CompressedNodes prometheus.Gauge
	Unreachable     prometheus.Gauge
	Duration        prometheus.Histogram
}

// NewCollector creates a collector with its own registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		Runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "runs_total",
			Help:      "Total number of completed planner runs",
		}),
		Score: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "last_score",
			Help:      "Pressure released by the most recent plan",
		}),
		Expanded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "search",
			Name:      "expanded_total",
			Help:      "Search states expanded",
		}),
		Pruned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "search",
			Name:      "pruned_total",
			Help:      "Branches cut by the bound",
		}),
		MemoHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "search",
			Name:      "memo_hits_total",
			Help:      "Transposition table hits",
		}),
		CompressedNodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "compressed_nodes",
			Help:      "Nodes left after compression in the most recent run",
		}),
		Unreachable: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "unreachable_nodes",
			Help:      "Nodes dropped as unreachable in the most recent run",
		}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "run_duration_seconds",
			Help:      "Planner run duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}),
	}
	c.registry.MustRegister(
		c.Runs,
		c.Score,
		c.Expanded,
		c.Pruned,
		c.MemoHits,
		c.CompressedNodes,
		c.Unreachable,
		c.Duration,
	)

	return c
}

// Observe implements planner.Recorder.
func (c *Collector) Observe(rep planner.Report) {
	c.Runs.Inc()
	c.Score.Set(float64(rep.Score))
	c.Expanded.Add(float64(rep.Stats.Expanded))
	c.Pruned.Add(float64(rep.Stats.Pruned))
	c.MemoHits.Add(float64(rep.Stats.MemoHits))
	if rep.Compressed != nil {
		c.CompressedNodes.Set(float64(rep.Compressed.NodeCount()))
	}
	c.Unreachable.Set(float64(len(rep.Unreachable)))
	c.Duration.Observe(rep.Elapsed.Seconds())
}

// Registry exposes the private registry, e.g. for promhttp.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// WriteTextfile writes all metrics to path in the text exposition format.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}

var _ planner.Recorder = (*Collector)(nil)
