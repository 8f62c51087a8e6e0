package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"gravitas-hq/callisto/pkg/config"
)

// PipelineMetrics tracks pipeline run outcomes and budget enforcement
// activity.
//
// Metrics:
//   - callisto_pipeline_runs_total: completed runs by status
//   - callisto_pipeline_run_duration_seconds: run duration histogram
//   - callisto_pipeline_nodes: node count in the last processed graph
//   - callisto_pipeline_buckets: weekly bucket count in the last run
//   - callisto_pipeline_reweighted_addresses_total: addresses scaled by
//     budget enforcement
type PipelineMetrics struct {
	runsTotal       *prometheus.CounterVec
	runDuration     prometheus.Histogram
	nodes           prometheus.Gauge
	buckets         prometheus.Gauge
	reweightedTotal prometheus.Counter
}

// NewPipelineMetrics creates and registers pipeline metrics with the
// provided registry.
func NewPipelineMetrics(cfg config.MetricsConfig, registry *prometheus.Registry) *PipelineMetrics {
	pm := &PipelineMetrics{
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "runs_total",
				Help:      "Total number of completed pipeline runs",
			},
			[]string{"status"},
		),
		runDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "run_duration_seconds",
				Help:      "Duration of pipeline runs in seconds",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15, 60},
			},
		),
		nodes: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "nodes",
				Help:      "Node count in the last processed graph",
			},
		),
		buckets: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "buckets",
				Help:      "Weekly bucket count in the last run",
			},
		),
		reweightedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "reweighted_addresses_total",
				Help:      "Total addresses scaled by budget enforcement",
			},
		),
	}

	registry.MustRegister(
		pm.runsTotal,
		pm.runDuration,
		pm.nodes,
		pm.buckets,
		pm.reweightedTotal,
	)
	return pm
}

// RecordRun records a completed run with its outcome and duration.
func (pm *PipelineMetrics) RecordRun(status string, duration time.Duration) {
	pm.runsTotal.WithLabelValues(status).Inc()
	pm.runDuration.Observe(duration.Seconds())
}

// RecordGraph records the size of the processed graph.
func (pm *PipelineMetrics) RecordGraph(nodes, buckets int) {
	pm.nodes.Set(float64(nodes))
	pm.buckets.Set(float64(buckets))
}

// RecordReweighted records how many addresses were scaled in a run.
func (pm *PipelineMetrics) RecordReweighted(count int) {
	pm.reweightedTotal.Add(float64(count))
}
