package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"gravitas-hq/callisto/pkg/budget"
	"gravitas-hq/callisto/pkg/config"
	"gravitas-hq/callisto/pkg/graph"
	"gravitas-hq/callisto/pkg/interval"
	"gravitas-hq/callisto/pkg/policy"
	"gravitas-hq/callisto/pkg/rank"
	"gravitas-hq/callisto/pkg/store"
	"gravitas-hq/callisto/pkg/telemetry/metrics"
)

// Runner executes scoring runs against one store and one policy file.
type Runner struct {
	cfg       *config.Config
	store     *store.Store
	collector *metrics.Collector
	logger    *slog.Logger
}

// Result summarizes one completed run.
type Result struct {
	// RunID keys the run's scores in the store.
	RunID string

	// Nodes and Buckets describe the processed graph.
	Nodes   int
	Buckets int

	// Reweighted is the number of addresses whose weight was scaled by
	// budget enforcement.
	Reweighted int

	// Scores is the computed score distribution, keyed by address.
	Scores map[string]float64

	// Duration is the wall-clock run time.
	Duration time.Duration
}

// New creates a Runner. The collector may be nil to disable metrics; the
// logger may be nil to use the process default.
func New(cfg *config.Config, st *store.Store, collector *metrics.Collector, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		cfg:       cfg,
		store:     st,
		collector: collector,
		logger:    logger.With("component", "pipeline"),
	}
}

// Run executes one scoring run: load policy and graph, enforce budgets,
// propagate scores, persist and (optionally) export them.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	runID := uuid.NewString()
	start := time.Now()
	logger := r.logger.With("run_id", runID)

	result, err := r.run(ctx, runID, logger)
	duration := time.Since(start)

	status := "success"
	if err != nil {
		status = "error"
		logger.Error("run failed", "error", err, "duration", duration)
	} else {
		result.Duration = duration
		logger.Info("run complete",
			"nodes", result.Nodes,
			"buckets", result.Buckets,
			"reweighted", result.Reweighted,
			"duration", duration,
		)
	}
	if r.collector != nil {
		r.collector.Pipeline().RecordRun(status, duration)
	}
	return result, err
}

func (r *Runner) run(ctx context.Context, runID string, logger *slog.Logger) (*Result, error) {
	pol, err := policy.Load(r.cfg.Policy.Path)
	if err != nil {
		return nil, err
	}

	wg, err := r.store.LoadGraph(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load graph: %w", err)
	}

	nodes := wg.Graph().Nodes()
	buckets := interval.Weekly(nodes)
	logger.Debug("graph loaded", "nodes", len(nodes), "buckets", len(buckets))

	adjusted, err := budget.Apply(wg, pol, buckets)
	if err != nil {
		return nil, fmt.Errorf("budget enforcement failed: %w", err)
	}
	reweighted := countReweighted(wg, adjusted)

	scores, err := rank.Scores(adjusted, rank.Config{
		Damping:       r.cfg.Rank.Damping,
		MaxIterations: r.cfg.Rank.MaxIterations,
		Tolerance:     r.cfg.Rank.Tolerance,
	})
	if err != nil {
		return nil, fmt.Errorf("score propagation failed: %w", err)
	}

	if err := r.store.SaveScores(ctx, runID, scores); err != nil {
		return nil, fmt.Errorf("failed to persist scores: %w", err)
	}

	if r.cfg.Export.Path != "" {
		if err := exportScores(r.cfg.Export, scores); err != nil {
			return nil, fmt.Errorf("failed to export scores: %w", err)
		}
		logger.Debug("scores exported", "path", r.cfg.Export.Path, "format", r.cfg.Export.Format)
	}

	if r.collector != nil {
		r.collector.Pipeline().RecordGraph(len(nodes), len(buckets))
		r.collector.Pipeline().RecordReweighted(reweighted)
	}

	return &Result{
		RunID:      runID,
		Nodes:      len(nodes),
		Buckets:    len(buckets),
		Reweighted: reweighted,
		Scores:     scores,
	}, nil
}

// countReweighted counts node addresses whose effective weight changed
// between the original and budget-adjusted graphs.
func countReweighted(before, after *graph.WeightedGraph) int {
	count := 0
	for _, n := range before.Graph().Nodes() {
		if before.Weight(n.Address) != after.Weight(n.Address) {
			count++
		}
	}
	return count
}

func exportScores(cfg config.ExportConfig, scores map[string]float64) error {
	f, err := os.Create(cfg.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch cfg.Format {
	case "json":
		err = store.WriteScoresJSON(f, scores)
	default:
		err = store.WriteScoresCSV(f, scores)
	}
	if err != nil {
		return err
	}
	return f.Close()
}
