package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"gravitas-hq/callisto/pkg/cli"
	"gravitas-hq/callisto/pkg/pipeline"
	"gravitas-hq/callisto/pkg/policy"
	"gravitas-hq/callisto/pkg/store"
	"gravitas-hq/callisto/pkg/telemetry/logging"
	"gravitas-hq/callisto/pkg/telemetry/metrics"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the scoring pipeline continuously",
	Long: `Run the scoring pipeline as a long-lived process.

The pipeline runs once at startup, then again on the configured cron
schedule and whenever the policy file changes on disk (debounced). A
Prometheus /metrics endpoint is served on the configured address.

Examples:
  # Serve with default config
  callisto serve

  # Serve with custom config
  callisto serve --config /etc/callisto/config.yaml`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}

	logger, err := logging.Setup(cfg.Telemetry.Logging, os.Stderr)
	if err != nil {
		return cli.NewConfigError("telemetry.logging", err.Error())
	}

	st, err := store.OpenWithConfig(store.Config{
		Path:        cfg.Store.Path,
		BusyTimeout: cfg.Store.BusyTimeout,
	})
	if err != nil {
		return cli.NewCommandError("serve", err)
	}
	defer st.Close()

	var collector *metrics.Collector
	if cfg.Telemetry.Metrics.Enabled {
		collector = metrics.NewCollector(cfg.Telemetry.Metrics, prometheus.NewRegistry())
	}

	runner := pipeline.New(cfg, st, collector, logger)
	ctx := cli.SetupSignalHandler()

	// Metrics endpoint.
	var metricsServer *http.Server
	if collector != nil && cfg.Serve.MetricsAddress != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", collector.Handler())
		metricsServer = &http.Server{
			Addr:         cfg.Serve.MetricsAddress,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		}
		go func() {
			logger.Info("metrics endpoint listening", "address", cfg.Serve.MetricsAddress)
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("metrics server failed", "error", err)
			}
		}()
	}

	// Startup run. Failures are logged, not fatal: a broken policy can be
	// corrected while the process keeps serving.
	if _, err := runner.Run(ctx); err != nil {
		logger.Error("startup run failed", "error", err)
	}

	// Scheduled runs.
	if cfg.Serve.Schedule != "" {
		scheduler := cron.New()
		_, err := scheduler.AddFunc(cfg.Serve.Schedule, func() {
			if _, err := runner.Run(ctx); err != nil {
				logger.Error("scheduled run failed", "error", err)
			}
		})
		if err != nil {
			return cli.NewConfigError("serve.schedule", fmt.Sprintf("invalid cron schedule %q: %v", cfg.Serve.Schedule, err))
		}
		scheduler.Start()
		defer scheduler.Stop()
		logger.Info("scheduler started", "schedule", cfg.Serve.Schedule)
	}

	// Policy hot reload.
	if cfg.Policy.Watch {
		watcher, err := policy.NewWatcher(cfg.Policy.Path, cfg.Policy.DebounceInterval, logger)
		if err != nil {
			return cli.NewCommandError("serve", err)
		}
		defer watcher.Close()
		go func() {
			if err := watcher.Watch(ctx, func() error {
				logger.Info("policy file changed, re-running pipeline")
				_, err := runner.Run(ctx)
				return err
			}); err != nil {
				logger.Error("policy watcher exited", "error", err)
			}
		}()
	}

	<-ctx.Done()
	logger.Info("shutting down")

	if metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown failed", "error", err)
		}
	}
	return nil
}
