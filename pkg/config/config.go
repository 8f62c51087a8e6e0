package config

import "time"

// Config is the root configuration structure for the Callisto pipeline.
type Config struct {
	// Store contains persistence configuration for the graph and score
	// database.
	Store StoreConfig `yaml:"store"`

	// Policy contains the budget policy source configuration.
	Policy PolicyConfig `yaml:"policy"`

	// Rank contains score-propagation parameters.
	Rank RankConfig `yaml:"rank"`

	// Export controls optional score export after each run.
	Export ExportConfig `yaml:"export"`

	// Serve contains long-running mode configuration: run schedule and
	// metrics endpoint.
	Serve ServeConfig `yaml:"serve"`

	// Telemetry contains logging and metrics configuration.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// StoreConfig configures the SQLite store.
type StoreConfig struct {
	// Path is the SQLite database file holding the graph and scores.
	// Default: "data/callisto.db"
	Path string `yaml:"path"`

	// BusyTimeout is how long to wait for database locks before failing.
	// Default: 5s
	BusyTimeout time.Duration `yaml:"busy_timeout"`
}

// PolicyConfig configures the budget policy source.
type PolicyConfig struct {
	// Path is the budget policy YAML file.
	// Default: "budgets.yaml"
	Path string `yaml:"path"`

	// Watch enables re-running the pipeline when the policy file changes
	// (serve mode only).
	// Default: true
	Watch bool `yaml:"watch"`

	// DebounceInterval is the quiet period after a file change before a
	// reload fires.
	// Default: 100ms
	DebounceInterval time.Duration `yaml:"debounce_interval"`
}

// RankConfig configures score propagation.
type RankConfig struct {
	// Damping is the probability of following an edge rather than
	// teleporting to the seed distribution. Must be in [0, 1).
	// Default: 0.85
	Damping float64 `yaml:"damping"`

	// MaxIterations bounds the power iteration.
	// Default: 200
	MaxIterations int `yaml:"max_iterations"`

	// Tolerance is the L1 convergence threshold.
	// Default: 1e-9
	Tolerance float64 `yaml:"tolerance"`
}

// ExportConfig controls score export after each run.
type ExportConfig struct {
	// Path is the file scores are written to after each run. Empty
	// disables export.
	Path string `yaml:"path"`

	// Format selects the export encoding: "csv" or "json".
	// Default: "csv"
	Format string `yaml:"format"`
}

// ServeConfig configures the long-running serve mode.
type ServeConfig struct {
	// Schedule is a cron expression controlling periodic pipeline runs
	// (e.g. "0 3 * * 1" for Mondays at 3 AM). Empty disables scheduled
	// runs; the pipeline then runs only on policy changes.
	Schedule string `yaml:"schedule"`

	// MetricsAddress is the listen address for the Prometheus /metrics
	// endpoint. Empty disables the endpoint.
	// Default: "127.0.0.1:9090"
	MetricsAddress string `yaml:"metrics_address"`
}

// TelemetryConfig contains observability configuration.
type TelemetryConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the output format: "json" or "text".
	// Default: "text"
	Format string `yaml:"format"`
}

// MetricsConfig configures Prometheus metrics.
type MetricsConfig struct {
	// Enabled controls whether metrics are collected.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Namespace is the Prometheus metric namespace.
	// Default: "callisto"
	Namespace string `yaml:"namespace"`

	// Subsystem is the Prometheus metric subsystem.
	// Default: "pipeline"
	Subsystem string `yaml:"subsystem"`
}
