package config

import "time"

// Default values for configuration fields.
const (
	DefaultStorePath        = "data/callisto.db"
	DefaultStoreBusyTimeout = 5 * time.Second

	DefaultPolicyPath     = "budgets.yaml"
	DefaultPolicyWatch    = true
	DefaultPolicyDebounce = 100 * time.Millisecond

	DefaultRankDamping       = 0.85
	DefaultRankMaxIterations = 200
	DefaultRankTolerance     = 1e-9

	DefaultExportFormat = "csv"

	DefaultMetricsAddress = "127.0.0.1:9090"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	DefaultMetricsEnabled   = true
	DefaultMetricsNamespace = "callisto"
	DefaultMetricsSubsystem = "pipeline"
)

// ApplyDefaults fills unset fields with their default values.
func ApplyDefaults(cfg *Config) {
	if cfg.Store.Path == "" {
		cfg.Store.Path = DefaultStorePath
	}
	if cfg.Store.BusyTimeout == 0 {
		cfg.Store.BusyTimeout = DefaultStoreBusyTimeout
	}

	if cfg.Policy.Path == "" {
		cfg.Policy.Path = DefaultPolicyPath
	}
	if cfg.Policy.DebounceInterval == 0 {
		cfg.Policy.DebounceInterval = DefaultPolicyDebounce
	}

	if cfg.Rank.Damping == 0 {
		cfg.Rank.Damping = DefaultRankDamping
	}
	if cfg.Rank.MaxIterations == 0 {
		cfg.Rank.MaxIterations = DefaultRankMaxIterations
	}
	if cfg.Rank.Tolerance == 0 {
		cfg.Rank.Tolerance = DefaultRankTolerance
	}

	if cfg.Export.Format == "" {
		cfg.Export.Format = DefaultExportFormat
	}

	if cfg.Serve.MetricsAddress == "" {
		cfg.Serve.MetricsAddress = DefaultMetricsAddress
	}

	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLogLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLogFormat
	}
	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Telemetry.Metrics.Subsystem == "" {
		cfg.Telemetry.Metrics.Subsystem = DefaultMetricsSubsystem
	}
}

// NewDefault returns a configuration with every field at its default.
func NewDefault() *Config {
	cfg := &Config{
		Policy:    PolicyConfig{Watch: DefaultPolicyWatch},
		Telemetry: TelemetryConfig{Metrics: MetricsConfig{Enabled: DefaultMetricsEnabled}},
	}
	ApplyDefaults(cfg)
	return cfg
}
