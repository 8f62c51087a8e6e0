package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path.
// Unset fields take their defaults (boolean defaults are honored by
// decoding over a defaulted config, so an absent key differs from an
// explicit false). The result is validated before being returned.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	cfg := NewDefault()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}
	ApplyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and then
// applies CALLISTO_* environment variable overrides. Environment variables
// always take precedence over file-based configuration.
//
// The loading sequence is:
//  1. Load YAML from file (with defaults)
//  2. Apply environment variable overrides
//  3. Re-validate the final configuration
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides applies CALLISTO_SECTION_FIELD environment variables.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("CALLISTO_STORE_PATH"); val != "" {
		cfg.Store.Path = val
	}
	if val := os.Getenv("CALLISTO_STORE_BUSY_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Store.BusyTimeout = d
		}
	}

	if val := os.Getenv("CALLISTO_POLICY_PATH"); val != "" {
		cfg.Policy.Path = val
	}
	if val := os.Getenv("CALLISTO_POLICY_WATCH"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Policy.Watch = b
		}
	}

	if val := os.Getenv("CALLISTO_RANK_DAMPING"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			cfg.Rank.Damping = f
		}
	}
	if val := os.Getenv("CALLISTO_RANK_MAX_ITERATIONS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Rank.MaxIterations = i
		}
	}

	if val := os.Getenv("CALLISTO_EXPORT_PATH"); val != "" {
		cfg.Export.Path = val
	}
	if val := os.Getenv("CALLISTO_EXPORT_FORMAT"); val != "" {
		cfg.Export.Format = val
	}

	if val := os.Getenv("CALLISTO_SERVE_SCHEDULE"); val != "" {
		cfg.Serve.Schedule = val
	}
	if val := os.Getenv("CALLISTO_SERVE_METRICS_ADDRESS"); val != "" {
		cfg.Serve.MetricsAddress = val
	}

	if val := os.Getenv("CALLISTO_LOG_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv("CALLISTO_LOG_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
}
