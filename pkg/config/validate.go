package config

import (
	"fmt"
	"strings"
)

// FieldError represents a validation error for a specific configuration
// field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g.
	// "rank.damping").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError collects all validation errors in a configuration.
type ValidationError struct {
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate validates the entire configuration, collecting every field
// error. It returns nil if the configuration is valid.
func Validate(cfg *Config) error {
	var errs []FieldError

	if cfg.Store.Path == "" {
		errs = append(errs, FieldError{Field: "store.path", Message: "must not be empty"})
	}
	if cfg.Store.BusyTimeout < 0 {
		errs = append(errs, FieldError{Field: "store.busy_timeout", Message: "must not be negative"})
	}

	if cfg.Policy.Path == "" {
		errs = append(errs, FieldError{Field: "policy.path", Message: "must not be empty"})
	}
	if cfg.Policy.DebounceInterval < 0 {
		errs = append(errs, FieldError{Field: "policy.debounce_interval", Message: "must not be negative"})
	}

	if cfg.Rank.Damping < 0 || cfg.Rank.Damping >= 1 {
		errs = append(errs, FieldError{
			Field:   "rank.damping",
			Message: fmt.Sprintf("must be in [0, 1), got %g", cfg.Rank.Damping),
		})
	}
	if cfg.Rank.MaxIterations <= 0 {
		errs = append(errs, FieldError{Field: "rank.max_iterations", Message: "must be positive"})
	}
	if cfg.Rank.Tolerance <= 0 {
		errs = append(errs, FieldError{Field: "rank.tolerance", Message: "must be positive"})
	}

	switch cfg.Export.Format {
	case "csv", "json":
	default:
		errs = append(errs, FieldError{
			Field:   "export.format",
			Message: fmt.Sprintf("must be \"csv\" or \"json\", got %q", cfg.Export.Format),
		})
	}

	switch cfg.Telemetry.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.level",
			Message: fmt.Sprintf("must be one of debug, info, warn, error; got %q", cfg.Telemetry.Logging.Level),
		})
	}
	switch cfg.Telemetry.Logging.Format {
	case "json", "text":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.format",
			Message: fmt.Sprintf("must be \"json\" or \"text\", got %q", cfg.Telemetry.Logging.Format),
		})
	}

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}
