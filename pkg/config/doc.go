// Package config loads, defaults, and validates the Callisto pipeline
// configuration.
//
// Configuration is read from a YAML file, then overridden by CALLISTO_*
// environment variables, then validated. Validation collects every field
// error and reports them together rather than failing one at a time.
package config
