// Package logging configures structured logging for the pipeline.
//
// Logging is built on log/slog. Setup installs a process-wide default
// logger from configuration; components take child loggers scoped with a
// "component" attribute so log lines can be filtered per stage.
package logging
