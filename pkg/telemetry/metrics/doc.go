// Package metrics provides Prometheus metrics for the scoring pipeline.
//
// A Collector owns its own registry and the per-concern metric groups.
// In serve mode the collector's Handler is mounted on the configured
// metrics address; one-shot runs still record metrics but never expose
// them.
package metrics
