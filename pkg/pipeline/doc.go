// Package pipeline orchestrates one scoring run end to end: load the
// stored graph, enforce the budget policy, propagate scores, and persist
// the results.
//
// A run is all-or-nothing: policy validation failures abort before any
// score is computed or written, and the stored graph is never modified by
// a run. Each run carries a UUID run ID that keys its scores in the store
// and tags its log lines.
package pipeline
