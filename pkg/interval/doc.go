// Package interval partitions graph nodes into ordered, non-overlapping
// weekly time buckets by node timestamp.
//
// Buckets are aligned to whole weeks of Unix time, so the same timestamp
// always lands in the same bucket regardless of which other nodes are
// present. The partition covers every input node exactly once and is
// returned in ascending bucket-start order.
package interval
