// Package budget enforces per-prefix weight budgets over a weighted
// contribution graph.
//
// # Overview
//
// A budget Policy declares, for each address prefix, how much aggregate
// weight may exist per weekly interval among the nodes matching that prefix.
// Apply validates the policy, then for each (entry, bucket) pair sums the
// effective weights of matching nodes and, where the sum exceeds the
// interval's budget, scales every matching weight by a single coefficient so
// the new sum meets the budget exactly.
//
// # Invariants
//
//   - Entry prefixes are pairwise non-overlapping: no prefix may contain
//     another (equality included). Nested budgets are rejected at validation
//     time, not approximated.
//   - Each entry's periods are sorted ascending by start time (validated).
//   - Budgets are enforced independently per bucket; unused budget never
//     rolls over.
//   - Apply never mutates its inputs. The result shares the input Graph but
//     owns a fresh weight table.
//
// Because prefixes are disjoint and buckets are disjoint in time, every
// (entry, bucket) unit of work is independent; Apply evaluates them
// concurrently and merges the results in a single materialization pass.
package budget
