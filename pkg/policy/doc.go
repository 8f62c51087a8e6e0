// Package policy loads budget policy documents from YAML files and converts
// them into budget.Policy values.
//
// # Document format
//
//	interval: WEEKLY
//	entries:
//	  - prefix: forge/repo
//	    periods:
//	      - start: 2026-01-05T00:00:00Z
//	        budget: 500
//	      - start: 2026-03-02T00:00:00Z
//	        budget: null   # unlimited from this point on
//
// A null or omitted budget means the period is unconstrained. Loading
// performs syntactic validation only (parseable times, non-negative
// budgets); semantic validation (prefix overlap, period ordering, interval
// support) is budget.Policy.Validate's job and runs again inside
// budget.Apply.
//
// The package also provides a Watcher that triggers a callback when the
// policy file changes on disk, with debouncing to absorb editor write
// storms.
package policy
