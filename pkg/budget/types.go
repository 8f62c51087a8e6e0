package budget

import (
	"time"

	"gravitas-hq/callisto/pkg/address"
)

// IntervalLength selects the bucketing granularity of a policy.
type IntervalLength string

// Weekly is the only supported interval length.
const Weekly IntervalLength = "WEEKLY"

// Period declares a budget effective from Start onward, until superseded by
// a later period.
type Period struct {
	Start time.Time
	Limit Limit
}

// Entry caps the aggregate per-interval weight of all nodes matching Prefix.
// Periods must be sorted ascending by Start; Apply validates this. An entry
// with no periods is permanently unconstrained.
type Entry struct {
	Prefix  address.Address
	Periods []Period
}

// Policy is a complete budget configuration. Entry prefixes must be
// pairwise non-overlapping; Apply validates this before any computation.
type Policy struct {
	Interval IntervalLength
	Entries  []Entry
}

// Reweight records a pending scale factor for one address. Reweights are
// produced per (entry, bucket) work unit and consumed in a single
// materialization pass; they never outlive one Apply call.
type Reweight struct {
	Address     address.Address
	Coefficient float64
}
