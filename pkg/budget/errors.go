package budget

import (
	"fmt"

	"gravitas-hq/callisto/pkg/address"
)

// PrefixConflictError reports two policy entries whose prefixes overlap:
// one is a prefix of the other, or they are equal. Overlapping (nested)
// budgets are unsupported.
type PrefixConflictError struct {
	IndexA, IndexB   int
	PrefixA, PrefixB address.Address
}

// Error returns the error message.
func (e *PrefixConflictError) Error() string {
	return fmt.Sprintf("budget entries %d and %d have overlapping prefixes %q and %q",
		e.IndexA, e.IndexB, e.PrefixA, e.PrefixB)
}

// UnsupportedIntervalError reports a policy declaring an interval length
// other than Weekly.
type UnsupportedIntervalError struct {
	Got IntervalLength
}

// Error returns the error message.
func (e *UnsupportedIntervalError) Error() string {
	return fmt.Sprintf("unsupported interval length %q (only %q is supported)", e.Got, Weekly)
}

// PeriodOrderError reports an entry whose periods are not sorted ascending
// by start time. Index is the position of the first period that starts
// before its predecessor.
type PeriodOrderError struct {
	Prefix address.Address
	Index  int
}

// Error returns the error message.
func (e *PeriodOrderError) Error() string {
	return fmt.Sprintf("budget entry %q: period %d starts before period %d; periods must be sorted by start time",
		e.Prefix, e.Index, e.Index-1)
}
