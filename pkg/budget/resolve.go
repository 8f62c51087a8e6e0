package budget

import "time"

// ResolveLimit returns the budget in effect at t given an entry's periods,
// which must already be sorted ascending by start time (Policy.Validate
// enforces this; ResolveLimit assumes it).
//
// The last period whose start is at or before t wins; if several periods
// share a start time, the one appearing later in the sequence wins. An
// empty period list, or one whose periods all start after t, resolves to
// Unlimited.
func ResolveLimit(periods []Period, t time.Time) Limit {
	limit := Unlimited()
	for _, p := range periods {
		if p.Start.After(t) {
			break
		}
		limit = p.Limit
	}
	return limit
}
