package budget

import "gravitas-hq/callisto/pkg/address"

// Validate checks the whole policy before any weight computation:
// non-overlapping entry prefixes, a supported interval length, and
// per-entry period ordering. It returns the first violation found as a
// typed error; a valid policy returns nil.
func (p Policy) Validate() error {
	prefixes := make([]address.Address, len(p.Entries))
	for i, entry := range p.Entries {
		prefixes[i] = entry.Prefix
	}
	if i, j, ok := address.CommonPrefixPair(prefixes); ok {
		return &PrefixConflictError{
			IndexA:  i,
			IndexB:  j,
			PrefixA: prefixes[i],
			PrefixB: prefixes[j],
		}
	}

	if p.Interval != Weekly {
		return &UnsupportedIntervalError{Got: p.Interval}
	}

	for _, entry := range p.Entries {
		for i := 1; i < len(entry.Periods); i++ {
			if entry.Periods[i].Start.Before(entry.Periods[i-1].Start) {
				return &PeriodOrderError{Prefix: entry.Prefix, Index: i}
			}
		}
	}

	return nil
}
