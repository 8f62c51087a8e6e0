package budget

import (
	"errors"
	"testing"

	"gravitas-hq/callisto/pkg/address"
)

func TestValidateOK(t *testing.T) {
	policy := Policy{
		Interval: Weekly,
		Entries: []Entry{
			{Prefix: address.Parse("forge/a"), Periods: []Period{capped(0, 10), capped(100, 20)}},
			{Prefix: address.Parse("forge/b")},
		},
	}
	if err := policy.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidatePrefixConflict(t *testing.T) {
	policy := Policy{
		Interval: Weekly,
		Entries: []Entry{
			{Prefix: address.Parse("")}, // root overlaps everything
			{Prefix: address.Parse("foo")},
		},
	}

	err := policy.Validate()
	var conflict *PrefixConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Validate() = %v, want PrefixConflictError", err)
	}
	if conflict.IndexA != 0 || conflict.IndexB != 1 {
		t.Errorf("conflict indices = (%d,%d), want (0,1)", conflict.IndexA, conflict.IndexB)
	}
}

func TestValidateDuplicatePrefixesConflict(t *testing.T) {
	policy := Policy{
		Interval: Weekly,
		Entries: []Entry{
			{Prefix: address.Parse("forge/repo")},
			{Prefix: address.Parse("forge/repo")},
		},
	}

	var conflict *PrefixConflictError
	if !errors.As(policy.Validate(), &conflict) {
		t.Fatal("duplicate prefixes should conflict")
	}
}

func TestValidateNestedPrefixesRejected(t *testing.T) {
	// A tighter budget nested inside a looser parent is unsupported by
	// design and must fail validation rather than be approximated.
	policy := Policy{
		Interval: Weekly,
		Entries: []Entry{
			{Prefix: address.Parse("forge"), Periods: []Period{capped(0, 100)}},
			{Prefix: address.Parse("forge/repo"), Periods: []Period{capped(0, 10)}},
		},
	}

	var conflict *PrefixConflictError
	if !errors.As(policy.Validate(), &conflict) {
		t.Fatal("nested prefixes should be rejected")
	}
}

func TestValidateUnsupportedInterval(t *testing.T) {
	policy := Policy{Interval: IntervalLength("DAILY")}

	err := policy.Validate()
	var unsupported *UnsupportedIntervalError
	if !errors.As(err, &unsupported) {
		t.Fatalf("Validate() = %v, want UnsupportedIntervalError", err)
	}
	if unsupported.Got != "DAILY" {
		t.Errorf("Got = %q, want DAILY", unsupported.Got)
	}
}

func TestValidatePeriodsOutOfOrder(t *testing.T) {
	policy := Policy{
		Interval: Weekly,
		Entries: []Entry{
			{Prefix: address.Parse("forge"), Periods: []Period{capped(50, 1), capped(25, 2)}},
		},
	}

	err := policy.Validate()
	var order *PeriodOrderError
	if !errors.As(err, &order) {
		t.Fatalf("Validate() = %v, want PeriodOrderError", err)
	}
	if order.Prefix.String() != "forge" {
		t.Errorf("offending prefix = %q, want forge", order.Prefix)
	}
	if order.Index != 1 {
		t.Errorf("offending index = %d, want 1", order.Index)
	}
}

func TestValidateEqualStartsAllowed(t *testing.T) {
	policy := Policy{
		Interval: Weekly,
		Entries: []Entry{
			{Prefix: address.Parse("forge"), Periods: []Period{capped(10, 1), capped(10, 2)}},
		},
	}
	if err := policy.Validate(); err != nil {
		t.Errorf("equal start times are non-decreasing, got %v", err)
	}
}
