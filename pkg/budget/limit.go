package budget

import "fmt"

// Limit is the weight capacity of one interval: either a finite
// non-negative amount or Unlimited. The distinguished unlimited variant
// avoids threading a literal infinity through arithmetic.
type Limit struct {
	amount  float64
	bounded bool
}

// Unlimited returns the limit that never constrains.
func Unlimited() Limit {
	return Limit{}
}

// Capped returns a finite limit of the given amount. Amounts must be
// non-negative; a zero limit zeroes all matching weights.
func Capped(amount float64) Limit {
	return Limit{amount: amount, bounded: true}
}

// IsUnlimited reports whether the limit never constrains.
func (l Limit) IsUnlimited() bool {
	return !l.bounded
}

// Amount returns the finite limit amount. ok is false for Unlimited, in
// which case amount is meaningless.
func (l Limit) Amount() (amount float64, ok bool) {
	return l.amount, l.bounded
}

// String renders the limit for errors and logs.
func (l Limit) String() string {
	if !l.bounded {
		return "unlimited"
	}
	return fmt.Sprintf("%g", l.amount)
}
