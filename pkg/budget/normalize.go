package budget

// Normalizer computes the coefficient that scales a bucket's matching
// weights to fit within limit. If the weights already fit (or the limit is
// Unlimited) the coefficient is exactly 1; otherwise it is limit/sum, so
// multiplying every weight by it makes the new sum equal the limit up to
// floating-point rounding, never exceeding it. A zero limit yields 0,
// zeroing all matching weights.
func Normalizer(weights []float64, limit Limit) float64 {
	amount, bounded := limit.Amount()
	if !bounded {
		return 1
	}

	var sum float64
	for _, w := range weights {
		sum += w
	}
	if sum <= amount {
		return 1
	}
	return amount / sum
}
