package budget

import (
	"math"
	"testing"
)

func TestNormalizerUnderBudget(t *testing.T) {
	tests := []struct {
		name    string
		weights []float64
		limit   Limit
	}{
		{"sum below limit", []float64{1, 2, 3}, Capped(10)},
		{"sum exactly at limit", []float64{4, 6}, Capped(10)},
		{"unlimited", []float64{1e12, 1e12}, Unlimited()},
		{"no weights", nil, Capped(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalizer(tt.weights, tt.limit); got != 1 {
				t.Errorf("Normalizer = %v, want exactly 1", got)
			}
		})
	}
}

func TestNormalizerOverBudget(t *testing.T) {
	weights := []float64{10, 90}
	coeff := Normalizer(weights, Capped(10))

	if want := 0.1; coeff != want {
		t.Errorf("Normalizer = %v, want %v", coeff, want)
	}

	var scaled float64
	for _, w := range weights {
		scaled += w * coeff
	}
	if scaled > 10+1e-9 {
		t.Errorf("scaled sum %v exceeds budget", scaled)
	}
	if math.Abs(scaled-10) > 1e-9 {
		t.Errorf("scaled sum %v should equal budget within tolerance", scaled)
	}
}

func TestNormalizerZeroBudget(t *testing.T) {
	if got := Normalizer([]float64{5, 5}, Capped(0)); got != 0 {
		t.Errorf("zero budget normalizer = %v, want 0", got)
	}
}

func TestNormalizerRange(t *testing.T) {
	cases := [][]float64{
		{0.001},
		{1, 1, 1, 1},
		{100, 200, 300},
	}
	for _, weights := range cases {
		coeff := Normalizer(weights, Capped(50))
		if coeff < 0 || coeff > 1 {
			t.Errorf("Normalizer(%v, 50) = %v, want within [0, 1]", weights, coeff)
		}
	}
}
