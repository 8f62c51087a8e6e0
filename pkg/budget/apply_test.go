package budget

import (
	"errors"
	"math"
	"testing"
	"time"

	"gravitas-hq/callisto/pkg/address"
	"gravitas-hq/callisto/pkg/graph"
	"gravitas-hq/callisto/pkg/interval"
)

func node(addr string, ts int64) graph.Node {
	return graph.Node{Address: address.Parse(addr), Timestamp: time.Unix(ts, 0).UTC()}
}

func wholeSpace(periods ...Period) Policy {
	return Policy{
		Interval: Weekly,
		Entries:  []Entry{{Prefix: address.Parse(""), Periods: periods}},
	}
}

func approx(t *testing.T, got, want float64, label string) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %v, want %v", label, got, want)
	}
}

func TestApplyScalesOverBudgetBucket(t *testing.T) {
	nodes := []graph.Node{node("forge/a", 10), node("forge/b", 20)} // same week
	g := graph.New(nodes, nil)
	wg := graph.NewWeighted(g, map[string]float64{"forge/a": 10, "forge/b": 90})
	policy := wholeSpace(Period{Start: at(math.MinInt32), Limit: Capped(10)})

	out, err := Apply(wg, policy, interval.Weekly(nodes))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	approx(t, out.Weight(address.Parse("forge/a")), 1, "weight a")
	approx(t, out.Weight(address.Parse("forge/b")), 9, "weight b")
}

func TestApplyPerBucketIndependence(t *testing.T) {
	week := int64(interval.Week / time.Second)
	nodes := []graph.Node{
		node("forge/a", 0),    // bucket 1, weight 5: under budget
		node("forge/b", week), // bucket 2, weight 15: over budget
	}
	g := graph.New(nodes, nil)
	wg := graph.NewWeighted(g, map[string]float64{"forge/a": 5, "forge/b": 15})
	policy := wholeSpace(capped(0, 10))

	out, err := Apply(wg, policy, interval.Weekly(nodes))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	// Bucket 1 is under budget and keeps its weight; no rollover of the
	// unused allowance into bucket 2.
	approx(t, out.Weight(address.Parse("forge/a")), 5, "bucket 1 weight")
	approx(t, out.Weight(address.Parse("forge/b")), 10, "bucket 2 weight")
}

func TestApplyInputUnchanged(t *testing.T) {
	nodes := []graph.Node{node("a", 0), node("b", 1)}
	g := graph.New(nodes, nil)
	wg := graph.NewWeighted(g, map[string]float64{"a": 50, "b": 50})
	policy := wholeSpace(capped(0, 10))

	out, err := Apply(wg, policy, interval.Weekly(nodes))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	approx(t, wg.Weight(address.Parse("a")), 50, "original weight a")
	approx(t, wg.Weight(address.Parse("b")), 50, "original weight b")
	approx(t, out.Weight(address.Parse("a")), 5, "adjusted weight a")
	if out.Graph() != wg.Graph() {
		t.Error("result should share the input Graph")
	}
}

func TestApplyDefaultWeightIsOne(t *testing.T) {
	// Four unweighted nodes in one week sum to 4 against a budget of 2.
	nodes := []graph.Node{node("a", 0), node("b", 1), node("c", 2), node("d", 3)}
	g := graph.New(nodes, nil)
	wg := graph.NewWeighted(g, nil)
	policy := wholeSpace(capped(0, 2))

	out, err := Apply(wg, policy, interval.Weekly(nodes))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	for _, n := range nodes {
		approx(t, out.Weight(n.Address), 0.5, "weight "+n.Address.String())
	}
}

func TestApplyEmptyPeriodsNeverScales(t *testing.T) {
	nodes := []graph.Node{node("a", 0)}
	g := graph.New(nodes, nil)
	wg := graph.NewWeighted(g, map[string]float64{"a": 1e9})
	policy := wholeSpace() // no periods: permanently unconstrained

	out, err := Apply(wg, policy, interval.Weekly(nodes))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	approx(t, out.Weight(address.Parse("a")), 1e9, "unconstrained weight")
}

func TestApplyPrefixFiltering(t *testing.T) {
	nodes := []graph.Node{
		node("forge/a", 0),
		node("forge/b", 1),
		node("other/c", 2), // outside the entry's prefix
	}
	g := graph.New(nodes, nil)
	wg := graph.NewWeighted(g, map[string]float64{
		"forge/a": 30, "forge/b": 70, "other/c": 100,
	})
	policy := Policy{
		Interval: Weekly,
		Entries:  []Entry{{Prefix: address.Parse("forge"), Periods: []Period{capped(0, 10)}}},
	}

	out, err := Apply(wg, policy, interval.Weekly(nodes))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	approx(t, out.Weight(address.Parse("forge/a")), 3, "matched weight a")
	approx(t, out.Weight(address.Parse("forge/b")), 7, "matched weight b")
	approx(t, out.Weight(address.Parse("other/c")), 100, "unmatched weight")
}

func TestApplyMultipleDisjointEntries(t *testing.T) {
	nodes := []graph.Node{
		node("forge/a/1", 0),
		node("forge/b/1", 1),
		node("forge/b/2", 2),
	}
	g := graph.New(nodes, nil)
	wg := graph.NewWeighted(g, map[string]float64{
		"forge/a/1": 20,
		"forge/b/1": 10,
		"forge/b/2": 30,
	})
	policy := Policy{
		Interval: Weekly,
		Entries: []Entry{
			{Prefix: address.Parse("forge/a"), Periods: []Period{capped(0, 10)}},
			{Prefix: address.Parse("forge/b"), Periods: []Period{capped(0, 20)}},
		},
	}

	out, err := Apply(wg, policy, interval.Weekly(nodes))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	approx(t, out.Weight(address.Parse("forge/a/1")), 10, "entry a")
	approx(t, out.Weight(address.Parse("forge/b/1")), 5, "entry b node 1")
	approx(t, out.Weight(address.Parse("forge/b/2")), 15, "entry b node 2")
}

func TestApplyZeroBudgetZeroesBucket(t *testing.T) {
	nodes := []graph.Node{node("a", 0), node("b", 1)}
	g := graph.New(nodes, nil)
	wg := graph.NewWeighted(g, map[string]float64{"a": 2, "b": 3})
	policy := wholeSpace(capped(0, 0))

	out, err := Apply(wg, policy, interval.Weekly(nodes))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	approx(t, out.Weight(address.Parse("a")), 0, "zeroed weight a")
	approx(t, out.Weight(address.Parse("b")), 0, "zeroed weight b")
}

func TestApplyValidationBeforeComputation(t *testing.T) {
	nodes := []graph.Node{node("foo/x", 0)}
	g := graph.New(nodes, nil)
	wg := graph.NewWeighted(g, map[string]float64{"foo/x": 100})

	tests := []struct {
		name   string
		policy Policy
		target any
	}{
		{
			"prefix conflict",
			Policy{Interval: Weekly, Entries: []Entry{
				{Prefix: address.Parse("")},
				{Prefix: address.Parse("foo")},
			}},
			new(*PrefixConflictError),
		},
		{
			"unsupported interval",
			Policy{Interval: IntervalLength("DAILY")},
			new(*UnsupportedIntervalError),
		},
		{
			"periods out of order",
			Policy{Interval: Weekly, Entries: []Entry{
				{Prefix: address.Parse("foo"), Periods: []Period{capped(50, 1), capped(25, 2)}},
			}},
			new(*PeriodOrderError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Apply(wg, tt.policy, interval.Weekly(nodes))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if out != nil {
				t.Error("failed Apply must not return a graph")
			}
			if !errors.As(err, tt.target) {
				t.Errorf("error %v is not the expected type", err)
			}
			// Inputs untouched on failure.
			if got := wg.Weight(address.Parse("foo/x")); got != 100 {
				t.Errorf("input weight changed to %v on validation failure", got)
			}
		})
	}
}
