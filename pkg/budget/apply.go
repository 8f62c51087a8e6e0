package budget

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"gravitas-hq/callisto/pkg/graph"
	"gravitas-hq/callisto/pkg/interval"
)

// workUnit is one independent (entry, bucket) pair. Prefix disjointness and
// bucket time-disjointness guarantee no two units touch the same address in
// the same bucket, so units share nothing but the read-only inputs.
type workUnit struct {
	entry  *Entry
	bucket *interval.Bucket
}

// Apply enforces the policy against wg, whose nodes have already been
// partitioned into buckets, and returns a new WeightedGraph with the
// adjusted weight table. The input graph is never mutated.
//
// Validation is all-or-nothing: any policy violation is returned as a typed
// error (PrefixConflictError, UnsupportedIntervalError, PeriodOrderError)
// before any weight is computed.
func Apply(wg *graph.WeightedGraph, policy Policy, buckets []interval.Bucket) (*graph.WeightedGraph, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	units := make([]workUnit, 0, len(policy.Entries)*len(buckets))
	for e := range policy.Entries {
		for b := range buckets {
			units = append(units, workUnit{entry: &policy.Entries[e], bucket: &buckets[b]})
		}
	}

	results := make([][]Reweight, len(units))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, unit := range units {
		i, unit := i, unit
		g.Go(func() error {
			results[i] = reweightUnit(wg, unit)
			return nil
		})
	}
	// Unit computation is pure; the group exists only to bound fan-out and
	// join before materialization.
	_ = g.Wait()

	weights := wg.Weights()
	for _, reweights := range results {
		for _, rw := range reweights {
			weights[rw.Address.String()] = wg.Weight(rw.Address) * rw.Coefficient
		}
	}
	return wg.WithWeights(weights), nil
}

// reweightUnit computes the pending reweights for one (entry, bucket) pair.
// It returns nil when the bucket's matching weights already fit the budget.
func reweightUnit(wg *graph.WeightedGraph, unit workUnit) []Reweight {
	var matched []graph.Node
	for _, n := range unit.bucket.Nodes {
		if n.Address.HasPrefix(unit.entry.Prefix) {
			matched = append(matched, n)
		}
	}
	if len(matched) == 0 {
		return nil
	}

	weights := make([]float64, len(matched))
	for i, n := range matched {
		weights[i] = wg.Weight(n.Address)
	}

	limit := ResolveLimit(unit.entry.Periods, unit.bucket.Start)
	coeff := Normalizer(weights, limit)
	if coeff == 1 {
		return nil
	}

	// Per-bucket-uniform scaling: every matching address gets the same
	// coefficient regardless of its individual weight.
	reweights := make([]Reweight, len(matched))
	for i, n := range matched {
		reweights[i] = Reweight{Address: n.Address, Coefficient: coeff}
	}
	return reweights
}
