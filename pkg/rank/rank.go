package rank

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"gravitas-hq/callisto/pkg/graph"
)

// Config controls the power iteration.
type Config struct {
	// Damping is the probability of following an edge rather than
	// teleporting to the seed distribution. Must be in [0, 1).
	// Default: 0.85
	Damping float64

	// MaxIterations bounds the power iteration.
	// Default: 200
	MaxIterations int

	// Tolerance is the L1 convergence threshold between successive
	// iterations.
	// Default: 1e-9
	Tolerance float64
}

// DefaultConfig returns the standard iteration parameters.
func DefaultConfig() Config {
	return Config{
		Damping:       0.85,
		MaxIterations: 200,
		Tolerance:     1e-9,
	}
}

// Scores computes the stationary distribution over wg's nodes and returns
// it keyed by address text form. The seed (teleport) distribution is the
// normalized node weight table, so budget enforcement directly shapes where
// score is minted. Returns an error if an edge references an address with
// no node, if the damping factor is out of range, or if the iteration does
// not converge within MaxIterations.
func Scores(wg *graph.WeightedGraph, cfg Config) (map[string]float64, error) {
	if cfg.Damping == 0 && cfg.MaxIterations == 0 && cfg.Tolerance == 0 {
		cfg = DefaultConfig()
	}
	if cfg.Damping < 0 || cfg.Damping >= 1 {
		return nil, fmt.Errorf("damping must be in [0, 1), got %g", cfg.Damping)
	}

	nodes := wg.Graph().Nodes()
	n := len(nodes)
	if n == 0 {
		return map[string]float64{}, nil
	}

	index := make(map[string]int, n)
	for i, node := range nodes {
		index[node.Address.String()] = i
	}

	// Column-stochastic transition matrix: column i spreads node i's score
	// across its out-edges in proportion to edge weight.
	transition := mat.NewDense(n, n, nil)
	outWeight := make([]float64, n)
	for _, e := range wg.Graph().Edges() {
		src, ok := index[e.Src.String()]
		if !ok {
			return nil, fmt.Errorf("edge source %q has no node", e.Src)
		}
		if _, ok := index[e.Dst.String()]; !ok {
			return nil, fmt.Errorf("edge destination %q has no node", e.Dst)
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("edge %q -> %q has negative weight %g", e.Src, e.Dst, e.Weight)
		}
		outWeight[src] += e.Weight
	}
	for _, e := range wg.Graph().Edges() {
		src := index[e.Src.String()]
		dst := index[e.Dst.String()]
		if outWeight[src] > 0 {
			transition.Set(dst, src, transition.At(dst, src)+e.Weight/outWeight[src])
		}
	}

	seed := seedVector(wg, nodes)

	x := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		x.SetVec(i, seed[i])
	}

	next := mat.NewVecDense(n, nil)
	for iter := 0; iter < cfg.MaxIterations; iter++ {
		next.MulVec(transition, x)

		// Mass sitting on dangling nodes (no out-edges) teleports with the
		// rest rather than leaking out of the distribution.
		var dangling float64
		for i := 0; i < n; i++ {
			if outWeight[i] == 0 {
				dangling += x.AtVec(i)
			}
		}

		var delta float64
		for i := 0; i < n; i++ {
			v := cfg.Damping*(next.AtVec(i)+dangling*seed[i]) + (1-cfg.Damping)*seed[i]
			delta += math.Abs(v - x.AtVec(i))
			next.SetVec(i, v)
		}
		x, next = next, x

		if delta < cfg.Tolerance {
			scores := make(map[string]float64, n)
			for i, node := range nodes {
				scores[node.Address.String()] = x.AtVec(i)
			}
			return scores, nil
		}
	}

	return nil, fmt.Errorf("power iteration did not converge within %d iterations", cfg.MaxIterations)
}

// seedVector normalizes the node weight table into a probability
// distribution; a graph whose weights sum to zero seeds uniformly.
func seedVector(wg *graph.WeightedGraph, nodes []graph.Node) []float64 {
	seed := make([]float64, len(nodes))
	var total float64
	for i, node := range nodes {
		seed[i] = wg.Weight(node.Address)
		total += seed[i]
	}
	if total == 0 {
		for i := range seed {
			seed[i] = 1 / float64(len(seed))
		}
		return seed
	}
	for i := range seed {
		seed[i] /= total
	}
	return seed
}
