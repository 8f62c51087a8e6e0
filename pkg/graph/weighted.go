package graph

import "gravitas-hq/callisto/pkg/address"

// DefaultWeight is the effective weight of any address without an explicit
// entry in the weight table.
const DefaultWeight = 1.0

// WeightedGraph pairs a Graph with a weight table keyed by address text
// form. The weight table is owned by the WeightedGraph; it is copied on
// construction and never mutated afterwards.
type WeightedGraph struct {
	graph   *Graph
	weights map[string]float64
}

// NewWeighted constructs a WeightedGraph over g with the given weight table.
// The table is copied; a nil table means all addresses carry DefaultWeight.
func NewWeighted(g *Graph, weights map[string]float64) *WeightedGraph {
	copied := make(map[string]float64, len(weights))
	for k, v := range weights {
		copied[k] = v
	}
	return &WeightedGraph{graph: g, weights: copied}
}

// Graph returns the underlying graph.
func (wg *WeightedGraph) Graph() *Graph {
	return wg.graph
}

// Weight returns the effective weight of addr, defaulting to DefaultWeight
// for addresses without an explicit entry.
func (wg *WeightedGraph) Weight(addr address.Address) float64 {
	if w, ok := wg.weights[addr.String()]; ok {
		return w
	}
	return DefaultWeight
}

// Weights returns a copy of the explicit weight table. Addresses relying on
// DefaultWeight do not appear.
func (wg *WeightedGraph) Weights() map[string]float64 {
	copied := make(map[string]float64, len(wg.weights))
	for k, v := range wg.weights {
		copied[k] = v
	}
	return copied
}

// WithWeights returns a new WeightedGraph sharing the same Graph but holding
// the given weight table (copied). The receiver is unchanged.
func (wg *WeightedGraph) WithWeights(weights map[string]float64) *WeightedGraph {
	return NewWeighted(wg.graph, weights)
}
