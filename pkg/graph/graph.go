package graph

import (
	"time"

	"gravitas-hq/callisto/pkg/address"
)

// Node is a single scoring entity: an address plus the time the entity was
// created. The timestamp determines which weekly interval the node falls in
// during budget enforcement.
type Node struct {
	Address   address.Address
	Timestamp time.Time
}

// Edge is a weighted directed connection between two nodes, identified by
// address. Edge weights drive the downstream score-propagation stage and are
// not touched by budget enforcement.
type Edge struct {
	Src    address.Address
	Dst    address.Address
	Weight float64
}

// Graph is an immutable set of nodes and edges.
type Graph struct {
	nodes []Node
	edges []Edge
}

// New constructs a Graph from the given nodes and edges. Both slices are
// copied.
func New(nodes []Node, edges []Edge) *Graph {
	g := &Graph{
		nodes: make([]Node, len(nodes)),
		edges: make([]Edge, len(edges)),
	}
	copy(g.nodes, nodes)
	copy(g.edges, edges)
	return g
}

// Nodes returns the graph's nodes. The returned slice is shared; callers
// must not modify it.
func (g *Graph) Nodes() []Node {
	return g.nodes
}

// Edges returns the graph's edges. The returned slice is shared; callers
// must not modify it.
func (g *Graph) Edges() []Edge {
	return g.edges
}
