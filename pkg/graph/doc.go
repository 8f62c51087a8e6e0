// Package graph defines the weighted contribution graph consumed and
// produced by the scoring pipeline.
//
// A Graph is a fixed set of timestamped nodes connected by weighted directed
// edges. A WeightedGraph pairs a Graph with a weight table mapping node
// addresses to multipliers; addresses absent from the table have an implicit
// weight of 1.
//
// WeightedGraph values are treated as immutable: stages that adjust weights
// (such as budget enforcement) return a new WeightedGraph sharing the same
// Graph but owning an independent weight table, leaving the original
// observably unchanged for any other holder.
package graph
