// Package rank computes the stationary distribution of a random walk over
// the budget-adjusted weighted graph, producing the per-address scores the
// pipeline reports.
//
// The walk follows edges in proportion to edge weight, teleporting with
// probability 1-damping to a seed distribution derived from the (budget
// adjusted) node weights. Scores are the converged visit probabilities and
// sum to 1.
package rank
