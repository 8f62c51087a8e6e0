// Package store persists graphs, weight tables, and computed scores in a
// local SQLite database.
//
// The store is the pipeline's durable boundary: the surrounding tooling
// writes a graph in, each pipeline run reads it back, and the run's scores
// are recorded against a run ID for later export. A single store serves
// one database file; SQLite's single-writer model is respected by capping
// the connection pool at one connection.
package store
