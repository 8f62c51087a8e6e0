package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"gravitas-hq/callisto/pkg/address"
	"gravitas-hq/callisto/pkg/graph"
)

// Config configures a Store.
type Config struct {
	// Path is the SQLite database file path.
	Path string

	// BusyTimeout is how long to wait for locks before failing.
	// Default: 5 seconds
	BusyTimeout time.Duration
}

// Store is a SQLite-backed persistence layer for graphs and scores.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if necessary) the store at path with default
// settings.
func Open(path string) (*Store, error) {
	return OpenWithConfig(Config{Path: path})
}

// OpenWithConfig opens a store with explicit configuration and initializes
// the schema.
func OpenWithConfig(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("store path cannot be empty")
	}
	if cfg.BusyTimeout == 0 {
		cfg.BusyTimeout = 5 * time.Second
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=%d&_synchronous=NORMAL",
		cfg.Path, int(cfg.BusyTimeout.Milliseconds()))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	s := &Store{db: db, path: cfg.Path}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS nodes (
		address   TEXT NOT NULL PRIMARY KEY,
		timestamp INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS edges (
		src    TEXT NOT NULL,
		dst    TEXT NOT NULL,
		weight REAL NOT NULL,
		PRIMARY KEY (src, dst)
	);

	CREATE TABLE IF NOT EXISTS weights (
		address TEXT NOT NULL PRIMARY KEY,
		weight  REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS scores (
		run_id     TEXT NOT NULL,
		address    TEXT NOT NULL,
		score      REAL NOT NULL,
		created_at INTEGER NOT NULL,
		PRIMARY KEY (run_id, address)
	);

	CREATE INDEX IF NOT EXISTS idx_scores_run ON scores(run_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveGraph replaces the stored graph and weight table with wg's contents
// in a single transaction.
func (s *Store) SaveGraph(ctx context.Context, wg *graph.WeightedGraph) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"nodes", "edges", "weights"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, n := range wg.Graph().Nodes() {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO nodes (address, timestamp) VALUES (?, ?)",
			n.Address.String(), n.Timestamp.Unix())
		if err != nil {
			return fmt.Errorf("failed to insert node %q: %w", n.Address, err)
		}
	}

	for _, e := range wg.Graph().Edges() {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO edges (src, dst, weight) VALUES (?, ?, ?)",
			e.Src.String(), e.Dst.String(), e.Weight)
		if err != nil {
			return fmt.Errorf("failed to insert edge %q -> %q: %w", e.Src, e.Dst, err)
		}
	}

	for addr, w := range wg.Weights() {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO weights (address, weight) VALUES (?, ?)", addr, w)
		if err != nil {
			return fmt.Errorf("failed to insert weight for %q: %w", addr, err)
		}
	}

	return tx.Commit()
}

// LoadGraph reads the stored graph and weight table.
func (s *Store) LoadGraph(ctx context.Context) (*graph.WeightedGraph, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT address, timestamp FROM nodes ORDER BY address")
	if err != nil {
		return nil, fmt.Errorf("failed to query nodes: %w", err)
	}
	defer rows.Close()

	var nodes []graph.Node
	for rows.Next() {
		var addr string
		var ts int64
		if err := rows.Scan(&addr, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan node: %w", err)
		}
		nodes = append(nodes, graph.Node{
			Address:   address.Parse(addr),
			Timestamp: time.Unix(ts, 0).UTC(),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read nodes: %w", err)
	}

	edgeRows, err := s.db.QueryContext(ctx, "SELECT src, dst, weight FROM edges ORDER BY src, dst")
	if err != nil {
		return nil, fmt.Errorf("failed to query edges: %w", err)
	}
	defer edgeRows.Close()

	var edges []graph.Edge
	for edgeRows.Next() {
		var src, dst string
		var w float64
		if err := edgeRows.Scan(&src, &dst, &w); err != nil {
			return nil, fmt.Errorf("failed to scan edge: %w", err)
		}
		edges = append(edges, graph.Edge{
			Src:    address.Parse(src),
			Dst:    address.Parse(dst),
			Weight: w,
		})
	}
	if err := edgeRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read edges: %w", err)
	}

	weightRows, err := s.db.QueryContext(ctx, "SELECT address, weight FROM weights")
	if err != nil {
		return nil, fmt.Errorf("failed to query weights: %w", err)
	}
	defer weightRows.Close()

	weights := make(map[string]float64)
	for weightRows.Next() {
		var addr string
		var w float64
		if err := weightRows.Scan(&addr, &w); err != nil {
			return nil, fmt.Errorf("failed to scan weight: %w", err)
		}
		weights[addr] = w
	}
	if err := weightRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read weights: %w", err)
	}

	return graph.NewWeighted(graph.New(nodes, edges), weights), nil
}

// SaveScores records one run's scores.
func (s *Store) SaveScores(ctx context.Context, runID string, scores map[string]float64) error {
	if runID == "" {
		return fmt.Errorf("run ID cannot be empty")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().Unix()
	for addr, score := range scores {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO scores (run_id, address, score, created_at) VALUES (?, ?, ?, ?)",
			runID, addr, score, now)
		if err != nil {
			return fmt.Errorf("failed to insert score for %q: %w", addr, err)
		}
	}
	return tx.Commit()
}

// LoadScores reads the scores recorded for runID. An unknown run ID yields
// an empty map, not an error.
func (s *Store) LoadScores(ctx context.Context, runID string) (map[string]float64, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT address, score FROM scores WHERE run_id = ?", runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query scores: %w", err)
	}
	defer rows.Close()

	scores := make(map[string]float64)
	for rows.Next() {
		var addr string
		var score float64
		if err := rows.Scan(&addr, &score); err != nil {
			return nil, fmt.Errorf("failed to scan score: %w", err)
		}
		scores[addr] = score
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read scores: %w", err)
	}
	return scores, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
