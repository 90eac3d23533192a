// Package results provides durable storage for benchmark run history.
//
// Only the summary row of each run is persisted; the in-memory record
// store never touches disk. Uses SQLite with WAL mode.
package results

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/uidbench/internal/bench"
)

//go:embed schema.sql
var schemaSQL string

// History stores one row per benchmark run.
type History struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// Applies required pragmas and the schema automatically.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode (balance durability/performance)
//   - 5-second busy timeout for lock contention
//
// This function is idempotent - safe to call multiple times.
func Open(path string) (*History, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &History{db: db}, nil
}

// Close closes the database connection.
func (h *History) Close() error {
	if h.db == nil {
		return nil
	}
	return h.db.Close()
}

// Append inserts a run's summary row.
// Uses ON CONFLICT(run_id) DO NOTHING for idempotency - appending the
// same report twice is harmless.
func (h *History) Append(ctx context.Context, r bench.Report) error {
	_, err := h.db.ExecContext(ctx, `
		INSERT INTO runs
		(run_id, started_at, records, searches, hits, misses, generate_attempts, generate_elapsed_ns, search_elapsed_ns)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id) DO NOTHING
	`,
		r.RunID,
		r.StartedAt.UTC().Format(time.RFC3339Nano),
		r.Records,
		r.Searches,
		r.Hits,
		r.Misses,
		int64(r.GenerateAttempts),
		r.GenerateElapsed.Nanoseconds(),
		r.SearchElapsed.Nanoseconds(),
	)
	if err != nil {
		return fmt.Errorf("append run: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first.
// A non-positive limit returns all rows.
func (h *History) List(ctx context.Context, limit int) ([]bench.Report, error) {
	if limit <= 0 {
		limit = -1 // SQLite: LIMIT -1 means unlimited
	}

	rows, err := h.db.QueryContext(ctx, `
		SELECT run_id, started_at, records, searches, hits, misses, generate_attempts, generate_elapsed_ns, search_elapsed_ns
		FROM runs
		ORDER BY started_at DESC, run_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []bench.Report
	for rows.Next() {
		var (
			r          bench.Report
			startedAt  string
			attempts   int64
			generateNS int64
			searchNS   int64
		)
		if err := rows.Scan(&r.RunID, &startedAt, &r.Records, &r.Searches, &r.Hits, &r.Misses, &attempts, &generateNS, &searchNS); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}

		ts, err := time.Parse(time.RFC3339Nano, startedAt)
		if err != nil {
			return nil, fmt.Errorf("parse run timestamp %q: %w", startedAt, err)
		}
		r.StartedAt = ts
		r.GenerateAttempts = uint64(attempts)
		r.GenerateElapsed = time.Duration(generateNS)
		r.SearchElapsed = time.Duration(searchNS)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return out, nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}
