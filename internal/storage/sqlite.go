// Package storage provides SQLite-based persistence for finished climbs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Outcome values stored in the runs table.
const (
	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
)

// ErrNoRuns is returned by BestTime when a mode has no successful run.
var ErrNoRuns = errors.New("storage: no successful runs")

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunEntry is a single finished run.
type RunEntry struct {
	ID        int64
	Mode      string
	Seed      int64
	Outcome   string
	FinalTime time.Duration // Zero for failed runs
	Health    int
	Height    float64 // Highest point reached
	CreatedAt time.Time
}

// Succeeded reports whether the run reached the goal.
func (e RunEntry) Succeeded() bool {
	return e.Outcome == OutcomeSucceeded
}

// ModeStats contains aggregated statistics for a mode.
type ModeStats struct {
	Mode       string
	Runs       int
	Successes  int
	BestTime   time.Duration // Zero if no successful run
	AvgTime    time.Duration // Average over successful runs
	BestHeight float64
	LastPlayed time.Time
}

// SuccessRate returns the share of runs that reached the goal, in [0, 1].
func (s ModeStats) SuccessRate() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.Successes) / float64(s.Runs)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			seed INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			final_time_ms INTEGER NOT NULL DEFAULT 0,
			health INTEGER NOT NULL DEFAULT 0,
			height REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_mode ON runs(mode);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(mode, outcome, final_time_ms);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run. Failed runs keep no final time.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(e RunEntry) (int64, error) {
	if e.Outcome != OutcomeSucceeded && e.Outcome != OutcomeFailed {
		return 0, fmt.Errorf("storage: unknown outcome %q", e.Outcome)
	}
	ms := e.FinalTime.Milliseconds()
	if !e.Succeeded() {
		ms = 0
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (mode, seed, outcome, final_time_ms, health, height)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Mode, e.Seed, e.Outcome, ms, e.Health, e.Height,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestTimes retrieves the fastest N successful runs for the given mode.
func (s *Store) BestTimes(mode string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, mode, seed, outcome, final_time_ms, health, height, created_at
		 FROM runs
		 WHERE mode = ? AND outcome = ?
		 ORDER BY final_time_ms ASC, id ASC
		 LIMIT ?`,
		mode, OutcomeSucceeded, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best times: %w", err)
	}
	return scanRuns(rows)
}

// BestTime returns the fastest successful time for the given mode.
// Returns ErrNoRuns if the mode has never been completed.
func (s *Store) BestTime(mode string) (time.Duration, error) {
	var ms int64
	err := s.db.QueryRow(
		`SELECT final_time_ms FROM runs
		 WHERE mode = ? AND outcome = ?
		 ORDER BY final_time_ms ASC LIMIT 1`,
		mode, OutcomeSucceeded,
	).Scan(&ms)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNoRuns
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best time: %w", err)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// RecentRuns retrieves the most recent runs across all modes, newest first.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, mode, seed, outcome, final_time_ms, health, height, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recent runs: %w", err)
	}
	return scanRuns(rows)
}

// ModeStats retrieves aggregated statistics for a specific mode.
func (s *Store) ModeStats(mode string) (*ModeStats, error) {
	stats := &ModeStats{Mode: mode}

	var bestMs, avgMs sql.NullFloat64
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        MIN(CASE WHEN outcome = ? THEN final_time_ms END),
		        AVG(CASE WHEN outcome = ? THEN final_time_ms END),
		        COALESCE(MAX(height), 0),
		        MAX(created_at)
		 FROM runs WHERE mode = ?`,
		OutcomeSucceeded, OutcomeSucceeded, OutcomeSucceeded, mode,
	).Scan(&stats.Runs, &stats.Successes, &bestMs, &avgMs, &stats.BestHeight, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}

	if bestMs.Valid {
		stats.BestTime = time.Duration(bestMs.Float64) * time.Millisecond
	}
	if avgMs.Valid {
		stats.AvgTime = time.Duration(avgMs.Float64 * float64(time.Millisecond))
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// ClearRuns deletes all runs for the given mode.
func (s *Store) ClearRuns(mode string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE mode = ?", mode)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

func scanRuns(rows *sql.Rows) ([]RunEntry, error) {
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var ms int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Mode, &e.Seed, &e.Outcome, &ms, &e.Health, &e.Height, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.FinalTime = time.Duration(ms) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
