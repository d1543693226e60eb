// Package storage provides SQLite-based persistence for finished sessions.
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

// Outcome values stored in the results table.
const (
	OutcomeWon  = "won"
	OutcomeLost = "lost"
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Result is one finished session.
type Result struct {
	ID        int64
	SessionID string
	Name      string
	Outcome   string // OutcomeWon or OutcomeLost
	Ticks     int    // Ticks simulated until the outcome
	Obstacles int    // Glyphs in the name, spaces excluded
	CreatedAt time.Time
}

// PlayerStats aggregates the results recorded for one name.
type PlayerStats struct {
	Name       string
	Games      int
	Wins       int
	Losses     int
	LongestRun int // Most ticks survived in a single session
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			outcome TEXT NOT NULL CHECK (outcome IN ('won', 'lost')),
			ticks INTEGER NOT NULL,
			obstacles INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_name ON results(name);
		CREATE INDEX IF NOT EXISTS idx_results_created ON results(created_at DESC);
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

// SaveResult records a finished session and returns the row ID.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.Outcome != OutcomeWon && r.Outcome != OutcomeLost {
		return 0, fmt.Errorf("storage: cannot save result with outcome %q", r.Outcome)
	}

	res, err := s.db.Exec(
		`INSERT INTO results (session_id, name, outcome, ticks, obstacles)
		 VALUES (?, ?, ?, ?, ?)`,
		r.SessionID, r.Name, r.Outcome, r.Ticks, r.Obstacles,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// ResultBySession retrieves a result by session ID. Returns nil if not found.
func (s *Store) ResultBySession(sessionID string) (*Result, error) {
	row := s.db.QueryRow(
		`SELECT id, session_id, name, outcome, ticks, obstacles, created_at
		 FROM results WHERE session_id = ?`,
		sessionID,
	)

	r, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query result: %w", err)
	}
	return &r, nil
}

// RecentResults retrieves the most recent results, newest first.
// A non-empty name restricts the list to that player.
func (s *Store) RecentResults(name string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, session_id, name, outcome, ticks, obstacles, created_at
		 FROM results`
	args := []any{}
	if name != "" {
		query += ` WHERE name = ?`
		args = append(args, name)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Stats returns aggregated results for one name.
// A name with no results yields zero counts.
func (s *Store) Stats(name string) (*PlayerStats, error) {
	stats := &PlayerStats{Name: name}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(outcome = 'won'), 0),
		        COALESCE(SUM(outcome = 'lost'), 0),
		        COALESCE(MAX(ticks), 0),
		        MAX(created_at)
		 FROM results WHERE name = ?`,
		name,
	).Scan(&stats.Games, &stats.Wins, &stats.Losses, &stats.LongestRun, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// AllStats returns aggregated results for every name, most wins first.
func (s *Store) AllStats() ([]PlayerStats, error) {
	rows, err := s.db.Query(
		`SELECT name, COUNT(*), SUM(outcome = 'won'), SUM(outcome = 'lost'), MAX(ticks), MAX(created_at)
		 FROM results
		 GROUP BY name
		 ORDER BY SUM(outcome = 'won') DESC, name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	var all []PlayerStats
	for rows.Next() {
		var ps PlayerStats
		var lastPlayed any
		if err := rows.Scan(&ps.Name, &ps.Games, &ps.Wins, &ps.Losses, &ps.LongestRun, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ps.LastPlayed = parseTime(lastPlayed)
		all = append(all, ps)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return all, nil
}

// ClearResults deletes all results for the given name.
func (s *Store) ClearResults(name string) error {
	if _, err := s.db.Exec("DELETE FROM results WHERE name = ?", name); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResult(row rowScanner) (Result, error) {
	var r Result
	var createdAt any
	err := row.Scan(&r.ID, &r.SessionID, &r.Name, &r.Outcome, &r.Ticks, &r.Obstacles, &createdAt)
	if err != nil {
		return Result{}, err
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles the driver returning DATETIME as either time.Time or text.
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
