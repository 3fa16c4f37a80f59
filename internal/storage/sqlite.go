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

// Outcome describes how a session ended.
type Outcome string

const (
	OutcomeGameOver Outcome = "game_over" // no moves left
	OutcomeQuit     Outcome = "quit"      // player left a running game
)

// Store manages the SQLite database connection for session results.
type Store struct {
	db *sql.DB
}

// Result is one finished session. There is no score: a session is
// summarised by its largest tile and the number of moves played.
type Result struct {
	ID        int64
	Variant   string
	MaxTile   int
	Moves     int
	Seed      int64
	Outcome   Outcome
	CreatedAt time.Time
}

// Stats contains aggregated statistics for a variant.
type Stats struct {
	Variant    string
	Games      int
	BestTile   int
	MostMoves  int
	AvgMoves   float64
	LastPlayed time.Time
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := ExpandPath(dbPath)
	if err != nil {
		return nil, err
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
			variant TEXT NOT NULL,
			max_tile INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_variant ON results(variant);
		CREATE INDEX IF NOT EXISTS idx_results_best ON results(variant, max_tile DESC, moves ASC);
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

// SaveResult records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.Outcome == "" {
		r.Outcome = OutcomeGameOver
	}

	res, err := s.db.Exec(
		"INSERT INTO results (variant, max_tile, moves, seed, outcome) VALUES (?, ?, ?, ?, ?)",
		r.Variant, r.MaxTile, r.Moves, r.Seed, string(r.Outcome),
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

// BestResults retrieves the top N sessions for the given variant,
// ordered by largest tile, then by fewest moves.
func (s *Store) BestResults(variant string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.queryResults(
		`SELECT id, variant, max_tile, moves, seed, outcome, created_at
		 FROM results
		 WHERE variant = ?
		 ORDER BY max_tile DESC, moves ASC, id ASC
		 LIMIT ?`,
		variant, limit,
	)
}

// RecentResults retrieves the most recent sessions. An empty variant
// matches every variant.
func (s *Store) RecentResults(variant string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	if variant == "" {
		return s.queryResults(
			`SELECT id, variant, max_tile, moves, seed, outcome, created_at
			 FROM results
			 ORDER BY id DESC
			 LIMIT ?`,
			limit,
		)
	}
	return s.queryResults(
		`SELECT id, variant, max_tile, moves, seed, outcome, created_at
		 FROM results
		 WHERE variant = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		variant, limit,
	)
}

// BestTile returns the largest tile reached in the given variant.
// Returns 0 if no sessions exist.
func (s *Store) BestTile(variant string) (int, error) {
	var tile sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(max_tile) FROM results WHERE variant = ?",
		variant,
	).Scan(&tile)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best tile: %w", err)
	}

	if !tile.Valid {
		return 0, nil
	}
	return int(tile.Int64), nil
}

// ClearResults deletes all sessions for the given variant.
func (s *Store) ClearResults(variant string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE variant = ?", variant)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// VariantStats retrieves aggregated statistics for a variant.
func (s *Store) VariantStats(variant string) (*Stats, error) {
	stats := &Stats{Variant: variant}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(max_tile), 0), COALESCE(MAX(moves), 0), COALESCE(AVG(moves), 0)
		 FROM results WHERE variant = ?`,
		variant,
	).Scan(&stats.Games, &stats.BestTile, &stats.MostMoves, &stats.AvgMoves)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get variant stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM results WHERE variant = ? ORDER BY id DESC LIMIT 1`,
		variant,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

func (s *Store) queryResults(query string, args ...any) ([]Result, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var outcome string
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Variant, &r.MaxTile, &r.Moves, &r.Seed, &outcome, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Outcome = Outcome(outcome)
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
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
