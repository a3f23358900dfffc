// Package storage provides SQLite-based persistence for finished matches.
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

// Store manages the SQLite database connection for match history.
type Store struct {
	db *sql.DB
}

// Match is one finished or abandoned match.
type Match struct {
	ID         int64
	Player     string // SSH user, or "local"
	LeftScore  int
	RightScore int
	Winner     string // "left", "right" or "none" when abandoned
	CPUSide    string
	Seed       int64
	Duration   time.Duration // Virtual time played
	CreatedAt  time.Time
}

// Tally aggregates the match history.
type Tally struct {
	Matches    int
	LeftWins   int
	RightWins  int
	Abandoned  int
	LastPlayed time.Time
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL DEFAULT 'local',
			left_score INTEGER NOT NULL,
			right_score INTEGER NOT NULL,
			winner TEXT NOT NULL,
			cpu_side TEXT NOT NULL,
			seed INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_matches_player ON matches(player);
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

// SaveMatch records a match. Returns the ID of the inserted record.
func (s *Store) SaveMatch(m Match) (int64, error) {
	if m.Player == "" {
		m.Player = "local"
	}
	result, err := s.db.Exec(
		`INSERT INTO matches (player, left_score, right_score, winner, cpu_side, seed, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.Player, m.LeftScore, m.RightScore, m.Winner, m.CPUSide, m.Seed, m.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentMatches retrieves the most recent matches, newest first.
// An empty player returns matches of every player.
func (s *Store) RecentMatches(player string, limit int) ([]Match, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, player, left_score, right_score, winner, cpu_side, seed, duration_ms, created_at
		 FROM matches
		 WHERE ? = '' OR player = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		player, player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var m Match
		var durationMs int64
		var createdAt any
		if err := rows.Scan(
			&m.ID,
			&m.Player,
			&m.LeftScore,
			&m.RightScore,
			&m.Winner,
			&m.CPUSide,
			&m.Seed,
			&durationMs,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		m.Duration = time.Duration(durationMs) * time.Millisecond
		m.CreatedAt = parseTime(createdAt)
		matches = append(matches, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return matches, nil
}

// Tally returns aggregated results. An empty player tallies every player.
func (s *Store) Tally(player string) (Tally, error) {
	var t Tally
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(winner = 'left'), 0),
		        COALESCE(SUM(winner = 'right'), 0),
		        COALESCE(SUM(winner NOT IN ('left', 'right')), 0)
		 FROM matches
		 WHERE ? = '' OR player = ?`,
		player, player,
	).Scan(&t.Matches, &t.LeftWins, &t.RightWins, &t.Abandoned)
	if err != nil {
		return t, fmt.Errorf("storage: cannot tally matches: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM matches
		 WHERE ? = '' OR player = ?
		 ORDER BY created_at DESC, id DESC LIMIT 1`,
		player, player,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return t, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		t.LastPlayed = parseTime(lastPlayed)
	}

	return t, nil
}

// ClearMatches deletes the history. An empty player deletes every match.
func (s *Store) ClearMatches(player string) error {
	_, err := s.db.Exec("DELETE FROM matches WHERE ? = '' OR player = ?", player, player)
	if err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string DATETIME values.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
