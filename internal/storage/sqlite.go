// Package storage provides SQLite-based persistence for puzzle progress.
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

// NoLevel marks a solve of a pool puzzle.
const NoLevel = -1

// Store manages the SQLite database connection for progress persistence.
type Store struct {
	db *sql.DB
}

// Solve represents a single solved puzzle record.
type Solve struct {
	ID        int64
	Puzzle    string // Bank entry
	Level     int    // Zero-based level index, or NoLevel
	Moves     int
	Optimal   int
	Hints     int
	CreatedAt time.Time
}

// Perfect reports a solve in the optimal number of moves without hints.
func (s Solve) Perfect() bool {
	return s.Hints == 0 && s.Moves == s.Optimal
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
		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			puzzle TEXT NOT NULL,
			level INTEGER,
			moves INTEGER NOT NULL,
			optimal INTEGER NOT NULL,
			hints INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_puzzle ON solves(puzzle);
		CREATE INDEX IF NOT EXISTS idx_solves_level ON solves(level);
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

// SaveSolve records a solved puzzle.
// Returns the ID of the inserted record.
func (s *Store) SaveSolve(solve Solve) (int64, error) {
	var level sql.NullInt64
	if solve.Level >= 0 {
		level = sql.NullInt64{Int64: int64(solve.Level), Valid: true}
	}

	result, err := s.db.Exec(
		"INSERT INTO solves (puzzle, level, moves, optimal, hints) VALUES (?, ?, ?, ?, ?)",
		solve.Puzzle, level, solve.Moves, solve.Optimal, solve.Hints,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestSolve returns the solve of a puzzle with the fewest hints, then moves.
// Returns nil if the puzzle was never solved.
func (s *Store) BestSolve(puzzle string) (*Solve, error) {
	row := s.db.QueryRow(
		`SELECT id, puzzle, level, moves, optimal, hints, created_at
		 FROM solves
		 WHERE puzzle = ?
		 ORDER BY hints ASC, moves ASC, id ASC
		 LIMIT 1`,
		puzzle,
	)

	solve, err := scanSolve(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best solve: %w", err)
	}
	return &solve, nil
}

// IsSolved reports whether a puzzle has at least one recorded solve.
func (s *Store) IsSolved(puzzle string) (bool, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM solves WHERE puzzle = ?", puzzle).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("storage: cannot query solve: %w", err)
	}
	return n > 0, nil
}

// SolvedPuzzles returns every solved puzzle entry, sorted.
func (s *Store) SolvedPuzzles() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT puzzle FROM solves ORDER BY puzzle")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solved puzzles: %w", err)
	}
	defer rows.Close()

	var puzzles []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		puzzles = append(puzzles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return puzzles, nil
}

// LevelsCleared returns the set of solved level indices.
func (s *Store) LevelsCleared() (map[int]bool, error) {
	rows, err := s.db.Query("SELECT DISTINCT level FROM solves WHERE level IS NOT NULL")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query levels: %w", err)
	}
	defer rows.Close()

	cleared := make(map[int]bool)
	for rows.Next() {
		var level int
		if err := rows.Scan(&level); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		cleared[level] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return cleared, nil
}

// RecentSolves retrieves the most recent solves, newest first.
func (s *Store) RecentSolves(limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, puzzle, level, moves, optimal, hints, created_at
		 FROM solves
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		solve, err := scanSolve(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		solves = append(solves, solve)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return solves, nil
}

// Stats contains aggregated progress statistics.
type Stats struct {
	Solves     int
	Puzzles    int
	Perfect    int
	HintsUsed  int
	LastPlayed time.Time
}

// Stats retrieves aggregated progress statistics.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT puzzle),
		        COALESCE(SUM(CASE WHEN hints = 0 AND moves = optimal THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(hints), 0)
		 FROM solves`,
	).Scan(&stats.Solves, &stats.Puzzles, &stats.Perfect, &stats.HintsUsed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM solves ORDER BY created_at DESC, id DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// Clear deletes all recorded solves.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM solves"); err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSolve(row rowScanner) (Solve, error) {
	var solve Solve
	var level sql.NullInt64
	var createdAt any

	if err := row.Scan(
		&solve.ID,
		&solve.Puzzle,
		&level,
		&solve.Moves,
		&solve.Optimal,
		&solve.Hints,
		&createdAt,
	); err != nil {
		return Solve{}, err
	}

	solve.Level = NoLevel
	if level.Valid {
		solve.Level = int(level.Int64)
	}
	solve.CreatedAt = parseTime(createdAt)
	return solve, nil
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
