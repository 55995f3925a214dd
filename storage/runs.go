// Package storage keeps the history of finished runs in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultPath is where the game keeps its run history.
const DefaultPath = "~/.cavefall/runs.db"

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is one finished trip through the cave.
type Run struct {
	ID        int64
	Rooms     int // rooms cleared
	Deaths    int
	Rotations int
	Duration  time.Duration
	Completed bool // reached daylight
	CreatedAt time.Time
}

// Summary aggregates every recorded run.
type Summary struct {
	Runs         int
	Completed    int
	BestDuration time.Duration // fastest completed run, 0 if none
	TotalDeaths  int
	LastPlayedAt time.Time
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			rooms INTEGER NOT NULL,
			deaths INTEGER NOT NULL DEFAULT 0,
			rotations INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_fastest ON runs(completed, duration_ms);
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

// SaveRun records a run and returns its ID.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (rooms, deaths, rotations, duration_ms, completed) VALUES (?, ?, ?, ?, ?)",
		r.Rooms, r.Deaths, r.Rotations, r.Duration.Milliseconds(), r.Completed,
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

// RecordRun stores r and returns its ID. A run with an ID updates that row,
// so a run quit and continued later keeps one entry; if the row is gone it
// is inserted again.
func (s *Store) RecordRun(r Run) (int64, error) {
	if r.ID <= 0 {
		return s.SaveRun(r)
	}

	result, err := s.db.Exec(
		"UPDATE runs SET rooms = ?, deaths = ?, rotations = ?, duration_ms = ?, completed = ? WHERE id = ?",
		r.Rooms, r.Deaths, r.Rotations, r.Duration.Milliseconds(), r.Completed, r.ID,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot update run %d: %w", r.ID, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot check updated run %d: %w", r.ID, err)
	}
	if n == 0 {
		return s.SaveRun(r)
	}
	return r.ID, nil
}

// RecentRuns returns the latest runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, rooms, deaths, rotations, duration_ms, completed, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

// FastestRuns returns completed runs ordered by duration, fastest first.
func (s *Store) FastestRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, rooms, deaths, rotations, duration_ms, completed, created_at
		 FROM runs
		 WHERE completed = 1
		 ORDER BY duration_ms ASC, deaths ASC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Rooms, &r.Deaths, &r.Rotations, &durationMS, &r.Completed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// Summarize aggregates every recorded run.
func (s *Store) Summarize() (*Summary, error) {
	sum := &Summary{}
	var best sql.NullInt64
	var last any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(completed), 0), MIN(CASE WHEN completed = 1 THEN duration_ms END),
		        COALESCE(SUM(deaths), 0), MAX(created_at)
		 FROM runs`,
	).Scan(&sum.Runs, &sum.Completed, &best, &sum.TotalDeaths, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot summarize runs: %w", err)
	}

	if best.Valid {
		sum.BestDuration = time.Duration(best.Int64) * time.Millisecond
	}
	sum.LastPlayedAt = parseTime(last)
	return sum, nil
}

// ClearRuns deletes the whole history.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes.
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
