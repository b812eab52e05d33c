// Package storage records headless simulation runs in SQLite so they can be
// inspected and compared afterwards. Nothing here is ever loaded back into a
// live game. Uses the pure-Go modernc.org/sqlite driver to avoid CGO.
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

// ErrRunNotFound is returned when a run ID is unknown.
var ErrRunNotFound = errors.New("storage: run not found")

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Store manages the SQLite database connection for simulation traces.
type Store struct {
	db *sql.DB
}

// Run is one recorded simulation.
type Run struct {
	ID         int64
	Seed       int64
	Width      int
	Height     int
	StartedAt  time.Time
	FinishedAt time.Time // Zero while the run is open
	Moves      int
	Score      int
	Best       int
	Resets     int
	Won        bool
}

// RunResult is the summary written when a run finishes.
type RunResult struct {
	Moves  int
	Score  int
	Best   int
	Resets int
	Won    bool
}

// TickRecord is one simulation tick.
type TickRecord struct {
	Seq        int    // Position in the run, starting at 1
	Kind       string // "move" or "food"
	Dir        string // Applied direction, move ticks only
	HeadX      int
	HeadY      int
	Length     int
	Ate        bool
	GameOver   bool
	Won        bool
	FoodX      int
	FoodY      int
	FoodActive bool
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != MemoryPath {
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
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

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
			seed INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			started_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			finished_at DATETIME,
			moves INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL DEFAULT 0,
			best INTEGER NOT NULL DEFAULT 0,
			resets INTEGER NOT NULL DEFAULT 0,
			won INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS ticks (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			kind TEXT NOT NULL,
			dir TEXT NOT NULL DEFAULT '',
			head_x INTEGER NOT NULL,
			head_y INTEGER NOT NULL,
			length INTEGER NOT NULL,
			ate INTEGER NOT NULL DEFAULT 0,
			game_over INTEGER NOT NULL DEFAULT 0,
			won INTEGER NOT NULL DEFAULT 0,
			food_x INTEGER NOT NULL DEFAULT 0,
			food_y INTEGER NOT NULL DEFAULT 0,
			food_active INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (run_id, seq)
		);
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

// BeginRun opens a new run and returns its ID.
func (s *Store) BeginRun(seed int64, width, height int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (seed, width, height) VALUES (?, ?, ?)",
		seed, width, height,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin run: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecordTicks appends a batch of ticks in one transaction.
func (s *Store) RecordTicks(runID int64, ticks []TickRecord) error {
	if len(ticks) == 0 {
		return nil
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after Commit

	stmt, err := tx.Prepare(
		`INSERT INTO ticks
		 (run_id, seq, kind, dir, head_x, head_y, length, ate, game_over, won, food_x, food_y, food_active)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range ticks {
		if _, err := stmt.Exec(
			runID, t.Seq, t.Kind, t.Dir, t.HeadX, t.HeadY, t.Length,
			t.Ate, t.GameOver, t.Won, t.FoodX, t.FoodY, t.FoodActive,
		); err != nil {
			return fmt.Errorf("storage: cannot record tick %d: %w", t.Seq, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit ticks: %w", err)
	}
	return nil
}

// FinishRun stores the summary and closes the run.
func (s *Store) FinishRun(runID int64, res RunResult) error {
	result, err := s.db.Exec(
		`UPDATE runs
		 SET finished_at = CURRENT_TIMESTAMP, moves = ?, score = ?, best = ?, resets = ?, won = ?
		 WHERE id = ?`,
		res.Moves, res.Score, res.Best, res.Resets, res.Won, runID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot finish run: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %d", ErrRunNotFound, runID)
	}
	return nil
}

const runColumns = `id, seed, width, height, started_at, finished_at, moves, score, best, resets, won`

// Runs lists the most recent runs, newest first.
func (s *Store) Runs(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT `+runColumns+` FROM runs ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// RunByID returns one run.
func (s *Store) RunByID(id int64) (Run, error) {
	r, err := scanRun(s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %d", ErrRunNotFound, id)
	}
	return r, err
}

// Ticks returns every tick of a run in order.
func (s *Store) Ticks(runID int64) ([]TickRecord, error) {
	rows, err := s.db.Query(
		`SELECT seq, kind, dir, head_x, head_y, length, ate, game_over, won, food_x, food_y, food_active
		 FROM ticks WHERE run_id = ? ORDER BY seq`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query ticks: %w", err)
	}
	defer rows.Close()

	var ticks []TickRecord
	for rows.Next() {
		var t TickRecord
		if err := rows.Scan(
			&t.Seq, &t.Kind, &t.Dir, &t.HeadX, &t.HeadY, &t.Length,
			&t.Ate, &t.GameOver, &t.Won, &t.FoodX, &t.FoodY, &t.FoodActive,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan tick: %w", err)
		}
		ticks = append(ticks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return ticks, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var r Run
	var startedAt, finishedAt any
	err := row.Scan(&r.ID, &r.Seed, &r.Width, &r.Height, &startedAt, &finishedAt,
		&r.Moves, &r.Score, &r.Best, &r.Resets, &r.Won)
	if errors.Is(err, sql.ErrNoRows) {
		return r, err
	}
	if err != nil {
		return r, fmt.Errorf("storage: cannot scan run: %w", err)
	}
	r.StartedAt = parseTime(startedAt)
	r.FinishedAt = parseTime(finishedAt)
	return r, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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
