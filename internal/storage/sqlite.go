// Package storage provides SQLite-based persistence for recorded games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// A replay is the seed a game was started with plus the ordered list of
// actions it received; that is enough to rebuild the game exactly.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/blockfall/internal/core"
)

// ErrReplayNotFound is returned when no replay has the requested ID.
var ErrReplayNotFound = errors.New("storage: replay not found")

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Replay is a recorded game.
type Replay struct {
	ID     string
	Player string
	Seed   int64

	// Rules the game was played with
	Width          int
	Height         int
	PointsPerLine  int
	DetectGameOver bool

	// Outcome as observed when recording stopped
	Score  int
	Lines  int
	Pieces int

	Actions   []core.Action
	CreatedAt time.Time
}

// ReplaySummary is a replay without its action stream.
type ReplaySummary struct {
	ID          string
	Player      string
	Seed        int64
	Score       int
	Lines       int
	ActionCount int
	CreatedAt   time.Time
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
		CREATE TABLE IF NOT EXISTS replays (
			id TEXT PRIMARY KEY,
			player TEXT NOT NULL DEFAULT '',
			seed INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			points_per_line INTEGER NOT NULL,
			detect_game_over INTEGER NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			lines INTEGER NOT NULL DEFAULT 0,
			pieces INTEGER NOT NULL DEFAULT 0,
			action_count INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_replays_created ON replays(created_at DESC);

		CREATE TABLE IF NOT EXISTS replay_actions (
			replay_id TEXT NOT NULL REFERENCES replays(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			action TEXT NOT NULL,
			PRIMARY KEY (replay_id, seq)
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

// SaveReplay stores a replay and its actions in one transaction.
// An empty ID is replaced with a new UUID. Returns the stored ID.
func (s *Store) SaveReplay(r Replay) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.Exec(
		`INSERT INTO replays
		 (id, player, seed, width, height, points_per_line, detect_game_over, score, lines, pieces, action_count)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Player, r.Seed, r.Width, r.Height, r.PointsPerLine, r.DetectGameOver,
		r.Score, r.Lines, r.Pieces, len(r.Actions),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save replay: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO replay_actions (replay_id, seq, action) VALUES (?, ?, ?)")
	if err != nil {
		return "", fmt.Errorf("storage: cannot prepare action insert: %w", err)
	}
	defer stmt.Close()

	for i, a := range r.Actions {
		if _, err := stmt.Exec(r.ID, i, a.String()); err != nil {
			return "", fmt.Errorf("storage: cannot save action %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit replay: %w", err)
	}
	return r.ID, nil
}

// Replay loads a replay with its full action stream.
func (s *Store) Replay(id string) (*Replay, error) {
	var r Replay
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, player, seed, width, height, points_per_line, detect_game_over,
		        score, lines, pieces, created_at
		 FROM replays
		 WHERE id = ?`,
		id,
	).Scan(
		&r.ID, &r.Player, &r.Seed, &r.Width, &r.Height, &r.PointsPerLine, &r.DetectGameOver,
		&r.Score, &r.Lines, &r.Pieces, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrReplayNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replay: %w", err)
	}
	r.CreatedAt = parseTime(createdAt)

	rows, err := s.db.Query(
		"SELECT action FROM replay_actions WHERE replay_id = ? ORDER BY seq",
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replay actions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("storage: cannot scan action: %w", err)
		}
		a, err := core.ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("storage: replay %s: %w", id, err)
		}
		r.Actions = append(r.Actions, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return &r, nil
}

// RecentReplays lists the most recent replays, newest first.
func (s *Store) RecentReplays(limit int) ([]ReplaySummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, player, seed, score, lines, action_count, created_at
		 FROM replays
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var summaries []ReplaySummary
	for rows.Next() {
		var r ReplaySummary
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Player, &r.Seed, &r.Score, &r.Lines, &r.ActionCount, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		summaries = append(summaries, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return summaries, nil
}

// DeleteReplay removes a replay and its actions.
func (s *Store) DeleteReplay(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec("DELETE FROM replay_actions WHERE replay_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete replay actions: %w", err)
	}
	res, err := tx.Exec("DELETE FROM replays WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrReplayNotFound, id)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
