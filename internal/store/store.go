// Package store keeps the journal of finished games in SQLite.
//
// The default database lives in memory and disappears with the process;
// a file path is accepted for debugging.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/guessr/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// MemoryPath selects a process-local in-memory database.
const MemoryPath = ":memory:"

// Store wraps SQLite access for session data.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database and applies migrations.
func Open(path string) (*Store, error) {
	if path == "" {
		path = MemoryPath
	}
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// Every pooled connection to :memory: would get its own empty database.
	db.SetMaxOpenConns(1)
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			word_length INTEGER NOT NULL,
			max_guesses INTEGER NOT NULL,
			guesses_used INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			target TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS session_guesses (
			session_id INTEGER NOT NULL,
			turn INTEGER NOT NULL,
			guess TEXT NOT NULL,
			PRIMARY KEY (session_id, turn)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_target ON sessions(target);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertSession stores a finished game and its guesses.
func (s *Store) InsertSession(ctx context.Context, rec model.SessionRecord) (id int64, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO sessions (started_at, ended_at, word_length, max_guesses, guesses_used, outcome, target)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.StartedAt.Format(time.RFC3339Nano),
		rec.EndedAt.Format(time.RFC3339Nano),
		rec.WordLength,
		rec.MaxGuesses,
		rec.GuessesUsed,
		rec.Outcome.String(),
		rec.Target,
	)
	if err != nil {
		return 0, err
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(rec.Guesses) > 0 {
		stmt, perr := tx.PrepareContext(ctx, `INSERT INTO session_guesses (session_id, turn, guess) VALUES (?, ?, ?)`)
		if perr != nil {
			err = perr
			return 0, err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for i, guess := range rec.Guesses {
			if _, err = stmt.ExecContext(ctx, id, i+1, guess); err != nil {
				return 0, err
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListSessions returns up to last most recent games in insertion order.
// A non-positive last returns every game.
func (s *Store) ListSessions(ctx context.Context, last int) ([]model.SessionSummary, error) {
	limit := last
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `SELECT id, started_at, ended_at, target, outcome, guesses_used, max_guesses
		FROM (SELECT * FROM sessions ORDER BY id DESC LIMIT ?)
		ORDER BY id ASC`, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var sessions []model.SessionSummary
	for rows.Next() {
		var sum model.SessionSummary
		var startedAt, endedAt, outcome string
		if err := rows.Scan(&sum.SessionID, &startedAt, &endedAt, &sum.Target, &outcome, &sum.GuessesUsed, &sum.MaxGuesses); err != nil {
			return nil, err
		}
		started, err := time.Parse(time.RFC3339Nano, startedAt)
		if err != nil {
			return nil, err
		}
		ended, err := time.Parse(time.RFC3339Nano, endedAt)
		if err != nil {
			return nil, err
		}
		sum.EndedAt = ended
		sum.DurationMs = ended.Sub(started).Milliseconds()
		sum.Outcome, err = parseOutcome(outcome)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

// ListGuesses returns the guesses of one game in turn order.
func (s *Store) ListGuesses(ctx context.Context, sessionID int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT guess FROM session_guesses WHERE session_id = ? ORDER BY turn ASC`, sessionID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var guesses []string
	for rows.Next() {
		var guess string
		if err := rows.Scan(&guess); err != nil {
			return nil, err
		}
		guesses = append(guesses, guess)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return guesses, nil
}

// PlayedTargets returns the distinct targets of games with the given word length.
func (s *Store) PlayedTargets(ctx context.Context, wordLength int) (map[string]struct{}, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT target FROM sessions WHERE word_length = ?`, wordLength)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	played := map[string]struct{}{}
	for rows.Next() {
		var target string
		if err := rows.Scan(&target); err != nil {
			return nil, err
		}
		played[target] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return played, nil
}

func parseOutcome(v string) (model.Outcome, error) {
	switch v {
	case model.Won.String():
		return model.Won, nil
	case model.Lost.String():
		return model.Lost, nil
	default:
		return model.Lost, fmt.Errorf("unknown outcome %q", v)
	}
}
