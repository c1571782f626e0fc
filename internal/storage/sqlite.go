// Package storage keeps best scores and the run history. The history
// lives in SQLite through the pure-Go modernc.org/sqlite driver. Best
// scores go either there or to a one-line text file per game.
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

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store is the run history and best score database.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one logged run.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	Level     int     // Difficulty level reached
	Duration  float64 // Seconds spent playing
	CreatedAt time.Time
}

// Run is a finished run waiting to be logged.
type Run struct {
	GameID   string
	Score    int
	Level    int
	Duration float64
}

const schema = `
CREATE TABLE IF NOT EXISTS scores (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	game_id TEXT NOT NULL,
	score INTEGER NOT NULL,
	level INTEGER NOT NULL DEFAULT 0,
	duration_secs REAL NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

CREATE TABLE IF NOT EXISTS best_scores (
	game_id TEXT PRIMARY KEY,
	score INTEGER NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`

// Open opens the score database at path, creating it and its parent
// directories on first use. A leading ~ is expanded.
func Open(path string) (*Store, error) {
	path, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migrate %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: expand home: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun appends a finished run to the history and returns its row id.
func (s *Store) SaveRun(run Run) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO scores (game_id, score, level, duration_secs) VALUES (?, ?, ?, ?)",
		run.GameID, run.Score, run.Level, run.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: save run: %w", err)
	}
	return res.LastInsertId()
}

// runOrder is an ORDER BY clause for the run history.
type runOrder string

const (
	byScore  runOrder = "score DESC, id ASC"
	byRecent runOrder = "id DESC"
)

// TopScores returns up to limit runs for gameID, best first. Ties keep
// the order they were played in.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	return s.runs(gameID, byScore, limit)
}

// RecentScores returns up to limit runs for gameID, newest first.
func (s *Store) RecentScores(gameID string, limit int) ([]ScoreEntry, error) {
	return s.runs(gameID, byRecent, limit)
}

func (s *Store) runs(gameID string, order runOrder, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, game_id, score, level, duration_secs, created_at
		 FROM scores WHERE game_id = ?
		 ORDER BY `+string(order)+` LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: query runs: %w", err)
	}
	defer rows.Close()

	var out []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var created any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &e.Level, &e.Duration, &created); err != nil {
			return nil, fmt.Errorf("storage: scan run: %w", err)
		}
		e.CreatedAt = parseTime(created)
		out = append(out, e)
	}
	return out, rows.Err()
}

// parseTime accepts what the driver hands back for a DATETIME column.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case []byte:
		return parseTime(string(t))
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the best logged run for gameID, 0 when there is none.
func (s *Store) HighScore(gameID string) (int, error) {
	var score int
	err := s.db.QueryRow("SELECT COALESCE(MAX(score), 0) FROM scores WHERE game_id = ?", gameID).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: query high score: %w", err)
	}
	return score, nil
}

// BestScore returns the persisted best score, 0 when none was saved.
func (s *Store) BestScore(gameID string) (int, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM best_scores WHERE game_id = ?", gameID).Scan(&score)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return 0, nil
	case err != nil:
		return 0, fmt.Errorf("storage: query best score: %w", err)
	}
	return score, nil
}

// SetBestScore overwrites the persisted best score for gameID.
func (s *Store) SetBestScore(gameID string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO best_scores (game_id, score) VALUES (?, ?)
		 ON CONFLICT(game_id) DO UPDATE SET score = excluded.score, updated_at = CURRENT_TIMESTAMP`,
		gameID, score,
	)
	if err != nil {
		return fmt.Errorf("storage: save best score: %w", err)
	}
	return nil
}

// ClearScores drops the run history and the best score of gameID together.
func (s *Store) ClearScores(gameID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: clear scores: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"scores", "best_scores"} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE game_id = ?", gameID); err != nil {
			return fmt.Errorf("storage: clear %s: %w", table, err)
		}
	}
	return tx.Commit()
}

// GameStats summarizes every logged run of one game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalTime  float64 // Seconds played across all runs
	LastPlayed time.Time
}

// GetGameStats aggregates the run history of gameID. A game with no runs
// gets zero stats, not an error.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}
	var last any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(duration_secs), 0), MAX(created_at)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalTime, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: game stats: %w", err)
	}
	stats.LastPlayed = parseTime(last)
	return stats, nil
}
