// Package storage provides SQLite-based persistence for finished games.
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

	"github.com/vovakirdan/tui-tetris/internal/loop"
)

// DefaultPath is where the CLI keeps its database unless --db says otherwise.
const DefaultPath = "~/.arcade/tetris.db"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// GameRecord is one finished game.
type GameRecord struct {
	ID         int64
	Score      int
	Lines      int
	Level      int
	Difficulty string
	CreatedAt  time.Time
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
		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			lines INTEGER NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 1,
			difficulty TEXT NOT NULL DEFAULT 'normal',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_top ON games(score DESC);
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

// SaveGame records a finished game and returns its ID. An empty
// difficulty is stored as normal.
func (s *Store) SaveGame(rec GameRecord) (int64, error) {
	if rec.Difficulty == "" {
		rec.Difficulty = "normal"
	}
	result, err := s.db.Exec(
		"INSERT INTO games (score, lines, level, difficulty) VALUES (?, ?, ?, ?)",
		rec.Score, rec.Lines, rec.Level, rec.Difficulty,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save game: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Recorder saves finished games under one difficulty. It satisfies the
// game loop's score sink.
type Recorder struct {
	store      *Store
	difficulty string
}

// Recorder returns a sink that tags every game with difficulty.
func (s *Store) Recorder(difficulty string) *Recorder {
	return &Recorder{store: s, difficulty: difficulty}
}

// RecordGame saves one finished game. Empty games (no points, no lines)
// are not worth a row and are skipped.
func (r *Recorder) RecordGame(score, lines, level int) error {
	if score == 0 && lines == 0 {
		return nil
	}
	_, err := r.store.SaveGame(GameRecord{
		Score:      score,
		Lines:      lines,
		Level:      level,
		Difficulty: r.difficulty,
	})
	return err
}

// Ensure Recorder implements loop.ScoreSink
var _ loop.ScoreSink = (*Recorder)(nil)

// TopScores retrieves the best limit games, highest score first. Ties go
// to the earlier game.
func (s *Store) TopScores(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, score, lines, level, difficulty, created_at
		 FROM games
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []GameRecord
	for rows.Next() {
		var e GameRecord
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Score, &e.Lines, &e.Level, &e.Difficulty, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest recorded score.
// Returns 0 if no games exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM games").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes every recorded game.
func (s *Store) ClearScores() error {
	_, err := s.db.Exec("DELETE FROM games")
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics over all recorded games.
type Stats struct {
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalLines int64
	BestLevel  int
	LastPlayed time.Time
}

// GetStats retrieves aggregated statistics.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(lines), 0), COALESCE(MAX(level), 0)
		 FROM games`,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalLines, &stats.BestLevel)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM games ORDER BY created_at DESC, id DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// parseTime converts a DATETIME column value. The driver may hand back
// either a time.Time or SQLite's text format.
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
