// Package storage persists the cumulative score ledger on SQLite
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

var (
	ErrClosed    = errors.New("storage: closed")
	ErrInvalidID = errors.New("storage: invalid player id")
)

const schema = `
CREATE TABLE IF NOT EXISTS players (
	uuid TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	total_score INTEGER NOT NULL DEFAULT 0,
	runs INTEGER NOT NULL DEFAULT 0,
	best_score INTEGER NOT NULL DEFAULT 0,
	last_seen TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

// Record is one player's ledger row
type Record struct {
	ID         string
	Name       string
	TotalScore int64
	Runs       int
	BestScore  int64
}

// ScoreStore is the cumulative score ledger
type ScoreStore struct {
	mu     sync.Mutex
	db     *sql.DB
	closed bool
}

// Open opens or creates the ledger at path
func Open(path string) (*ScoreStore, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("storage: create dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	// Single writer, avoids SQLITE_BUSY across pooled connections
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: create schema: %w", err)
	}
	return &ScoreStore{db: db}, nil
}

func validID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

// Total returns the stored cumulative score, zero for unknown players
func (s *ScoreStore) Total(id string) (int64, error) {
	rec, err := s.Load(id)
	if err != nil {
		return 0, err
	}
	return rec.TotalScore, nil
}

// Load returns the ledger row for id, a zero record for unknown players
func (s *ScoreStore) Load(id string) (Record, error) {
	if err := validID(id); err != nil {
		return Record{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return Record{}, ErrClosed
	}

	rec := Record{ID: id}
	row := s.db.QueryRow("SELECT name, total_score, runs, best_score FROM players WHERE uuid = ?", id)
	err := row.Scan(&rec.Name, &rec.TotalScore, &rec.Runs, &rec.BestScore)
	if errors.Is(err, sql.ErrNoRows) {
		return rec, nil
	}
	if err != nil {
		return Record{}, fmt.Errorf("storage: load %s: %w", id, err)
	}
	return rec, nil
}

// Add banks one run's score for id and returns the new total
// Negative deltas are stored as zero
func (s *ScoreStore) Add(id, name string, delta int64) (int64, error) {
	if err := validID(id); err != nil {
		return 0, err
	}
	if delta < 0 {
		delta = 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrClosed
	}

	const query = `
	INSERT INTO players (uuid, name, total_score, runs, best_score, last_seen)
	VALUES (?, ?, ?, 1, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(uuid) DO UPDATE SET
		name = excluded.name,
		total_score = players.total_score + excluded.total_score,
		runs = players.runs + 1,
		best_score = MAX(players.best_score, excluded.best_score),
		last_seen = CURRENT_TIMESTAMP;
	`
	if _, err := s.db.Exec(query, id, name, delta, delta); err != nil {
		return 0, fmt.Errorf("storage: add %s: %w", id, err)
	}

	var total int64
	if err := s.db.QueryRow("SELECT total_score FROM players WHERE uuid = ?", id).Scan(&total); err != nil {
		return 0, fmt.Errorf("storage: read back %s: %w", id, err)
	}
	return total, nil
}

// Close releases the database, later calls return ErrClosed
func (s *ScoreStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
