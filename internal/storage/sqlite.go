// Package storage keeps the round ledger in an in-memory SQLite database.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Nothing is written to disk; the ledger lives as long as the process.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite connection holding the round ledger.
type Store struct {
	db *sql.DB
}

// RoundRecord is one finished round.
type RoundRecord struct {
	ID        int64
	Session   string // local run or SSH session
	Variant   string
	Round     int
	Outcome   string // "win", "loss" or "draw"
	Delta     int
	Score     int // match score after Delta
	Ticks     uint64
	CreatedAt time.Time
}

// Summary aggregates the rounds of one session.
type Summary struct {
	Session    string
	Rounds     int
	Wins       int
	Losses     int
	Draws      int
	Score      int // sum of deltas
	AvgTicks   float64
	LastPlayed time.Time
}

// VariantStats aggregates all rounds played on one variant.
type VariantStats struct {
	Variant  string
	Rounds   int
	Wins     int
	Losses   int
	Draws    int
	AvgTicks float64
}

// Open creates an empty in-memory ledger and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: is a separate database.
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

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session TEXT NOT NULL,
			variant TEXT NOT NULL,
			round INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			delta INTEGER NOT NULL,
			score INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_session ON rounds(session);
		CREATE INDEX IF NOT EXISTS idx_rounds_variant ON rounds(variant);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection. The ledger is discarded.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordRound appends a finished round to the ledger.
// Returns the ID of the inserted record.
func (s *Store) RecordRound(r RoundRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO rounds (session, variant, round, outcome, delta, score, ticks)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Session, r.Variant, r.Round, r.Outcome, r.Delta, r.Score, int64(r.Ticks),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Rounds returns the most recent rounds of a session, newest first.
// An empty session lists every session.
func (s *Store) Rounds(session string, limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session, variant, round, outcome, delta, score, ticks, created_at
		 FROM rounds
		 WHERE ? = '' OR session = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		session, session, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var records []RoundRecord
	for rows.Next() {
		var r RoundRecord
		var ticks int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Session, &r.Variant, &r.Round, &r.Outcome, &r.Delta, &r.Score, &ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Summary aggregates the rounds of a session.
func (s *Store) Summary(session string) (*Summary, error) {
	sum := &Summary{Session: session}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN delta > 0 THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN delta < 0 THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN delta = 0 THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(delta), 0),
		        COALESCE(AVG(ticks), 0),
		        MAX(created_at)
		 FROM rounds WHERE session = ?`,
		session,
	).Scan(&sum.Rounds, &sum.Wins, &sum.Losses, &sum.Draws, &sum.Score, &sum.AvgTicks, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get session summary: %w", err)
	}
	sum.LastPlayed = parseTime(lastPlayed)

	return sum, nil
}

// VariantStats returns aggregated statistics for every variant played.
func (s *Store) VariantStats() (map[string]*VariantStats, error) {
	rows, err := s.db.Query(
		`SELECT variant, COUNT(*),
		        SUM(CASE WHEN delta > 0 THEN 1 ELSE 0 END),
		        SUM(CASE WHEN delta < 0 THEN 1 ELSE 0 END),
		        SUM(CASE WHEN delta = 0 THEN 1 ELSE 0 END),
		        AVG(ticks)
		 FROM rounds
		 GROUP BY variant`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get variant stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*VariantStats)
	for rows.Next() {
		var v VariantStats
		if err := rows.Scan(&v.Variant, &v.Rounds, &v.Wins, &v.Losses, &v.Draws, &v.AvgTicks); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats[v.Variant] = &v
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearSession deletes all rounds of a session.
func (s *Store) ClearSession(session string) error {
	_, err := s.db.Exec("DELETE FROM rounds WHERE session = ?", session)
	if err != nil {
		return fmt.Errorf("storage: cannot clear session: %w", err)
	}
	return nil
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
