// Package storage provides SQLite-based persistence for the wallet balance
// and round history. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RoundRecord is one settled round as written to the history table.
type RoundRecord struct {
	ID         int64
	GameID     string
	Outcome    string // "crashed" or "lifeboat"
	Stake      float64
	Multiplier float64
	Payout     float64
	SafeHits   int
	CashedOut  bool
	CreatedAt  time.Time
}

// Stats contains aggregated round statistics for a game.
type Stats struct {
	GameID        string
	Rounds        int
	TotalStaked   float64
	TotalReturned float64
	Crashes       int
	Lifeboats     int
	CashOuts      int
	MaxMultiplier float64
	LastPlayed    time.Time
}

// RTP returns the realized return-to-player ratio, or 0 when nothing
// has been staked yet.
func (st Stats) RTP() float64 {
	if st.TotalStaked <= 0 {
		return 0
	}
	return st.TotalReturned / st.TotalStaked
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
		CREATE TABLE IF NOT EXISTS wallet (
			game_id TEXT PRIMARY KEY,
			balance REAL NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			outcome TEXT NOT NULL,
			stake REAL NOT NULL,
			multiplier REAL NOT NULL,
			payout REAL NOT NULL,
			safe_hits INTEGER NOT NULL DEFAULT 0,
			cashed_out INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_game_id ON rounds(game_id);
		CREATE INDEX IF NOT EXISTS idx_rounds_recent ON rounds(game_id, created_at DESC);
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

// Balance returns the persisted wallet balance for the given game.
// The second return value reports whether a wallet row exists yet.
func (s *Store) Balance(gameID string) (float64, bool, error) {
	var balance float64
	err := s.db.QueryRow(
		"SELECT balance FROM wallet WHERE game_id = ?",
		gameID,
	).Scan(&balance)

	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query balance: %w", err)
	}

	return balance, true, nil
}

// SaveBalance upserts the wallet balance for the given game.
func (s *Store) SaveBalance(gameID string, balance float64) error {
	_, err := s.db.Exec(
		`INSERT INTO wallet (game_id, balance, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(game_id) DO UPDATE SET
		   balance = excluded.balance,
		   updated_at = CURRENT_TIMESTAMP`,
		gameID, balance,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save balance: %w", err)
	}
	return nil
}

// RecordRound appends a settled round to the history.
// Returns the ID of the inserted record.
func (s *Store) RecordRound(r RoundRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO rounds (game_id, outcome, stake, multiplier, payout, safe_hits, cashed_out)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Outcome, r.Stake, r.Multiplier, r.Payout, r.SafeHits, boolToInt(r.CashedOut),
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

// RecentRounds retrieves the most recent rounds for the given game,
// newest first.
func (s *Store) RecentRounds(gameID string, limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, outcome, stake, multiplier, payout, safe_hits, cashed_out, created_at
		 FROM rounds
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var records []RoundRecord
	for rows.Next() {
		var r RoundRecord
		var cashedOut int
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Outcome, &r.Stake, &r.Multiplier, &r.Payout, &r.SafeHits, &cashedOut, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CashedOut = cashedOut != 0
		r.CreatedAt = parseTimestamp(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// GameStats retrieves aggregated round statistics for a specific game.
func (s *Store) GameStats(gameID string) (*Stats, error) {
	stats := &Stats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(stake), 0),
		        COALESCE(SUM(payout), 0),
		        COALESCE(SUM(CASE WHEN outcome = 'crashed' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = 'lifeboat' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(cashed_out), 0),
		        COALESCE(MAX(multiplier), 0)
		 FROM rounds WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Rounds, &stats.TotalStaked, &stats.TotalReturned,
		&stats.Crashes, &stats.Lifeboats, &stats.CashOuts, &stats.MaxMultiplier)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM rounds WHERE game_id = ? ORDER BY id DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// ClearRounds deletes all round history for the given game.
func (s *Store) ClearRounds(gameID string) error {
	_, err := s.db.Exec("DELETE FROM rounds WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// parseTimestamp handles the driver returning either time.Time or a
// SQLite datetime string.
func parseTimestamp(v any) time.Time {
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

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
