package record

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps every record-setting score as a row; the record is the
// largest one.
type SQLiteStore struct {
	conn *sql.DB
}

// OpenSQLite opens (or creates) the record database.
func OpenSQLite(path string) (*SQLiteStore, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open record database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	s := &SQLiteStore{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return s, nil
}

// migrate creates tables if they don't exist
func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		score INTEGER NOT NULL CHECK (score >= 0),
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_records_score ON records(score);
	`
	if _, err := s.conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to migrate record database: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Read() (int, error) {
	var best int
	err := s.conn.QueryRow("SELECT COALESCE(MAX(score), 0) FROM records").Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("failed to read record: %w", err)
	}
	return best, nil
}

func (s *SQLiteStore) Write(score int) error {
	if score < 0 {
		return fmt.Errorf("%w: negative value %d", ErrInvalidRecord, score)
	}
	if _, err := s.conn.Exec("INSERT INTO records (score) VALUES (?)", score); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// History returns up to limit record-setting scores, best first.
func (s *SQLiteStore) History(limit int) ([]int, error) {
	rows, err := s.conn.Query("SELECT score FROM records ORDER BY score DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query record history: %w", err)
	}
	defer rows.Close()

	var scores []int
	for rows.Next() {
		var score int
		if err := rows.Scan(&score); err != nil {
			return nil, err
		}
		scores = append(scores, score)
	}
	return scores, rows.Err()
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}
