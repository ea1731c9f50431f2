package storage

import (
	"database/sql"
	"errors"

	// Import sqlite driver
	_ "modernc.org/sqlite"
)

// SQLiteStore is a file-backed Store holding one kv table. Use ":memory:"
// for a throwaway database in tests.
type SQLiteStore struct {
	conn  *sql.DB
	quota int64
}

// NewSQLiteStore opens (or creates) the store at path and runs migrations.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, err
	}

	s := &SQLiteStore{conn: conn, quota: DefaultQuotaBytes}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, err
	}

	return s, nil
}

func (s *SQLiteStore) migrate() error {
	_, err := s.conn.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	return err
}

// SetQuota overrides the byte quota. Intended for tests.
func (s *SQLiteStore) SetQuota(quota int64) {
	s.quota = quota
}

// Get returns the value for key if present.
func (s *SQLiteStore) Get(key string) (string, bool, error) {
	var value string
	err := s.conn.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set writes value under key, rejecting writes that would exceed the quota.
func (s *SQLiteStore) Set(key, value string) error {
	var used int64
	err := s.conn.QueryRow(
		"SELECT COALESCE(SUM(LENGTH(key) + LENGTH(value)), 0) FROM kv WHERE key != ?",
		key,
	).Scan(&used)
	if err != nil {
		return err
	}
	if used+int64(len(key)+len(value)) > s.quota {
		return ErrQuotaExceeded
	}

	_, err = s.conn.Exec(
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	return err
}

// Delete removes key. Deleting an absent key is a no-op.
func (s *SQLiteStore) Delete(key string) error {
	_, err := s.conn.Exec("DELETE FROM kv WHERE key = ?", key)
	return err
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}
