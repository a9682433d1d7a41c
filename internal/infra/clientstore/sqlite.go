package clientstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore файловое хранилище для CLI
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLite открывает (или создает) базу по пути path
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite: %v", ErrStore, err)
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db, now: time.Now}, nil
}

func ensureSchema(db *sql.DB) error {
	createTable := `
CREATE TABLE IF NOT EXISTS client_store (
  key TEXT PRIMARY KEY,
  value BLOB NOT NULL,
  expires_at INTEGER
);`

	if _, err := db.Exec(createTable); err != nil {
		return fmt.Errorf("%w: create client_store table: %v", ErrStore, err)
	}
	return nil
}

// Close закрывает базу
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var (
		value     []byte
		expiresAt sql.NullInt64
	)

	err := s.db.QueryRowContext(ctx, `SELECT value, expires_at FROM client_store WHERE key = ?`, key).
		Scan(&value, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %v", ErrStore, key, err)
	}

	if expiresAt.Valid && s.now().Unix() >= expiresAt.Int64 {
		return nil, ErrNotFound
	}

	return value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var expiresAt sql.NullInt64
	if ttl > 0 {
		expiresAt = sql.NullInt64{Int64: s.now().Add(ttl).Unix(), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
INSERT INTO client_store (key, value, expires_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at`,
		key, value, expiresAt)
	if err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrStore, key, err)
	}
	return nil
}

func (s *SQLiteStore) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM client_store WHERE key = ?`, key); err != nil {
		return fmt.Errorf("%w: remove %s: %v", ErrStore, key, err)
	}
	return nil
}
