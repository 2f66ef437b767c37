package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore persiste el token en una tabla clave/valor local,
// el equivalente en disco al localStorage del navegador.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore abre (o crea) dbDir/dbFile y asegura el esquema.
func NewSQLiteStore(dbDir, dbFile string) (*SQLiteStore, error) {
	if err := os.MkdirAll(dbDir, 0o700); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(dbDir, dbFile))
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init storage schema: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS local_storage (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Get(ctx context.Context) (string, error) {
	var token string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM local_storage WHERE key = ?`, TokenKey).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

func (s *SQLiteStore) Set(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return s.Clear(ctx)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO local_storage (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, TokenKey, token)
	if err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM local_storage WHERE key = ?`, TokenKey); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}
