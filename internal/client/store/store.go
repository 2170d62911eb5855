// Package store persists the console's session state between runs in a
// small SQLite key-value table. The only key in use today is the bearer
// token; the table stays generic so future client-side settings can share it.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/dvillarroel/actifijo/internal/client/store/migrations"
	"github.com/dvillarroel/actifijo/internal/common"
	"github.com/dvillarroel/actifijo/internal/dbx"

	_ "modernc.org/sqlite"
)

type Store struct {
	db dbx.DBTX
}

func New(db dbx.DBTX) *Store {
	return &Store{db: db}
}

// Open opens (creating if needed) the session database at dsn and applies
// pending migrations.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete session[%s]: %w", key, err)
	}
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Token returns the persisted bearer token, "" when none is stored.
func (s *Store) Token(ctx context.Context) (string, error) {
	return s.Get(ctx, common.SessionTokenKey)
}

// SetToken persists the bearer token.
func (s *Store) SetToken(ctx context.Context, token string) error {
	return s.Set(ctx, common.SessionTokenKey, token)
}

// ClearToken removes the persisted bearer token.
func (s *Store) ClearToken(ctx context.Context) error {
	return s.Delete(ctx, common.SessionTokenKey)
}
