// Package database implements the key-value store on SQL databases: Postgres
// through lib/pq and SQLite through modernc.org/sqlite.
package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
	"printshop-backend/internal/kv"
)

type dialect struct {
	get    string
	upsert string
	delete string
	scan   string
	// scanArgs builds the arguments of scan for a literal key prefix.
	scanArgs func(prefix string) []any
}

var postgresDialect = dialect{
	get: `SELECT value FROM kv_store WHERE key = $1`,
	upsert: `INSERT INTO kv_store (key, value) VALUES ($1, $2::jsonb)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
	delete:   `DELETE FROM kv_store WHERE key = $1`,
	scan:     `SELECT key, value FROM kv_store WHERE key LIKE $1 ESCAPE '\'`,
	scanArgs: func(prefix string) []any {
		return []any{kv.EscapeLike(prefix) + "%"}
	},
}

// SQLite LIKE is case-insensitive for ASCII, so the scan compares a prefix
// slice instead. The prefix is passed twice.
var sqliteDialect = dialect{
	get: `SELECT value FROM kv_store WHERE key = ?`,
	upsert: `INSERT INTO kv_store (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
	delete:   `DELETE FROM kv_store WHERE key = ?`,
	scan:     `SELECT key, value FROM kv_store WHERE substr(key, 1, length(?)) = ?`,
	scanArgs: func(prefix string) []any {
		return []any{prefix, prefix}
	},
}

const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS kv_store (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)
`

// KVStore is a kv.Store over a single kv_store table.
type KVStore struct {
	db      *sql.DB
	dialect dialect
}

// NewPostgresStore connects to Postgres and applies pending migrations.
func NewPostgresStore(ctx context.Context, connectionString string) (*KVStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := NewMigrator(db).Run(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &KVStore{db: db, dialect: postgresDialect}, nil
}

// NewSQLiteStore opens (creating if needed) the SQLite file at path.
func NewSQLiteStore(path string) (*KVStore, error) {
	db, err := sql.Open("sqlite", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// One writer at a time avoids SQLITE_BUSY under concurrent requests.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create kv_store table: %w", err)
	}

	return &KVStore{db: db, dialect: sqliteDialect}, nil
}

func (s *KVStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, s.dialect.get, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, kv.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return json.RawMessage(value), nil
}

func (s *KVStore) Upsert(ctx context.Context, key string, value json.RawMessage) error {
	// Passed as a string: lib/pq would encode []byte as bytea.
	if _, err := s.db.ExecContext(ctx, s.dialect.upsert, key, string(value)); err != nil {
		return fmt.Errorf("failed to upsert %s: %w", key, err)
	}
	return nil
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, s.dialect.delete, key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (s *KVStore) Scan(ctx context.Context, prefix string) ([]kv.Entry, error) {
	rows, err := s.db.QueryContext(ctx, s.dialect.scan, s.dialect.scanArgs(prefix)...)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", prefix, err)
	}
	defer rows.Close()

	entries := make([]kv.Entry, 0)
	for rows.Next() {
		var (
			key   string
			value []byte
		)
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		entries = append(entries, kv.Entry{Key: key, Value: json.RawMessage(value)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", prefix, err)
	}
	return entries, nil
}

func (s *KVStore) Close() error {
	return s.db.Close()
}
