package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dieuclat/storefront/internal/repository"
)

type kvStore struct {
	db *sql.DB
}

// NewStorage creates a Storage backed by the kv_store table.
func NewStorage(db *sql.DB) repository.Storage {
	return &kvStore{db: db}
}

// Open connects to dsn, migrates, and returns the Storage.
func Open(dsn string) (repository.Storage, error) {
	db, err := InitDB(dsn)
	if err != nil {
		return nil, err
	}
	return NewStorage(db), nil
}

func (s *kvStore) Load(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv_store WHERE key = $1", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load key %s: %w", key, err)
	}
	return value, nil
}

func (s *kvStore) Save(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, NOW())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, string(value),
	)
	if err != nil {
		return fmt.Errorf("failed to save key %s: %w", key, err)
	}
	return nil
}

func (s *kvStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM kv_store WHERE key = $1", key); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

func (s *kvStore) Close() error {
	return s.db.Close()
}
