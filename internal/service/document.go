package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dieuclat/storefront/internal/repository"
)

// loadDocument reads the JSON array stored under key. A missing key is an
// empty list. A document that no longer decodes is logged and treated as
// empty, so a corrupted list can always be recovered by writing over it.
func loadDocument[T any](ctx context.Context, storage repository.Storage, key string) ([]T, error) {
	data, err := storage.Load(ctx, key)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		slog.Warn("Discarding unreadable stored document", "key", key, "err", err)
		return nil, nil
	}
	return items, nil
}

// saveDocument rewrites the whole list under key.
func saveDocument[T any](ctx context.Context, storage repository.Storage, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return &PersistenceError{Key: key, Err: err}
	}
	if err := storage.Save(ctx, key, data); err != nil {
		return &PersistenceError{Key: key, Err: err}
	}
	return nil
}
