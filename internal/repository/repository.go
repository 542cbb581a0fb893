package repository

import (
	"context"
	"errors"
)

// Storage keys, one JSON document each. They match the keys the storefront
// has always used so older data keeps loading.
const (
	CartKey     = "dieuclat_cart"
	WishlistKey = "dieuclat_wishlist"
	OrdersKey   = "dieuclat_orders"
)

// ErrNotFound is returned by Storage.Load for a key that was never saved.
var ErrNotFound = errors.New("key not found")

// Storage is durable key/value storage. Values are whole JSON documents,
// read once and rewritten wholesale on every change.
type Storage interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Namespace scopes key to a single session.
func Namespace(sessionID, key string) string {
	return "session:" + sessionID + ":" + key
}
