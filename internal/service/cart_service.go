package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dieuclat/storefront/internal/entity"
	"github.com/dieuclat/storefront/internal/repository"
)

// CartStore is one session's shopping cart. Every mutation is committed to
// storage before it becomes visible; if the commit fails the cart is left as
// it was and a *PersistenceError is returned.
//
// A CartStore is not safe for concurrent use; Session serializes access.
type CartStore struct {
	storage repository.Storage
	key     string
	cart    *entity.Cart
}

// OpenCartStore reads the session's cart once.
func OpenCartStore(ctx context.Context, storage repository.Storage, sessionID string) (*CartStore, error) {
	key := repository.Namespace(sessionID, repository.CartKey)
	items, err := loadDocument[entity.CartItem](ctx, storage, key)
	if err != nil {
		return nil, err
	}
	return &CartStore{
		storage: storage,
		key:     key,
		cart:    entity.NewCart(items),
	}, nil
}

func (s *CartStore) commit(ctx context.Context, op string, change func(c *entity.Cart)) error {
	next := s.cart.Clone()
	change(next)

	if err := saveDocument(ctx, s.storage, s.key, next.Items); err != nil {
		slog.Warn("Cart change not saved", "op", op, "key", s.key, "err", err)
		return err
	}
	s.cart = next
	return nil
}

// AddToCart adds one unit of p.
func (s *CartStore) AddToCart(ctx context.Context, p entity.Product) error {
	return s.AddQuantity(ctx, p, 1)
}

// AddQuantity adds n units of p in a single save.
func (s *CartStore) AddQuantity(ctx context.Context, p entity.Product, n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, n)
	}
	return s.commit(ctx, "add", func(c *entity.Cart) { c.AddN(p, n) })
}

func (s *CartStore) RemoveFromCart(ctx context.Context, productID int) error {
	return s.commit(ctx, "remove", func(c *entity.Cart) { c.Remove(productID) })
}

// UpdateQuantity changes a line by delta; a line reaching zero is removed.
func (s *CartStore) UpdateQuantity(ctx context.Context, productID, delta int) error {
	return s.commit(ctx, "update_quantity", func(c *entity.Cart) { c.UpdateQuantity(productID, delta) })
}

func (s *CartStore) ClearCart(ctx context.Context) error {
	return s.commit(ctx, "clear", func(c *entity.Cart) { c.Clear() })
}

// Items returns a copy of the cart lines.
func (s *CartStore) Items() []entity.CartItem {
	return append([]entity.CartItem(nil), s.cart.Items...)
}

func (s *CartStore) Count() int {
	return s.cart.Count()
}

func (s *CartStore) Total() entity.Money {
	return s.cart.Total()
}

func (s *CartStore) IsEmpty() bool {
	return s.cart.IsEmpty()
}
