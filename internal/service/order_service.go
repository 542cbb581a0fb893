package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dieuclat/storefront/internal/entity"
	"github.com/dieuclat/storefront/internal/repository"
)

// OrderHistory is one session's append-only list of orders, most recent first.
type OrderHistory struct {
	storage repository.Storage
	key     string
	orders  []entity.Order
}

func OpenOrderHistory(ctx context.Context, storage repository.Storage, sessionID string) (*OrderHistory, error) {
	key := repository.Namespace(sessionID, repository.OrdersKey)
	orders, err := loadDocument[entity.Order](ctx, storage, key)
	if err != nil {
		return nil, err
	}
	return &OrderHistory{storage: storage, key: key, orders: orders}, nil
}

// Append stores o at the front of the history.
func (h *OrderHistory) Append(ctx context.Context, o entity.Order) error {
	if h.Has(o.ID) {
		return fmt.Errorf("order %s already exists", o.ID)
	}

	next := make([]entity.Order, 0, len(h.orders)+1)
	next = append(next, o.Clone())
	next = append(next, h.orders...)

	if err := saveDocument(ctx, h.storage, h.key, next); err != nil {
		slog.Error("Order not saved", "order_id", o.ID, "key", h.key, "err", err)
		return err
	}
	h.orders = next
	return nil
}

// List returns every order, most recent first.
func (h *OrderHistory) List() []entity.Order {
	out := make([]entity.Order, len(h.orders))
	for i, o := range h.orders {
		out[i] = o.Clone()
	}
	return out
}

// FindOrder returns the order with id, or ErrOrderNotFound.
func (h *OrderHistory) FindOrder(id string) (entity.Order, error) {
	for _, o := range h.orders {
		if o.ID == id {
			return o.Clone(), nil
		}
	}
	return entity.Order{}, fmt.Errorf("%w: %s", ErrOrderNotFound, id)
}

func (h *OrderHistory) Has(id string) bool {
	for _, o := range h.orders {
		if o.ID == id {
			return true
		}
	}
	return false
}

func (h *OrderHistory) Len() int {
	return len(h.orders)
}
