package service

import (
	"context"
	"log/slog"

	"github.com/dieuclat/storefront/internal/entity"
	"github.com/dieuclat/storefront/internal/repository"
)

// WishlistStore is one session's wishlist, persisted under its own key with
// the same commit-then-publish rule as CartStore.
type WishlistStore struct {
	storage  repository.Storage
	key      string
	wishlist *entity.Wishlist
}

func OpenWishlistStore(ctx context.Context, storage repository.Storage, sessionID string) (*WishlistStore, error) {
	key := repository.Namespace(sessionID, repository.WishlistKey)
	items, err := loadDocument[entity.WishlistItem](ctx, storage, key)
	if err != nil {
		return nil, err
	}
	return &WishlistStore{
		storage:  storage,
		key:      key,
		wishlist: entity.NewWishlist(items),
	}, nil
}

func (s *WishlistStore) commit(ctx context.Context, op string, change func(w *entity.Wishlist) bool) error {
	next := s.wishlist.Clone()
	if !change(next) {
		return nil
	}

	if err := saveDocument(ctx, s.storage, s.key, next.Items); err != nil {
		slog.Warn("Wishlist change not saved", "op", op, "key", s.key, "err", err)
		return err
	}
	s.wishlist = next
	return nil
}

// AddToWishlist saves p. Adding a product that is already saved does nothing.
func (s *WishlistStore) AddToWishlist(ctx context.Context, p entity.Product) error {
	return s.commit(ctx, "add", func(w *entity.Wishlist) bool { return w.Add(p) })
}

func (s *WishlistStore) RemoveFromWishlist(ctx context.Context, productID int) error {
	return s.commit(ctx, "remove", func(w *entity.Wishlist) bool { return w.Remove(productID) })
}

func (s *WishlistStore) ClearWishlist(ctx context.Context) error {
	return s.commit(ctx, "clear", func(w *entity.Wishlist) bool {
		w.Clear()
		return true
	})
}

func (s *WishlistStore) IsInWishlist(productID int) bool {
	return s.wishlist.Contains(productID)
}

func (s *WishlistStore) Items() []entity.WishlistItem {
	return append([]entity.WishlistItem(nil), s.wishlist.Items...)
}

func (s *WishlistStore) Count() int {
	return s.wishlist.Count()
}
