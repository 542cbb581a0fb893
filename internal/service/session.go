package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dieuclat/storefront/internal/messaging"
	"github.com/dieuclat/storefront/internal/repository"
)

// DefaultSessionIdleTimeout is how long an unused session stays in memory.
const DefaultSessionIdleTimeout = 30 * time.Minute

// Session bundles one shopper's cart, wishlist, order history and checkout.
// Callers hold Lock while using the stores.
type Session struct {
	ID string

	mu       sync.Mutex
	Cart     *CartStore
	Wishlist *WishlistStore
	Orders   *OrderHistory
	Checkout *Checkout

	// guarded by SessionManager.mu
	refs     int
	lastUsed time.Time
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// SessionManager opens sessions lazily and drops them from memory once they
// have been idle for a while. Every Open must be paired with a Release; a
// session that is held is never evicted.
type SessionManager struct {
	storage   repository.Storage
	gateway   PaymentGateway
	publisher messaging.Publisher
	cfg       CheckoutConfig

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionManager(storage repository.Storage, gateway PaymentGateway, publisher messaging.Publisher, cfg CheckoutConfig) *SessionManager {
	if publisher == nil {
		publisher = messaging.Noop{}
	}
	return &SessionManager{
		storage:   storage,
		gateway:   gateway,
		publisher: publisher,
		cfg:       cfg.withDefaults(),
		sessions:  make(map[string]*Session),
	}
}

// Open returns the session for id, reading its documents from storage the
// first time it is seen.
func (m *SessionManager) Open(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, fmt.Errorf("session id is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[id]; ok {
		s.refs++
		s.lastUsed = m.cfg.Now()
		return s, nil
	}

	cart, err := OpenCartStore(ctx, m.storage, id)
	if err != nil {
		return nil, err
	}
	wishlist, err := OpenWishlistStore(ctx, m.storage, id)
	if err != nil {
		return nil, err
	}
	orders, err := OpenOrderHistory(ctx, m.storage, id)
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID:       id,
		Cart:     cart,
		Wishlist: wishlist,
		Orders:   orders,
		Checkout: NewCheckout(id, cart, orders, m.gateway, m.publisher, m.cfg),
		refs:     1,
		lastUsed: m.cfg.Now(),
	}
	m.sessions[id] = s
	return s, nil
}

// Release marks the end of one use of s.
func (m *SessionManager) Release(s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.refs > 0 {
		s.refs--
	}
	s.lastUsed = m.cfg.Now()
}

// Len reports how many sessions are held in memory.
func (m *SessionManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// EvictIdle drops every released session unused for longer than idle and
// returns how many were dropped. Documents of an evicted session that hold
// nothing are deleted from storage; the rest stay for the next Open.
func (m *SessionManager) EvictIdle(ctx context.Context, idle time.Duration) int {
	cutoff := m.cfg.Now().Add(-idle)

	// Purging happens under the lock so a concurrent Open of the same id
	// cannot write a document that is then deleted.
	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for id, s := range m.sessions {
		if s.refs == 0 && !s.lastUsed.After(cutoff) {
			delete(m.sessions, id)
			m.purgeEmpty(ctx, s)
			evicted++
		}
	}
	if evicted > 0 {
		slog.Debug("Evicted idle sessions", "count", evicted)
	}
	return evicted
}

func (m *SessionManager) purgeEmpty(ctx context.Context, s *Session) {
	var keys []string
	if s.Cart.IsEmpty() {
		keys = append(keys, repository.Namespace(s.ID, repository.CartKey))
	}
	if s.Wishlist.Count() == 0 {
		keys = append(keys, repository.Namespace(s.ID, repository.WishlistKey))
	}
	if s.Orders.Len() == 0 {
		keys = append(keys, repository.Namespace(s.ID, repository.OrdersKey))
	}
	for _, key := range keys {
		if err := m.storage.Delete(ctx, key); err != nil {
			slog.Warn("Failed to delete empty session document", "key", key, "err", err)
		}
	}
}

// RunEviction calls EvictIdle every idle/2 until ctx is done.
func (m *SessionManager) RunEviction(ctx context.Context, idle time.Duration) {
	interval := max(idle/2, time.Second)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Session eviction stopped")
			return
		case <-ticker.C:
			m.EvictIdle(ctx, idle)
		}
	}
}
