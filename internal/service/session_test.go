package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dieuclat/storefront/internal/repository"
	"github.com/dieuclat/storefront/internal/repository/memory"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newManager(store repository.Storage, clock *fakeClock) *SessionManager {
	return NewSessionManager(store, PaymentGatewayFunc(approve), nil, CheckoutConfig{Now: clock.Now})
}

func TestSessionManager_EvictsIdleSessions(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: fixedNow()}
	m := newManager(memory.NewStore(), clock)

	for i := range 1000 {
		s, err := m.Open(ctx, fmt.Sprintf("anon-%d", i))
		require.NoError(t, err)
		m.Release(s)
	}
	require.Equal(t, 1000, m.Len())

	clock.Advance(time.Minute)
	assert.Equal(t, 0, m.EvictIdle(ctx, 2*time.Minute))
	assert.Equal(t, 1000, m.Len())

	clock.Advance(time.Minute)
	assert.Equal(t, 1000, m.EvictIdle(ctx, 2*time.Minute))
	assert.Equal(t, 0, m.Len())
}

func TestSessionManager_KeepsHeldAndRecentSessions(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: fixedNow()}
	m := newManager(memory.NewStore(), clock)

	held, err := m.Open(ctx, "held")
	require.NoError(t, err)
	idle, err := m.Open(ctx, "idle")
	require.NoError(t, err)
	m.Release(idle)

	clock.Advance(time.Hour)
	recent, err := m.Open(ctx, "recent")
	require.NoError(t, err)
	m.Release(recent)

	assert.Equal(t, 1, m.EvictIdle(ctx, 30*time.Minute))
	assert.Equal(t, 2, m.Len())

	again, err := m.Open(ctx, "held")
	require.NoError(t, err)
	assert.Same(t, held, again)
	m.Release(again)
	m.Release(held)
}

func TestSessionManager_EvictionKeepsStoredData(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: fixedNow()}
	store := memory.NewStore()
	m := newManager(store, clock)

	s, err := m.Open(ctx, "s1")
	require.NoError(t, err)
	require.NoError(t, s.Cart.AddToCart(ctx, product(1, 100)))
	require.NoError(t, s.Wishlist.AddToWishlist(ctx, product(2, 100)))
	require.NoError(t, s.Wishlist.RemoveFromWishlist(ctx, 2))
	m.Release(s)

	clock.Advance(time.Hour)
	require.Equal(t, 1, m.EvictIdle(ctx, time.Minute))

	_, err = store.Load(ctx, repository.Namespace("s1", repository.CartKey))
	assert.NoError(t, err)
	_, err = store.Load(ctx, repository.Namespace("s1", repository.WishlistKey))
	assert.ErrorIs(t, err, repository.ErrNotFound)

	reopened, err := m.Open(ctx, "s1")
	require.NoError(t, err)
	assert.NotSame(t, s, reopened)
	assert.Equal(t, 1, reopened.Cart.Count())
	assert.Equal(t, 0, reopened.Wishlist.Count())
}

func TestSessionManager_RunEvictionStopsWithContext(t *testing.T) {
	m := newManager(memory.NewStore(), &fakeClock{now: fixedNow()})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		m.RunEviction(ctx, time.Minute)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("RunEviction did not return after cancel")
	}
}
