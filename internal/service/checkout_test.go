package service

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dieuclat/storefront/internal/entity"
	"github.com/dieuclat/storefront/internal/messaging"
	"github.com/dieuclat/storefront/internal/repository/memory"
)

func fixedNow() time.Time {
	return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
}

func shipping() entity.ShippingDetails {
	return entity.ShippingDetails{
		Name:           "Sanya M.",
		Mobile:         "+91 98765 43210",
		Email:          "sanya@example.com",
		Address:        "12 MG Road, Bengaluru",
		ReceiverName:   "Rahul K.",
		ReceiverMobile: "9876501234",
	}
}

func approve(_ context.Context, req ChargeRequest) (ChargeResult, error) {
	return ChargeResult{Authorized: true, Reference: "PAY-" + req.OrderRef}, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	topics []string
	events []any
	err    error
}

func (p *recordingPublisher) PublishEvent(_ context.Context, topic, _ string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	p.events = append(p.events, event)
	return p.err
}

type fixture struct {
	store     *memory.Store
	session   *Session
	publisher *recordingPublisher
}

func newFixture(t *testing.T, gateway PaymentGateway, cfg CheckoutConfig) *fixture {
	t.Helper()
	store := memory.NewStore()
	pub := &recordingPublisher{}
	if cfg.Now == nil {
		cfg.Now = fixedNow
	}
	m := NewSessionManager(store, gateway, pub, cfg)
	s, err := m.Open(context.Background(), "s1")
	require.NoError(t, err)
	return &fixture{store: store, session: s, publisher: pub}
}

func (f *fixture) fillCart(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.session.Cart.AddToCart(ctx, product(1, 2400)))
	require.NoError(t, f.session.Cart.AddToCart(ctx, product(2, 1200)))
	require.NoError(t, f.session.Cart.AddToCart(ctx, product(2, 1200)))
}

func TestCheckout_PlacesOrderAndClearsCart(t *testing.T) {
	f := newFixture(t, PaymentGatewayFunc(approve), CheckoutConfig{})
	f.fillCart(t)
	checkout := f.session.Checkout
	assert.Equal(t, CheckoutIdle, checkout.State())

	order, err := checkout.Submit(context.Background(), shipping())
	require.NoError(t, err)

	assert.Equal(t, CheckoutSucceeded, checkout.State())
	assert.Equal(t, entity.NewMoney(4800, "INR"), order.TotalAmount)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, fixedNow(), order.CreatedAt)
	assert.Equal(t, fixedNow().Add(5*24*time.Hour), order.ExpectedDeliveryAt)
	assert.Equal(t, "PAY-"+order.ID, order.PaymentReference)
	assert.Regexp(t, regexp.MustCompile(`^ORD-[0-9A-Z]{9}$`), order.ID)

	assert.True(t, f.session.Cart.IsEmpty())
	require.Equal(t, 1, f.session.Orders.Len())
	stored, err := f.session.Orders.FindOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.TotalAmount, stored.TotalAmount)

	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, messaging.TopicOrdersPlaced, f.publisher.topics[0])
	event, ok := f.publisher.events[0].(entity.OrderPlaced)
	require.True(t, ok)
	assert.Equal(t, order.ID, event.OrderID)
	assert.Equal(t, "s1", event.SessionID)
}

func TestCheckout_OrderIsASnapshot(t *testing.T) {
	f := newFixture(t, PaymentGatewayFunc(approve), CheckoutConfig{})
	f.fillCart(t)

	order, err := f.session.Checkout.Submit(context.Background(), shipping())
	require.NoError(t, err)

	require.NoError(t, f.session.Cart.AddToCart(context.Background(), product(9, 99999)))
	stored, err := f.session.Orders.FindOrder(order.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Items, 2)
	assert.Equal(t, entity.NewMoney(4800, "INR"), stored.TotalAmount)
}

func TestCheckout_TrimsShippingDetails(t *testing.T) {
	f := newFixture(t, PaymentGatewayFunc(approve), CheckoutConfig{})
	f.fillCart(t)

	details := shipping()
	details.Name = "  Sanya M.  "
	order, err := f.session.Checkout.Submit(context.Background(), details)
	require.NoError(t, err)
	assert.Equal(t, "Sanya M.", order.ShippingDetails.Name)
}

func TestCheckout_RejectsInputBeforeSubmitting(t *testing.T) {
	charged := false
	gateway := PaymentGatewayFunc(func(ctx context.Context, req ChargeRequest) (ChargeResult, error) {
		charged = true
		return approve(ctx, req)
	})
	f := newFixture(t, gateway, CheckoutConfig{})

	_, err := f.session.Checkout.Submit(context.Background(), shipping())
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, CheckoutIdle, f.session.Checkout.State())

	f.fillCart(t)
	details := shipping()
	details.Email = "not-an-email"
	details.Address = "   "
	_, err = f.session.Checkout.Submit(context.Background(), details)

	var verr *entity.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CheckoutIdle, f.session.Checkout.State())
	assert.False(t, charged)
	assert.Equal(t, 0, f.session.Orders.Len())
	assert.Equal(t, 3, f.session.Cart.Count())
}

func TestCheckout_PaymentFailuresKeepCart(t *testing.T) {
	tests := []struct {
		name    string
		gateway PaymentGateway
		cfg     CheckoutConfig
		want    error
	}{
		{
			name: "declined",
			gateway: PaymentGatewayFunc(func(context.Context, ChargeRequest) (ChargeResult, error) {
				return ChargeResult{Authorized: false, Reason: "insufficient funds"}, nil
			}),
			want: ErrPaymentDeclined,
		},
		{
			name: "gateway error",
			gateway: PaymentGatewayFunc(func(context.Context, ChargeRequest) (ChargeResult, error) {
				return ChargeResult{}, errors.New("connection reset")
			}),
			want: ErrPaymentFailed,
		},
		{
			name:    "timeout",
			gateway: SimulatedGateway{Delay: time.Minute},
			cfg:     CheckoutConfig{PaymentTimeout: 20 * time.Millisecond},
			want:    ErrPaymentFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.gateway, tt.cfg)
			f.fillCart(t)

			_, err := f.session.Checkout.Submit(context.Background(), shipping())
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, CheckoutFailed, f.session.Checkout.State())
			assert.Equal(t, 3, f.session.Cart.Count())
			assert.Equal(t, 0, f.session.Orders.Len())
			assert.Empty(t, f.publisher.events)
		})
	}
}

func TestCheckout_PersistenceFailureKeepsCart(t *testing.T) {
	f := newFixture(t, PaymentGatewayFunc(approve), CheckoutConfig{})
	f.fillCart(t)
	f.store.FailSaves(errDiskFull)

	_, err := f.session.Checkout.Submit(context.Background(), shipping())
	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, CheckoutFailed, f.session.Checkout.State())
	assert.Equal(t, 0, f.session.Orders.Len())
	assert.Equal(t, 3, f.session.Cart.Count())

	f.store.FailSaves(nil)
	order, err := f.session.Checkout.Submit(context.Background(), shipping())
	require.NoError(t, err)
	assert.Equal(t, CheckoutSucceeded, f.session.Checkout.State())
	assert.Equal(t, entity.NewMoney(4800, "INR"), order.TotalAmount)
}

func TestCheckout_PublishFailureDoesNotFailOrder(t *testing.T) {
	f := newFixture(t, PaymentGatewayFunc(approve), CheckoutConfig{})
	f.publisher.err = errors.New("broker down")
	f.fillCart(t)

	_, err := f.session.Checkout.Submit(context.Background(), shipping())
	require.NoError(t, err)
	assert.Equal(t, 1, f.session.Orders.Len())
}

func TestCheckout_RejectsSecondSubmitWhileSubmitting(t *testing.T) {
	release := make(chan struct{})
	gateway := PaymentGatewayFunc(func(ctx context.Context, req ChargeRequest) (ChargeResult, error) {
		<-release
		return approve(ctx, req)
	})
	f := newFixture(t, gateway, CheckoutConfig{})
	f.fillCart(t)
	checkout := f.session.Checkout

	done := make(chan error, 1)
	go func() {
		_, err := checkout.Submit(context.Background(), shipping())
		done <- err
	}()

	require.Eventually(t, func() bool { return checkout.State() == CheckoutSubmitting }, time.Second, time.Millisecond)
	_, err := checkout.Submit(context.Background(), shipping())
	assert.ErrorIs(t, err, ErrCheckoutInProgress)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, f.session.Orders.Len())
}

func TestCheckout_RetriesOrderIDCollision(t *testing.T) {
	ids := []string{"ORD-AAAAAAAAA", "ORD-AAAAAAAAA", "ORD-BBBBBBBBB"}
	next := 0
	cfg := CheckoutConfig{NewOrderID: func() string {
		id := ids[next]
		next++
		return id
	}}
	f := newFixture(t, PaymentGatewayFunc(approve), cfg)

	f.fillCart(t)
	first, err := f.session.Checkout.Submit(context.Background(), shipping())
	require.NoError(t, err)
	f.fillCart(t)
	second, err := f.session.Checkout.Submit(context.Background(), shipping())
	require.NoError(t, err)

	assert.Equal(t, "ORD-AAAAAAAAA", first.ID)
	assert.Equal(t, "ORD-BBBBBBBBB", second.ID)
}

func TestNewOrderID(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-[0-9A-Z]{9}$`)
	seen := make(map[string]bool)
	for range 1000 {
		id := NewOrderID()
		require.Regexp(t, pattern, id)
		seen[id] = true
	}
	assert.Len(t, seen, 1000)
}

func TestSessionManager_OpenCachesSessions(t *testing.T) {
	m := NewSessionManager(memory.NewStore(), PaymentGatewayFunc(approve), nil, CheckoutConfig{})
	ctx := context.Background()

	a, err := m.Open(ctx, "s1")
	require.NoError(t, err)
	b, err := m.Open(ctx, "s1")
	require.NoError(t, err)
	assert.Same(t, a, b)

	c, err := m.Open(ctx, "s2")
	require.NoError(t, err)
	assert.NotSame(t, a, c)

	_, err = m.Open(ctx, "")
	assert.Error(t, err)
}

func TestSimulatedGateway(t *testing.T) {
	res, err := SimulatedGateway{Delay: time.Millisecond}.Charge(context.Background(), ChargeRequest{OrderRef: "ORD-1"})
	require.NoError(t, err)
	assert.True(t, res.Authorized)
	assert.Regexp(t, `^SIM-[0-9A-F]{12}$`, res.Reference)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = SimulatedGateway{Delay: time.Minute}.Charge(ctx, ChargeRequest{})
	assert.ErrorIs(t, err, context.Canceled)
}
