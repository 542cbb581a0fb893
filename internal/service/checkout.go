package service

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dieuclat/storefront/internal/entity"
	"github.com/dieuclat/storefront/internal/messaging"
)

// CheckoutState is where the current checkout attempt stands.
type CheckoutState int

const (
	CheckoutIdle CheckoutState = iota
	CheckoutSubmitting
	CheckoutSucceeded
	CheckoutFailed
)

func (s CheckoutState) String() string {
	switch s {
	case CheckoutIdle:
		return "idle"
	case CheckoutSubmitting:
		return "submitting"
	case CheckoutSucceeded:
		return "succeeded"
	case CheckoutFailed:
		return "failed"
	default:
		return "unknown"
	}
}

const (
	DefaultPaymentTimeout   = 10 * time.Second
	DefaultDeliveryLeadTime = 5 * 24 * time.Hour

	orderIDAttempts = 10
	orderIDLength   = 9
)

// orderIDSpace is 36^9, the number of distinct 9-character base-36 suffixes.
const orderIDSpace = 101559956668416

// NewOrderID returns a reference such as ORD-K3X9QZ0AB drawn from a random UUID.
func NewOrderID() string {
	u := uuid.New()
	n := binary.BigEndian.Uint64(u[8:]) % orderIDSpace
	s := strings.ToUpper(strconv.FormatUint(n, 36))
	return "ORD-" + strings.Repeat("0", orderIDLength-len(s)) + s
}

// CheckoutConfig tunes a Checkout. Zero fields take defaults.
type CheckoutConfig struct {
	PaymentTimeout   time.Duration
	DeliveryLeadTime time.Duration
	Now              func() time.Time
	NewOrderID       func() string
}

func (c CheckoutConfig) withDefaults() CheckoutConfig {
	if c.PaymentTimeout <= 0 {
		c.PaymentTimeout = DefaultPaymentTimeout
	}
	if c.DeliveryLeadTime <= 0 {
		c.DeliveryLeadTime = DefaultDeliveryLeadTime
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	if c.NewOrderID == nil {
		c.NewOrderID = NewOrderID
	}
	return c
}

// Checkout turns a session's cart and a shipping form into an order.
type Checkout struct {
	sessionID string
	cart      *CartStore
	history   *OrderHistory
	gateway   PaymentGateway
	publisher messaging.Publisher
	cfg       CheckoutConfig

	mu    sync.Mutex
	state CheckoutState
}

func NewCheckout(sessionID string, cart *CartStore, history *OrderHistory, gateway PaymentGateway, publisher messaging.Publisher, cfg CheckoutConfig) *Checkout {
	if publisher == nil {
		publisher = messaging.Noop{}
	}
	return &Checkout{
		sessionID: sessionID,
		cart:      cart,
		history:   history,
		gateway:   gateway,
		publisher: publisher,
		cfg:       cfg.withDefaults(),
	}
}

func (c *Checkout) State() CheckoutState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Submit places an order for the current cart.
//
// Input problems (ErrEmptyCart, *entity.ValidationError) are reported before
// the attempt starts and leave the state unchanged. Once submitting, the
// customer is charged first and the order is stored second; a failure in
// either step leaves the cart untouched and the state Failed.
func (c *Checkout) Submit(ctx context.Context, details entity.ShippingDetails) (entity.Order, error) {
	c.mu.Lock()
	if c.state == CheckoutSubmitting {
		c.mu.Unlock()
		return entity.Order{}, ErrCheckoutInProgress
	}
	if c.cart.IsEmpty() {
		c.mu.Unlock()
		return entity.Order{}, ErrEmptyCart
	}
	details = details.Trimmed()
	if err := details.Validate(); err != nil {
		c.mu.Unlock()
		return entity.Order{}, err
	}
	c.state = CheckoutSubmitting
	c.mu.Unlock()

	order, err := c.submit(ctx, details)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = CheckoutFailed
		slog.Warn("Checkout failed", "session_id", c.sessionID, "err", err)
		return entity.Order{}, err
	}
	c.state = CheckoutSucceeded
	return order, nil
}

func (c *Checkout) submit(ctx context.Context, details entity.ShippingDetails) (entity.Order, error) {
	id, err := c.uniqueOrderID()
	if err != nil {
		return entity.Order{}, err
	}

	items := c.cart.Items()
	total := c.cart.Total()

	payCtx, cancel := context.WithTimeout(ctx, c.cfg.PaymentTimeout)
	defer cancel()

	res, err := c.gateway.Charge(payCtx, ChargeRequest{Amount: total, OrderRef: id})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return entity.Order{}, fmt.Errorf("%w: gateway timed out after %s", ErrPaymentFailed, c.cfg.PaymentTimeout)
		}
		return entity.Order{}, fmt.Errorf("%w: %w", ErrPaymentFailed, err)
	}
	if !res.Authorized {
		return entity.Order{}, fmt.Errorf("%w: %s", ErrPaymentDeclined, res.Reason)
	}

	order := entity.NewOrder(id, items, details, c.cfg.Now(), c.cfg.DeliveryLeadTime)
	order.PaymentReference = res.Reference

	if err := c.history.Append(ctx, order); err != nil {
		return entity.Order{}, err
	}

	if err := c.cart.ClearCart(ctx); err != nil {
		slog.Warn("Order placed but cart not cleared", "order_id", order.ID, "err", err)
	}

	event := entity.NewOrderPlaced(c.sessionID, order)
	if err := c.publisher.PublishEvent(ctx, messaging.TopicOrdersPlaced, order.ID, event); err != nil {
		slog.Error("Failed to publish OrderPlaced", "order_id", order.ID, "err", err)
	}

	slog.Info("✅ Order placed",
		"order_id", order.ID,
		"session_id", c.sessionID,
		"total", order.TotalAmount.Format(),
		"items_count", len(order.Items),
	)
	return order, nil
}

func (c *Checkout) uniqueOrderID() (string, error) {
	for range orderIDAttempts {
		id := c.cfg.NewOrderID()
		if !c.history.Has(id) {
			return id, nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique order id after %d attempts", orderIDAttempts)
}
