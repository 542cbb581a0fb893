package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dieuclat/storefront/internal/entity"
)

// OrderNotifier consumes OrderPlaced events and tells the customer their
// order is on its way. Sending mail is out of scope; the notification is
// logged.
type OrderNotifier struct {
	logger *slog.Logger
}

func NewOrderNotifier(logger *slog.Logger) *OrderNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderNotifier{logger: logger}
}

// Handle is a messaging.Subscriber handler.
func (n *OrderNotifier) Handle(ctx context.Context, payload []byte) error {
	var event entity.OrderPlaced
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("failed to unmarshal OrderPlaced: %w", err)
	}
	if event.OrderID == "" {
		return fmt.Errorf("OrderPlaced event has no order id")
	}

	n.logger.InfoContext(ctx, "📨 Order confirmation queued",
		"order_id", event.OrderID,
		"email", event.Email,
		"total", event.TotalAmount.Format(),
		"items_count", len(event.Items),
	)
	return nil
}
