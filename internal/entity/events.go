package entity

import "time"

// Event represents a domain event published to the message broker.
type Event interface {
	EventType() string
}

// OrderPlaced is emitted once an order has been paid for and saved.
type OrderPlaced struct {
	SessionID   string      `json:"session_id"`
	OrderID     string      `json:"order_id"`
	Items       []OrderItem `json:"items"`
	TotalAmount Money       `json:"total_amount"`
	Email       string      `json:"email"`
	PlacedAt    time.Time   `json:"placed_at"`
}

func (e OrderPlaced) EventType() string { return "OrderPlaced" }

// NewOrderPlaced builds the event for a freshly stored order.
func NewOrderPlaced(sessionID string, o Order) OrderPlaced {
	return OrderPlaced{
		SessionID:   sessionID,
		OrderID:     o.ID,
		Items:       append([]OrderItem(nil), o.Items...),
		TotalAmount: o.TotalAmount,
		Email:       o.ShippingDetails.Email,
		PlacedAt:    o.CreatedAt,
	}
}
