package entity

import (
	"fmt"
	"strings"
	"time"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"    // Placed, awaiting dispatch
	OrderStatusDispatched OrderStatus = "Dispatched" // Handed over to the delivery partner
	OrderStatusDelivered  OrderStatus = "Delivered"  // Received by the receiver
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// ParseOrderStatus accepts a status name in any letter case.
func ParseOrderStatus(s string) (OrderStatus, error) {
	for _, st := range []OrderStatus{OrderStatusPending, OrderStatusDispatched, OrderStatusDelivered, OrderStatusCancelled} {
		if strings.EqualFold(s, string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

// OrderItem is a line of an order, copied from the cart when the order was placed.
type OrderItem struct {
	ProductID int    `json:"productId"`
	Name      string `json:"name"`
	Price     Money  `json:"price"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
}

func (i OrderItem) Subtotal() Money {
	return i.Price.Mul(i.Quantity)
}

// Order is an immutable record of a completed checkout.
type Order struct {
	ID                 string          `json:"id"`
	CreatedAt          time.Time       `json:"createdAt"`
	Status             OrderStatus     `json:"status"`
	Items              []OrderItem     `json:"items"`
	TotalAmount        Money           `json:"totalAmount"`
	ShippingDetails    ShippingDetails `json:"shippingDetails"`
	ExpectedDeliveryAt time.Time       `json:"expectedDeliveryAt"`
	PaymentReference   string          `json:"paymentReference,omitempty"`
}

// NewOrder snapshots cart items into a Pending order. The order shares no
// memory with items.
func NewOrder(id string, items []CartItem, details ShippingDetails, createdAt time.Time, leadTime time.Duration) Order {
	snapshot := make([]OrderItem, 0, len(items))
	total := Money{Currency: DefaultCurrency}
	if len(items) > 0 {
		total.Currency = items[0].Price.Currency
	}
	for _, item := range items {
		snapshot = append(snapshot, OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Image:     item.Image,
			Quantity:  item.Quantity,
		})
		total = total.Add(item.Subtotal())
	}

	return Order{
		ID:                 id,
		CreatedAt:          createdAt,
		Status:             OrderStatusPending,
		Items:              snapshot,
		TotalAmount:        total,
		ShippingDetails:    details,
		ExpectedDeliveryAt: createdAt.Add(leadTime),
	}
}

// ItemCount is the number of units across all lines.
func (o Order) ItemCount() int {
	n := 0
	for _, item := range o.Items {
		n += item.Quantity
	}
	return n
}

func (o Order) Clone() Order {
	c := o
	c.Items = append([]OrderItem(nil), o.Items...)
	return c
}
