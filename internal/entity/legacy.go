package entity

import (
	"encoding/json"
	"time"
)

// Documents written by the storefront before it moved to this schema key
// lines by "id" and keep order timestamps and totals under different names.
// The decoders below read both shapes; encoding always uses the current one.

func (i *CartItem) UnmarshalJSON(data []byte) error {
	type plain CartItem
	var v struct {
		plain
		LegacyID *int `json:"id"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*i = CartItem(v.plain)
	if i.ProductID == 0 && v.LegacyID != nil {
		i.ProductID = *v.LegacyID
	}
	return nil
}

func (i *WishlistItem) UnmarshalJSON(data []byte) error {
	type plain WishlistItem
	var v struct {
		plain
		LegacyID *int `json:"id"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*i = WishlistItem(v.plain)
	if i.ProductID == 0 && v.LegacyID != nil {
		i.ProductID = *v.LegacyID
	}
	return nil
}

func (i *OrderItem) UnmarshalJSON(data []byte) error {
	type plain OrderItem
	var v struct {
		plain
		LegacyID *int `json:"id"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*i = OrderItem(v.plain)
	if i.ProductID == 0 && v.LegacyID != nil {
		i.ProductID = *v.LegacyID
	}
	return nil
}

func (o *Order) UnmarshalJSON(data []byte) error {
	type plain Order
	var v struct {
		plain
		LegacyDate             *time.Time `json:"date"`
		LegacyTotal            *Money     `json:"total"`
		LegacyExpectedDelivery *time.Time `json:"expectedDelivery"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Order(v.plain)
	if o.CreatedAt.IsZero() && v.LegacyDate != nil {
		o.CreatedAt = *v.LegacyDate
	}
	if o.TotalAmount.IsZero() && o.TotalAmount.Currency == "" && v.LegacyTotal != nil {
		o.TotalAmount = *v.LegacyTotal
	}
	if o.ExpectedDeliveryAt.IsZero() && v.LegacyExpectedDelivery != nil {
		o.ExpectedDeliveryAt = *v.LegacyExpectedDelivery
	}
	return nil
}
