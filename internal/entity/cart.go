package entity

import "math"

// CartItem is one line of the cart. There is at most one per product.
type CartItem struct {
	ProductID int    `json:"productId"`
	Name      string `json:"name"`
	Price     Money  `json:"price"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
}

// Subtotal is price times quantity.
func (i CartItem) Subtotal() Money {
	return i.Price.Mul(i.Quantity)
}

// Cart holds the line items in the order they were first added.
type Cart struct {
	Items []CartItem
}

// NewCart builds a cart from stored items, enforcing the cart invariants.
func NewCart(items []CartItem) *Cart {
	c := &Cart{Items: append([]CartItem(nil), items...)}
	c.Normalize()
	return c
}

func (c *Cart) index(productID int) int {
	for i, item := range c.Items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

// Find returns the line for productID, if present.
func (c *Cart) Find(productID int) (CartItem, bool) {
	if i := c.index(productID); i >= 0 {
		return c.Items[i], true
	}
	return CartItem{}, false
}

// Add increments the line for p, or appends a new line with quantity 1.
func (c *Cart) Add(p Product) {
	c.AddN(p, 1)
}

// AddN adds n units of p. A non-positive n does nothing.
func (c *Cart) AddN(p Product, n int) {
	if n <= 0 {
		return
	}
	if i := c.index(p.ID); i >= 0 {
		c.Items[i].Quantity = addQuantity(c.Items[i].Quantity, n)
		return
	}
	c.Items = append(c.Items, CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  n,
	})
}

// Remove deletes the line for productID. Absent ids are a no-op.
func (c *Cart) Remove(productID int) {
	if i := c.index(productID); i >= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}
}

// UpdateQuantity applies delta, clamping at zero. A line reaching zero is removed.
func (c *Cart) UpdateQuantity(productID, delta int) {
	i := c.index(productID)
	if i < 0 {
		return
	}
	q := max(0, addQuantity(c.Items[i].Quantity, delta))
	if q == 0 {
		c.Remove(productID)
		return
	}
	c.Items[i].Quantity = q
}

func (c *Cart) Clear() {
	c.Items = nil
}

// Count is the sum of all quantities.
func (c *Cart) Count() int {
	n := 0
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// Total is the sum of price times quantity over all lines.
func (c *Cart) Total() Money {
	total := Money{Currency: DefaultCurrency}
	if len(c.Items) > 0 {
		total.Currency = c.Items[0].Price.Currency
	}
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c *Cart) Clone() *Cart {
	return &Cart{Items: append([]CartItem(nil), c.Items...)}
}

// Normalize merges duplicate lines and drops lines with quantity <= 0.
func (c *Cart) Normalize() {
	var out []CartItem
	seen := make(map[int]int, len(c.Items))
	for _, item := range c.Items {
		if item.Quantity <= 0 {
			continue
		}
		if i, ok := seen[item.ProductID]; ok {
			out[i].Quantity = addQuantity(out[i].Quantity, item.Quantity)
			continue
		}
		seen[item.ProductID] = len(out)
		out = append(out, item)
	}
	c.Items = out
}

// addQuantity adds delta to q, saturating at the int bounds.
func addQuantity(q, delta int) int {
	switch {
	case delta > 0 && q > math.MaxInt-delta:
		return math.MaxInt
	case delta < 0 && q < math.MinInt-delta:
		return math.MinInt
	}
	return q + delta
}
