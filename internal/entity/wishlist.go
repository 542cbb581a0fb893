package entity

// WishlistItem is a saved product reference.
type WishlistItem struct {
	ProductID int    `json:"productId"`
	Name      string `json:"name"`
	Price     Money  `json:"price"`
	Image     string `json:"image"`
}

// Wishlist holds at most one entry per product, in insertion order.
type Wishlist struct {
	Items []WishlistItem
}

func NewWishlist(items []WishlistItem) *Wishlist {
	w := &Wishlist{Items: append([]WishlistItem(nil), items...)}
	w.Normalize()
	return w
}

func (w *Wishlist) Contains(productID int) bool {
	for _, item := range w.Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

// Add saves p unless it is already present. It reports whether anything changed.
func (w *Wishlist) Add(p Product) bool {
	if w.Contains(p.ID) {
		return false
	}
	w.Items = append(w.Items, WishlistItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
	})
	return true
}

// Remove deletes the entry for productID and reports whether it was present.
func (w *Wishlist) Remove(productID int) bool {
	for i, item := range w.Items {
		if item.ProductID == productID {
			w.Items = append(w.Items[:i], w.Items[i+1:]...)
			return true
		}
	}
	return false
}

func (w *Wishlist) Clear() {
	w.Items = nil
}

func (w *Wishlist) Count() int {
	return len(w.Items)
}

func (w *Wishlist) Clone() *Wishlist {
	return &Wishlist{Items: append([]WishlistItem(nil), w.Items...)}
}

// Normalize drops duplicate entries, keeping the first.
func (w *Wishlist) Normalize() {
	var out []WishlistItem
	seen := make(map[int]bool, len(w.Items))
	for _, item := range w.Items {
		if seen[item.ProductID] {
			continue
		}
		seen[item.ProductID] = true
		out = append(out, item)
	}
	w.Items = out
}
