package catalog

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/dieuclat/storefront/internal/entity"
)

// AllCategories is the sentinel category that disables category filtering.
const AllCategories = "All"

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
)

// ParseSortKey validates a sort key. The empty string means featured.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case "":
		return SortFeatured, nil
	case SortFeatured, SortPriceLow, SortPriceHigh, SortRating:
		return k, nil
	default:
		return "", fmt.Errorf("unknown sort key %q", s)
	}
}

// Filter narrows the listing. PriceMax is an inclusive cap in minor units;
// nil means no cap.
type Filter struct {
	Category string
	PriceMax *int64
}

// PriceCap returns a PriceMax of minor units.
func PriceCap(minor int64) *int64 {
	return &minor
}

func (f Filter) matches(p entity.Product) bool {
	if f.Category != "" && f.Category != AllCategories && p.Category != f.Category {
		return false
	}
	if p.Price.Amount < 0 {
		return false
	}
	if f.PriceMax != nil && p.Price.Amount > *f.PriceMax {
		return false
	}
	return true
}

// FilterAndSort returns the products that pass f, ordered by key. The input
// slice is not modified, and equal keys keep their catalog order.
func FilterAndSort(products []entity.Product, f Filter, key SortKey) []entity.Product {
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if f.matches(p) {
			out = append(out, p)
		}
	}

	switch key {
	case SortPriceLow:
		slices.SortStableFunc(out, func(a, b entity.Product) int {
			return cmp.Compare(a.Price.Amount, b.Price.Amount)
		})
	case SortPriceHigh:
		slices.SortStableFunc(out, func(a, b entity.Product) int {
			return cmp.Compare(b.Price.Amount, a.Price.Amount)
		})
	case SortRating:
		slices.SortStableFunc(out, func(a, b entity.Product) int {
			return cmp.Compare(b.Rating, a.Rating)
		})
	}
	return out
}
