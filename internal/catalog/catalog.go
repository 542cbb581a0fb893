// Package catalog holds the read-only product list and the pure
// filter/sort engine used by the product listing.
package catalog

import (
	"errors"
	"fmt"

	"github.com/dieuclat/storefront/internal/entity"
)

// ErrProductNotFound is returned when an id is not in the catalog.
var ErrProductNotFound = errors.New("product not found")

// DefaultRelatedLimit is how many related products the detail page shows.
const DefaultRelatedLimit = 4

// Store is an immutable, in-memory catalog. All reads return copies.
type Store struct {
	products []entity.Product
	byID     map[int]int
}

// NewStore builds a catalog from products, rejecting duplicate ids.
func NewStore(products []entity.Product) (*Store, error) {
	s := &Store{
		products: make([]entity.Product, 0, len(products)),
		byID:     make(map[int]int, len(products)),
	}
	for _, p := range products {
		if _, dup := s.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		s.byID[p.ID] = len(s.products)
		s.products = append(s.products, p.Clone())
	}
	return s, nil
}

// Default returns the built-in catalog.
func Default() *Store {
	s, err := NewStore(defaultProducts)
	if err != nil {
		panic(err)
	}
	return s
}

// FindAll returns every product in catalog order.
func (s *Store) FindAll() []entity.Product {
	out := make([]entity.Product, len(s.products))
	for i, p := range s.products {
		out[i] = p.Clone()
	}
	return out
}

func (s *Store) FindByID(id int) (entity.Product, error) {
	i, ok := s.byID[id]
	if !ok {
		return entity.Product{}, fmt.Errorf("%w: %d", ErrProductNotFound, id)
	}
	return s.products[i].Clone(), nil
}

// Categories lists the distinct categories in the order they first appear.
func (s *Store) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// Related returns up to limit other products, in catalog order.
func (s *Store) Related(id, limit int) ([]entity.Product, error) {
	if _, ok := s.byID[id]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrProductNotFound, id)
	}
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	var out []entity.Product
	for _, p := range s.products {
		if p.ID == id {
			continue
		}
		out = append(out, p.Clone())
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *Store) Len() int {
	return len(s.products)
}
