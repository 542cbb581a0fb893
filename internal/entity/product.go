package entity

import "math"

// Spec is a label/value pair shown on the product detail page.
type Spec struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Review is a customer review attached to a product.
type Review struct {
	User    string `json:"user"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

// Product is a catalog entry. Products are defined up front and never mutated.
type Product struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Price           Money    `json:"price"`
	OriginalPrice   Money    `json:"originalPrice"`
	Rating          float64  `json:"rating"`
	ReviewsCount    int      `json:"reviewsCount"`
	Image           string   `json:"image"`
	Images          []string `json:"images"`
	Description     string   `json:"description"`
	FullDescription string   `json:"fullDescription"`
	Availability    bool     `json:"availability"`
	Category        string   `json:"category"`
	Tag             string   `json:"tag,omitempty"`
	TagColor        string   `json:"tagColor,omitempty"`
	DeliveryInfo    string   `json:"deliveryInfo"`
	Specs           []Spec   `json:"specs"`
	Reviews         []Review `json:"reviews"`
}

// Savings is the amount saved against the original price, never negative.
func (p Product) Savings() Money {
	s := p.OriginalPrice.Sub(p.Price)
	if s.Amount < 0 {
		return Money{Currency: p.Price.Currency}
	}
	return s
}

// DiscountPercent is the rounded percentage saved against the original price.
func (p Product) DiscountPercent() int {
	if p.OriginalPrice.Amount <= 0 {
		return 0
	}
	return int(math.Round(float64(p.Savings().Amount) * 100 / float64(p.OriginalPrice.Amount)))
}

// Clone returns a copy that shares no slices with p.
func (p Product) Clone() Product {
	c := p
	c.Images = append([]string(nil), p.Images...)
	c.Specs = append([]Spec(nil), p.Specs...)
	c.Reviews = append([]Review(nil), p.Reviews...)
	return c
}
