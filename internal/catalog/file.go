package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dieuclat/storefront/internal/entity"
)

// filePrice is a price written either as display text ("₹2,400") or as a
// mapping with a major-unit amount and an optional currency:
//
//	price: {amount: 2400, currency: USD}
type filePrice struct {
	text     string
	currency string
}

func (p *filePrice) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag != "!!null" {
			p.text = value.Value
		}
		return nil
	case yaml.MappingNode:
		var m struct {
			Amount   yaml.Node `yaml:"amount"`
			Currency string    `yaml:"currency"`
		}
		if err := value.Decode(&m); err != nil {
			return err
		}
		if m.Amount.Kind != yaml.ScalarNode || m.Amount.Value == "" {
			return fmt.Errorf("line %d: price mapping needs a scalar amount", value.Line)
		}
		p.text = m.Amount.Value
		p.currency = m.Currency
		return nil
	default:
		return fmt.Errorf("line %d: price must be a string or a mapping", value.Line)
	}
}

func (p filePrice) isSet() bool {
	return p.text != ""
}

// money parses the price, preferring its own currency over the product's.
func (p filePrice) money(currency string) (entity.Money, error) {
	if p.currency != "" {
		currency = p.currency
	}
	return entity.ParseMoney(p.text, currency)
}

// fileProduct is the YAML shape of a catalog entry.
type fileProduct struct {
	ID              int             `yaml:"id"`
	Name            string          `yaml:"name"`
	Price           filePrice       `yaml:"price"`
	OriginalPrice   filePrice       `yaml:"originalPrice"`
	Currency        string          `yaml:"currency"`
	Rating          float64         `yaml:"rating"`
	ReviewsCount    int             `yaml:"reviewsCount"`
	Image           string          `yaml:"image"`
	Images          []string        `yaml:"images"`
	Description     string          `yaml:"description"`
	FullDescription string          `yaml:"fullDescription"`
	Availability    *bool           `yaml:"availability"`
	Category        string          `yaml:"category"`
	Tag             string          `yaml:"tag"`
	TagColor        string          `yaml:"tagColor"`
	DeliveryInfo    string          `yaml:"deliveryInfo"`
	Specs           []entity.Spec   `yaml:"specs"`
	Reviews         []entity.Review `yaml:"reviews"`
}

type catalogFile struct {
	Products []fileProduct `yaml:"products"`
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Store, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if len(f.Products) == 0 {
		return nil, fmt.Errorf("catalog has no products")
	}

	products := make([]entity.Product, 0, len(f.Products))
	for _, fp := range f.Products {
		p, err := fp.toEntity()
		if err != nil {
			return nil, fmt.Errorf("product %d: %w", fp.ID, err)
		}
		products = append(products, p)
	}
	return NewStore(products)
}

func (fp fileProduct) toEntity() (entity.Product, error) {
	if fp.Name == "" {
		return entity.Product{}, fmt.Errorf("missing name")
	}
	price, err := fp.Price.money(fp.Currency)
	if err != nil {
		return entity.Product{}, fmt.Errorf("price: %w", err)
	}
	original := price
	if fp.OriginalPrice.isSet() {
		if original, err = fp.OriginalPrice.money(price.Currency); err != nil {
			return entity.Product{}, fmt.Errorf("originalPrice: %w", err)
		}
	}

	images := fp.Images
	if len(images) == 0 && fp.Image != "" {
		images = []string{fp.Image}
	}
	available := true
	if fp.Availability != nil {
		available = *fp.Availability
	}

	return entity.Product{
		ID:              fp.ID,
		Name:            fp.Name,
		Price:           price,
		OriginalPrice:   original,
		Rating:          fp.Rating,
		ReviewsCount:    fp.ReviewsCount,
		Image:           fp.Image,
		Images:          images,
		Description:     fp.Description,
		FullDescription: fp.FullDescription,
		Availability:    available,
		Category:        fp.Category,
		Tag:             fp.Tag,
		TagColor:        fp.TagColor,
		DeliveryInfo:    fp.DeliveryInfo,
		Specs:           fp.Specs,
		Reviews:         fp.Reviews,
	}, nil
}
