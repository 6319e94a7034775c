package product

import (
	"fmt"
	"math"
)

// Product is a catalog entry. Products are loaded once from the seed and
// never mutated afterwards.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Description   string   `json:"description"`
	Images        []string `json:"images"`
	Category      string   `json:"category"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	InStock       bool     `json:"inStock"`
	StockCount    int      `json:"stockCount"`
	Tags          []string `json:"tags"`
	Features      []string `json:"features"`
}

// HasDiscount reports whether an original price above the current price is set.
func (p Product) HasDiscount() bool {
	return p.OriginalPrice != nil && *p.OriginalPrice > p.Price
}

// DiscountPercent is the whole-percent markdown shown next to the price.
func (p Product) DiscountPercent() int {
	if !p.HasDiscount() {
		return 0
	}
	return int(math.Round((*p.OriginalPrice - p.Price) / *p.OriginalPrice * 100))
}

func (p Product) Validate() error {
	switch {
	case p.ID == "":
		return fmt.Errorf("%w: missing id", ErrInvalidProduct)
	case p.Price <= 0:
		return fmt.Errorf("%w: %s: price must be positive", ErrInvalidProduct, p.ID)
	case len(p.Images) == 0:
		return fmt.Errorf("%w: %s: at least one image is required", ErrInvalidProduct, p.ID)
	case p.Rating < 0 || p.Rating > 5:
		return fmt.Errorf("%w: %s: rating out of range", ErrInvalidProduct, p.ID)
	case p.ReviewCount < 0 || p.StockCount < 0:
		return fmt.Errorf("%w: %s: counts must not be negative", ErrInvalidProduct, p.ID)
	case !p.InStock && p.StockCount != 0:
		return fmt.Errorf("%w: %s: out of stock product has stock", ErrInvalidProduct, p.ID)
	}
	return nil
}

// Clone returns a copy that shares no slices with p.
func (p Product) Clone() Product {
	out := p
	if p.OriginalPrice != nil {
		v := *p.OriginalPrice
		out.OriginalPrice = &v
	}
	out.Images = append([]string(nil), p.Images...)
	out.Tags = append([]string(nil), p.Tags...)
	out.Features = append([]string(nil), p.Features...)
	return out
}
