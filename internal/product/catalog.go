package product

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

type SortBy string

const (
	SortName      SortBy = "name"
	SortPriceLow  SortBy = "price-low"
	SortPriceHigh SortBy = "price-high"
	SortRating    SortBy = "rating"
)

// Query narrows and orders the catalog. Zero values mean "no filter".
type Query struct {
	Category string // "" or "all" matches every category
	MinPrice *float64
	MaxPrice *float64
	Sort     SortBy
	// Where is an expr-lang boolean over the product fields, e.g.
	// `price < 300 && "wireless" in tags`.
	Where string
}

// Catalog is the read-only product list seeded at startup.
type Catalog struct {
	products []Product
	byID     map[string]int
}

func NewCatalog(products []Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %s", ErrInvalidProduct, p.ID)
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p.Clone())
	}
	return c, nil
}

func (c *Catalog) All() []Product {
	out := make([]Product, len(c.products))
	for i, p := range c.products {
		out[i] = p.Clone()
	}
	return out
}

func (c *Catalog) Get(id string) (Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	return c.products[i].Clone(), nil
}

// Categories lists distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// Featured returns the first n products.
func (c *Catalog) Featured(n int) []Product {
	all := c.All()
	if n < len(all) {
		return all[:max(n, 0)]
	}
	return all
}

// Related returns up to n products sharing id's category, excluding id itself.
func (c *Catalog) Related(id string, n int) []Product {
	i, ok := c.byID[id]
	if !ok {
		return nil
	}
	category := c.products[i].Category

	var out []Product
	for _, p := range c.products {
		if len(out) >= n {
			break
		}
		if p.ID != id && p.Category == category {
			out = append(out, p.Clone())
		}
	}
	return out
}

func (c *Catalog) Search(q Query) ([]Product, error) {
	var program *vm.Program
	if strings.TrimSpace(q.Where) != "" {
		var err error
		program, err = expr.Compile(q.Where, expr.Env(exprEnv(Product{})), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
		}
	}

	out := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		if q.Category != "" && q.Category != "all" && p.Category != q.Category {
			continue
		}
		if q.MinPrice != nil && p.Price < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && p.Price > *q.MaxPrice {
			continue
		}
		if program != nil {
			ok, err := expr.Run(program, exprEnv(p))
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
			}
			if !ok.(bool) {
				continue
			}
		}
		out = append(out, p.Clone())
	}

	sortProducts(out, q.Sort)
	return out, nil
}

func sortProducts(ps []Product, by SortBy) {
	switch by {
	case SortPriceLow:
		slices.SortStableFunc(ps, func(a, b Product) int { return cmp.Compare(a.Price, b.Price) })
	case SortPriceHigh:
		slices.SortStableFunc(ps, func(a, b Product) int { return cmp.Compare(b.Price, a.Price) })
	case SortRating:
		slices.SortStableFunc(ps, func(a, b Product) int { return cmp.Compare(b.Rating, a.Rating) })
	default:
		slices.SortStableFunc(ps, func(a, b Product) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		})
	}
}

func exprEnv(p Product) map[string]any {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	features := p.Features
	if features == nil {
		features = []string{}
	}
	return map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"price":       p.Price,
		"category":    p.Category,
		"rating":      p.Rating,
		"reviewCount": p.ReviewCount,
		"inStock":     p.InStock,
		"stockCount":  p.StockCount,
		"tags":        tags,
		"features":    features,
		"discount":    p.DiscountPercent(),
	}
}
