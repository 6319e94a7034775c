package cart

import "shopuniverse/internal/product"

// CartItem pairs a product with a positive quantity. A cart holds at most one
// item per product id.
type CartItem struct {
	Product  product.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

func (i CartItem) LineTotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}
