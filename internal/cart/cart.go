// Package cart holds the pure cart transitions. None of the functions modify
// their input slice; each returns a fresh one.
package cart

import "shopuniverse/internal/product"

// Add merges qty into the existing item for p, or appends a new item.
// Stock is not checked.
func Add(items []CartItem, p product.Product, qty int) []CartItem {
	out := Clone(items)
	for i := range out {
		if out[i].Product.ID == p.ID {
			out[i].Quantity += qty
			return out
		}
	}
	return append(out, CartItem{Product: p.Clone(), Quantity: qty})
}

// Remove drops the item for productID. Absent ids are a no-op.
func Remove(items []CartItem, productID string) []CartItem {
	out := make([]CartItem, 0, len(items))
	for _, it := range items {
		if it.Product.ID != productID {
			out = append(out, cloneItem(it))
		}
	}
	return out
}

// UpdateQuantity sets the quantity of productID to exactly qty. qty <= 0
// removes the item.
func UpdateQuantity(items []CartItem, productID string, qty int) []CartItem {
	if qty <= 0 {
		return Remove(items, productID)
	}
	out := Clone(items)
	for i := range out {
		if out[i].Product.ID == productID {
			out[i].Quantity = qty
		}
	}
	return out
}

func Find(items []CartItem, productID string) (CartItem, bool) {
	for _, it := range items {
		if it.Product.ID == productID {
			return cloneItem(it), true
		}
	}
	return CartItem{}, false
}

// Count is the total number of units across all items.
func Count(items []CartItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

// Clone deep-copies items. A nil input yields an empty, non-nil slice so the
// persisted form is always a JSON array.
func Clone(items []CartItem) []CartItem {
	out := make([]CartItem, len(items))
	for i, it := range items {
		out[i] = cloneItem(it)
	}
	return out
}

func cloneItem(it CartItem) CartItem {
	return CartItem{Product: it.Product.Clone(), Quantity: it.Quantity}
}
