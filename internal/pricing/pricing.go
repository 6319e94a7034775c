// Package pricing computes checkout totals in exact decimal arithmetic.
//
// Rounding policy: tax and total are rounded half away from zero to whole
// cents, so 299.99 * 0.08 = 23.9992 becomes 24.00.
package pricing

import (
	"shopuniverse/internal/cart"
	"shopuniverse/internal/config"

	"github.com/shopspring/decimal"
)

const cents = 2

// Policy holds the storefront pricing constants.
type Policy struct {
	TaxRate               decimal.Decimal
	FreeShippingThreshold decimal.Decimal
	ShippingFee           decimal.Decimal
}

// DefaultPolicy is 8% tax, free shipping above $100, otherwise $10.
func DefaultPolicy() Policy {
	return NewPolicy(0.08, 100, 10)
}

func NewPolicy(taxRate, freeShippingThreshold, shippingFee float64) Policy {
	return Policy{
		TaxRate:               decimal.NewFromFloat(taxRate),
		FreeShippingThreshold: decimal.NewFromFloat(freeShippingThreshold),
		ShippingFee:           decimal.NewFromFloat(shippingFee),
	}
}

func PolicyFromConfig(cfg *config.Config) Policy {
	return NewPolicy(cfg.TaxRate, cfg.FreeShippingThreshold, cfg.ShippingFee)
}

type Summary struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// TotalFloat is the value recorded on an order.
func (s Summary) TotalFloat() float64 {
	return s.Total.InexactFloat64()
}

func (s Summary) FreeShipping() bool {
	return s.Shipping.IsZero()
}

func Subtotal(items []cart.CartItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(decimal.NewFromFloat(it.Product.Price).Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum
}

// Quote prices items. Shipping is free strictly above the threshold; an
// empty cart is not charged shipping.
func (p Policy) Quote(items []cart.CartItem) Summary {
	subtotal := Subtotal(items)

	shipping := p.ShippingFee
	if len(items) == 0 || subtotal.GreaterThan(p.FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	tax := subtotal.Mul(p.TaxRate).Round(cents)

	return Summary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax).Round(cents),
	}
}

// AmountToFreeShipping is how much more must be added before shipping is
// waived. Zero once the cart qualifies.
func (p Policy) AmountToFreeShipping(items []cart.CartItem) decimal.Decimal {
	subtotal := Subtotal(items)
	if subtotal.GreaterThan(p.FreeShippingThreshold) {
		return decimal.Zero
	}
	return p.FreeShippingThreshold.Sub(subtotal)
}
