package order

import (
	"fmt"
	"time"

	"shopuniverse/internal/cart"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

func (a Address) Complete() bool {
	return a.Street != "" && a.City != "" && a.State != "" && a.ZipCode != "" && a.Country != ""
}

type PaymentType string

const (
	PaymentCredit PaymentType = "credit"
	PaymentDebit  PaymentType = "debit"
	PaymentPayPal PaymentType = "paypal"
)

type PaymentMethod struct {
	Type  PaymentType `json:"type"`
	Last4 *string     `json:"last4,omitempty"`
	Brand *string     `json:"brand,omitempty"`
}

// Order is an immutable record of a placed checkout.
type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	Items           []cart.CartItem `json:"items"`
	Total           float64         `json:"total"`
	Status          Status          `json:"status"`
	ShippingAddress Address         `json:"shippingAddress"`
	BillingAddress  Address         `json:"billingAddress"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// Clone deep-copies o so the stored order never aliases caller memory.
func (o Order) Clone() Order {
	out := o
	out.Items = cart.Clone(o.Items)
	out.PaymentMethod = o.PaymentMethod.clone()
	return out
}

func (p PaymentMethod) clone() PaymentMethod {
	out := p
	if p.Last4 != nil {
		v := *p.Last4
		out.Last4 = &v
	}
	if p.Brand != nil {
		v := *p.Brand
		out.Brand = &v
	}
	return out
}

// Draft is an order before the backend assigns its id and timestamps.
type Draft struct {
	UserID          string
	Items           []cart.CartItem
	Total           float64
	Status          Status
	ShippingAddress Address
	BillingAddress  Address
	PaymentMethod   PaymentMethod
}

func (d Draft) Validate() error {
	switch {
	case d.UserID == "":
		return fmt.Errorf("%w: missing user", ErrInvalidOrder)
	case len(d.Items) == 0:
		return fmt.Errorf("%w: no items", ErrInvalidOrder)
	case d.Total <= 0:
		return fmt.Errorf("%w: total must be positive", ErrInvalidOrder)
	case d.Status != "" && d.Status != StatusPending:
		return fmt.Errorf("%w: new orders start as %s", ErrInvalidOrder, StatusPending)
	}
	for _, it := range d.Items {
		if it.Quantity <= 0 {
			return fmt.Errorf("%w: item %s has quantity %d", ErrInvalidOrder, it.Product.ID, it.Quantity)
		}
	}
	switch d.PaymentMethod.Type {
	case PaymentCredit, PaymentDebit, PaymentPayPal:
	default:
		return fmt.Errorf("%w: unknown payment type %q", ErrInvalidOrder, d.PaymentMethod.Type)
	}
	return nil
}

// Build assigns identity and timestamps. Items are snapshot-copied.
func (d Draft) Build(id string, now time.Time) Order {
	return Order{
		ID:              id,
		UserID:          d.UserID,
		Items:           cart.Clone(d.Items),
		Total:           d.Total,
		Status:          StatusPending,
		ShippingAddress: d.ShippingAddress,
		BillingAddress:  d.BillingAddress,
		PaymentMethod:   d.PaymentMethod.clone(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
