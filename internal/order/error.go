package order

import "errors"

var (
	ErrInvalidOrder  = errors.New("invalid order")
	ErrOrderNotFound = errors.New("order not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrEmptyCart     = errors.New("cart is empty")
)
