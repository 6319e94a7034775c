package state

import (
	"shopuniverse/internal/cart"
	"shopuniverse/internal/order"
	"shopuniverse/internal/product"
	"shopuniverse/internal/user"
)

// slice flags which persisted collections an action touches.
type slice uint8

const (
	sliceCart slice = 1 << iota
	sliceUser
	sliceOrders
)

// Action is the closed set of state transitions.
type Action interface {
	touches() slice
}

type AddToCart struct {
	Product  product.Product
	Quantity int
}

type RemoveFromCart struct {
	ProductID string
}

type UpdateCartQuantity struct {
	ProductID string
	Quantity  int
}

type ClearCart struct{}

// SetUser replaces the session identity. A nil User means logged out.
type SetUser struct {
	User *user.User
}

type AddOrder struct {
	Order order.Order
}

// PlaceOrder appends the order and empties the cart in one transition.
type PlaceOrder struct {
	Order order.Order
}

// LoadState overrides the slices present after rehydration.
type LoadState struct {
	Cart   []cart.CartItem
	User   *user.User
	Orders []order.Order

	HasCart, HasUser, HasOrders bool
}

func (AddToCart) touches() slice          { return sliceCart }
func (RemoveFromCart) touches() slice     { return sliceCart }
func (UpdateCartQuantity) touches() slice { return sliceCart }
func (ClearCart) touches() slice          { return sliceCart }
func (SetUser) touches() slice            { return sliceUser }
func (AddOrder) touches() slice           { return sliceOrders }
func (PlaceOrder) touches() slice         { return sliceOrders | sliceCart }

// LoadState only replays what was read from storage, so nothing is written back.
func (LoadState) touches() slice { return 0 }
