package state

import (
	"shopuniverse/internal/cart"
	"shopuniverse/internal/order"
	"shopuniverse/internal/product"
	"shopuniverse/internal/user"
)

// State is the storefront read model.
type State struct {
	Products []product.Product
	Cart     []cart.CartItem
	User     *user.User
	Orders   []order.Order
}

// Clone deep-copies s.
func (s State) Clone() State {
	out := State{
		Products: make([]product.Product, len(s.Products)),
		Cart:     cart.Clone(s.Cart),
		User:     s.User.Clone(),
		Orders:   make([]order.Order, len(s.Orders)),
	}
	for i, p := range s.Products {
		out.Products[i] = p.Clone()
	}
	for i, o := range s.Orders {
		out.Orders[i] = o.Clone()
	}
	return out
}

// reduce computes the next state. It never modifies prev.
func reduce(prev State, a Action) State {
	next := prev

	switch a := a.(type) {
	case AddToCart:
		next.Cart = cart.Add(prev.Cart, a.Product, a.Quantity)
	case RemoveFromCart:
		next.Cart = cart.Remove(prev.Cart, a.ProductID)
	case UpdateCartQuantity:
		next.Cart = cart.UpdateQuantity(prev.Cart, a.ProductID, a.Quantity)
	case ClearCart:
		next.Cart = []cart.CartItem{}
	case SetUser:
		next.User = a.User.Clone()
	case AddOrder:
		next.Orders = appendOrder(prev.Orders, a.Order)
	case PlaceOrder:
		next.Orders = appendOrder(prev.Orders, a.Order)
		next.Cart = []cart.CartItem{}
	case LoadState:
		if a.HasCart {
			next.Cart = cart.Clone(a.Cart)
		}
		if a.HasUser {
			next.User = a.User.Clone()
		}
		if a.HasOrders {
			next.Orders = make([]order.Order, 0, len(a.Orders))
			for _, o := range a.Orders {
				next.Orders = append(next.Orders, o.Clone())
			}
		}
	}

	return next
}

func appendOrder(orders []order.Order, o order.Order) []order.Order {
	out := make([]order.Order, len(orders), len(orders)+1)
	copy(out, orders)
	return append(out, o.Clone())
}
