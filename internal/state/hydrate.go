package state

import (
	"context"
	"fmt"

	"shopuniverse/internal/cart"
	"shopuniverse/internal/logger"
	"shopuniverse/internal/order"
	"shopuniverse/internal/storage"
	"shopuniverse/internal/user"

	"go.uber.org/zap"
)

// hydrate reads the persisted collections. Anything missing, unreadable or
// malformed keeps its default; the container ends Ready regardless.
func (c *Container) hydrate(ctx context.Context) {
	c.status.Store(int32(StatusHydrating))
	defer c.status.Store(int32(StatusReady))

	log := logger.FromCtx(ctx).With(zap.String("layer", "state"), zap.String("method", "hydrate"))

	var load LoadState

	var items []cart.CartItem
	if ok := c.read(ctx, log, c.keys.Cart, &items, validCart); ok {
		load.Cart, load.HasCart = items, true
	}

	var u *user.User
	if ok := c.read(ctx, log, c.keys.SessionUser, &u, validUser); ok {
		load.User, load.HasUser = u, true
	}

	var orders []order.Order
	if ok := c.read(ctx, log, c.keys.Orders, &orders, validOrders); ok {
		load.Orders, load.HasOrders = orders, true
	}

	c.stateMu.Lock()
	c.state = reduce(c.state, load)
	c.stateMu.Unlock()

	log.Info("state rehydrated",
		zap.Bool("cart", load.HasCart),
		zap.Bool("user", load.HasUser && load.User != nil),
		zap.Bool("orders", load.HasOrders),
		zap.Int("cart_items", len(load.Cart)),
		zap.Int("order_count", len(load.Orders)),
	)
}

func (c *Container) read(ctx context.Context, log *zap.Logger, key string, dst any, valid func(any) error) bool {
	found, err := storage.ReadJSON(ctx, c.store, key, dst)
	if err == nil && found {
		err = valid(dst)
	}
	if err != nil {
		log.Warn("ignoring persisted value", zap.String("key", key), zap.Error(err))
		return false
	}
	return found
}

func validCart(v any) error {
	items := *v.(*[]cart.CartItem)
	seen := map[string]bool{}
	for _, it := range items {
		if it.Product.ID == "" || it.Quantity <= 0 || seen[it.Product.ID] {
			return fmt.Errorf("%w: cart item %q", storage.ErrMalformed, it.Product.ID)
		}
		seen[it.Product.ID] = true
	}
	return nil
}

// validUser accepts null, the logged-out marker.
func validUser(v any) error {
	u := *v.(**user.User)
	if u != nil && u.ID == "" {
		return fmt.Errorf("%w: session user without id", storage.ErrMalformed)
	}
	return nil
}

func validOrders(v any) error {
	for _, o := range *v.(*[]order.Order) {
		if o.ID == "" {
			return fmt.Errorf("%w: order without id", storage.ErrMalformed)
		}
	}
	return nil
}
