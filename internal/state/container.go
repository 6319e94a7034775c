// Package state owns the storefront's authoritative in-memory state and keeps
// it in sync with the durable store.
//
// Every mutation runs the same steps under the mutation lock: reduce the
// action into a new state, swap it in, write the touched collections to the
// store, notify subscribers. The next mutation starts only after the last
// subscriber returns. A failed write
// is returned to the caller wrapped in storage.ErrStorageUnavailable, but the
// in-memory transition stays committed.
package state

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"shopuniverse/internal/cart"
	"shopuniverse/internal/logger"
	"shopuniverse/internal/order"
	"shopuniverse/internal/product"
	"shopuniverse/internal/storage"
	"shopuniverse/internal/user"

	"go.uber.org/zap"
)

var ErrNotReady = errors.New("state container is not ready")

type Status int32

const (
	StatusUninitialized Status = iota
	StatusHydrating
	StatusReady
)

func (s Status) String() string {
	switch s {
	case StatusHydrating:
		return "hydrating"
	case StatusReady:
		return "ready"
	}
	return "uninitialized"
}

type Container struct {
	// mu serializes mutations so each one, including its writes and
	// notifications, finishes before the next begins.
	mu sync.Mutex

	stateMu sync.RWMutex
	state   State

	status atomic.Int32
	store  storage.Store
	keys   storage.KeySet

	subMu   sync.Mutex
	subs    map[int]func(State)
	nextSub int
}

// New builds a container over catalog and rehydrates it from store. Keys are
// resolved with prefix. The returned container is always Ready.
func New(ctx context.Context, store storage.Store, catalog *product.Catalog, prefix string) *Container {
	c := &Container{
		store: store,
		keys:  storage.Keys(prefix),
		state: State{
			Products: catalog.All(),
			Cart:     []cart.CartItem{},
			Orders:   []order.Order{},
		},
		subs: map[int]func(State){},
	}
	c.hydrate(ctx)
	return c
}

func (c *Container) Status() Status {
	return Status(c.status.Load())
}

// Snapshot returns a deep copy of the current state.
func (c *Container) Snapshot() State {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	return c.state.Clone()
}

func (c *Container) Products() []product.Product {
	return c.Snapshot().Products
}

func (c *Container) Cart() []cart.CartItem {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	return cart.Clone(c.state.Cart)
}

func (c *Container) CartCount() int {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	return cart.Count(c.state.Cart)
}

func (c *Container) CurrentUser() *user.User {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	return c.state.User.Clone()
}

func (c *Container) Orders() []order.Order {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	out := make([]order.Order, len(c.state.Orders))
	for i, o := range c.state.Orders {
		out[i] = o.Clone()
	}
	return out
}

// OrdersFor lists the orders placed by userID, oldest first.
func (c *Container) OrdersFor(userID string) []order.Order {
	var out []order.Order
	for _, o := range c.Orders() {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

func (c *Container) Order(id string) (order.Order, bool) {
	for _, o := range c.Orders() {
		if o.ID == id {
			return o, true
		}
	}
	return order.Order{}, false
}

// Subscribe registers fn to receive the state after every mutation, in commit
// order. fn runs on the mutating goroutine while the mutation lock is held, so
// it must not call back into a mutation; reads are fine.
func (c *Container) Subscribe(fn func(State)) (unsubscribe func()) {
	c.subMu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.subMu.Unlock()

	return func() {
		c.subMu.Lock()
		delete(c.subs, id)
		c.subMu.Unlock()
	}
}

func (c *Container) AddToCart(ctx context.Context, p product.Product, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: %d", cart.ErrInvalidQuantity, quantity)
	}
	return c.Dispatch(ctx, AddToCart{Product: p, Quantity: quantity})
}

func (c *Container) RemoveFromCart(ctx context.Context, productID string) error {
	return c.Dispatch(ctx, RemoveFromCart{ProductID: productID})
}

// UpdateCartQuantity sets the quantity exactly; quantity <= 0 removes the item.
func (c *Container) UpdateCartQuantity(ctx context.Context, productID string, quantity int) error {
	return c.Dispatch(ctx, UpdateCartQuantity{ProductID: productID, Quantity: quantity})
}

func (c *Container) ClearCart(ctx context.Context) error {
	return c.Dispatch(ctx, ClearCart{})
}

func (c *Container) SetUser(ctx context.Context, u *user.User) error {
	return c.Dispatch(ctx, SetUser{User: u})
}

func (c *Container) AddOrder(ctx context.Context, o order.Order) error {
	return c.Dispatch(ctx, AddOrder{Order: o})
}

// PlaceOrder records o and clears the cart as a single transition.
func (c *Container) PlaceOrder(ctx context.Context, o order.Order) error {
	return c.Dispatch(ctx, PlaceOrder{Order: o})
}

// Dispatch applies a to the state, persists the touched collections and
// notifies subscribers.
func (c *Container) Dispatch(ctx context.Context, a Action) error {
	if c.Status() != StatusReady {
		return ErrNotReady
	}

	c.mu.Lock()

	c.stateMu.Lock()
	next := reduce(c.state, a)
	c.state = next
	c.stateMu.Unlock()

	err := c.persist(ctx, next, a.touches())
	c.notify(next)
	c.mu.Unlock()

	return err
}

func (c *Container) persist(ctx context.Context, s State, touched slice) error {
	var errs []error

	if touched&sliceOrders != 0 {
		errs = append(errs, storage.WriteJSON(ctx, c.store, c.keys.Orders, s.Orders))
	}
	if touched&sliceCart != 0 {
		errs = append(errs, storage.WriteJSON(ctx, c.store, c.keys.Cart, s.Cart))
	}
	if touched&sliceUser != 0 {
		errs = append(errs, storage.WriteJSON(ctx, c.store, c.keys.SessionUser, s.User))
	}

	err := errors.Join(errs...)
	if err == nil {
		return nil
	}

	logger.FromCtx(ctx).Error("failed to persist state",
		zap.String("layer", "state"),
		zap.Error(err),
	)
	if !errors.Is(err, storage.ErrStorageUnavailable) {
		err = fmt.Errorf("%w: %w", storage.ErrStorageUnavailable, err)
	}
	return err
}

func (c *Container) notify(s State) {
	c.subMu.Lock()
	fns := make([]func(State), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.subMu.Unlock()

	for _, fn := range fns {
		fn(s.Clone())
	}
}
