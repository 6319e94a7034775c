package order

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"shopuniverse/internal/cart"
	"shopuniverse/internal/logger"
	"shopuniverse/internal/pricing"
	"shopuniverse/internal/remote"
	"shopuniverse/internal/storage"
	"shopuniverse/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session is the part of the state container used at checkout.
type Session interface {
	CurrentUser() *user.User
	Cart() []cart.CartItem
	Orders() []Order
	OrdersFor(userID string) []Order
	PlaceOrder(ctx context.Context, o Order) error
}

type Caller interface {
	Do(ctx context.Context, tier remote.Tier, name string, fn func(ctx context.Context) error) error
}

type CheckoutInput struct {
	ShippingAddress Address
	BillingAddress  Address
	// SameAsShipping copies ShippingAddress into BillingAddress.
	SameAsShipping bool
	PaymentMethod  PaymentMethod
}

type Service interface {
	// CreateOrder records draft as a new pending order and empties the cart.
	CreateOrder(ctx context.Context, draft Draft) (string, error)
	// Checkout prices the current cart and places it as an order.
	Checkout(ctx context.Context, input CheckoutInput) (string, error)
	Quote() pricing.Summary
	History(userID string) []Order
	GetOrderDetail(userID, orderID string) (Order, error)
}

type service struct {
	session Session
	caller  Caller
	policy  pricing.Policy

	newID func() string
	now   func() time.Time
}

func NewService(session Session, caller Caller, policy pricing.Policy) Service {
	return &service{
		session: session,
		caller:  caller,
		policy:  policy,
		newID:   uuid.NewString,
		now:     time.Now,
	}
}

// CreateOrder is all-or-nothing up to the commit: a cancelled wait or a
// rejected draft leaves orders and cart untouched. A storage failure after the
// commit returns the id together with the error.
func (s *service) CreateOrder(ctx context.Context, draft Draft) (string, error) {
	var orderID string

	err := s.caller.Do(ctx, remote.TierOrder, "create_order", func(ctx context.Context) error {
		log := logger.FromCtx(ctx).With(
			zap.String("layer", "service"),
			zap.String("method", "CreateOrder"),
			zap.String("user_id", draft.UserID),
		)

		current := s.session.CurrentUser()
		if current == nil || current.ID != draft.UserID {
			log.Warn("order rejected: not the session user")
			return ErrUnauthorized
		}
		if err := draft.Validate(); err != nil {
			log.Warn("order rejected", zap.Error(err))
			return err
		}

		o := draft.Build(s.newID(), s.now().UTC())

		if err := s.session.PlaceOrder(ctx, o); err != nil {
			if !errors.Is(err, storage.ErrStorageUnavailable) {
				return err
			}
			orderID = o.ID
			log.Error("order placed but not persisted", zap.String("order_id", o.ID), zap.Error(err))
			return err
		}

		orderID = o.ID
		log.Info("order placed",
			zap.String("order_id", o.ID),
			zap.Int("items", len(o.Items)),
			zap.Float64("total", o.Total),
		)
		return nil
	})
	return orderID, err
}

func (s *service) Checkout(ctx context.Context, input CheckoutInput) (string, error) {
	current := s.session.CurrentUser()
	if current == nil {
		return "", ErrUnauthorized
	}

	items := s.session.Cart()
	if len(items) == 0 {
		return "", ErrEmptyCart
	}

	billing := input.BillingAddress
	if input.SameAsShipping {
		billing = input.ShippingAddress
	}
	if !input.ShippingAddress.Complete() || !billing.Complete() {
		return "", fmt.Errorf("%w: incomplete address", ErrInvalidOrder)
	}

	return s.CreateOrder(ctx, Draft{
		UserID:          current.ID,
		Items:           items,
		Total:           s.policy.Quote(items).TotalFloat(),
		Status:          StatusPending,
		ShippingAddress: input.ShippingAddress,
		BillingAddress:  billing,
		PaymentMethod:   input.PaymentMethod,
	})
}

func (s *service) Quote() pricing.Summary {
	return s.policy.Quote(s.session.Cart())
}

// History lists userID's orders, newest first.
func (s *service) History(userID string) []Order {
	out := s.session.OrdersFor(userID)
	slices.Reverse(out)
	return out
}

func (s *service) GetOrderDetail(userID, orderID string) (Order, error) {
	for _, o := range s.session.Orders() {
		if o.ID != orderID {
			continue
		}
		if o.UserID != userID {
			return Order{}, fmt.Errorf("%w: cannot access others' orders", ErrUnauthorized)
		}
		return o, nil
	}
	return Order{}, ErrOrderNotFound
}
