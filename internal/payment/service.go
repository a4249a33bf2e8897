package payment

import (
	"context"
	"errors"
	"fmt"

	"shopcore-be/internal/logger"
	"shopcore-be/internal/order"
	"shopcore-be/internal/user"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	checkoutCurrency = "INR"
	checkoutName     = "Shopcore"
)

var decimalHundred = decimal.NewFromInt(100)

// Orders is the slice of the order service the payment flow needs.
type Orders interface {
	OpenCart(ctx context.Context, customerID int) (*order.Order, error)
	AttachProviderOrder(ctx context.Context, orderID int, providerOrderID string) error
	CompleteVerified(ctx context.Context, providerOrderID, paymentID string, customerID int, shipping order.ShippingInfo) (*order.Order, error)
}

// Users resolves customer details for the checkout prefill.
type Users interface {
	GetByID(ctx context.Context, id int) (user.User, error)
}

type Service interface {
	// StartPayment registers the customer's open cart with the provider
	// and returns everything the checkout widget needs.
	StartPayment(ctx context.Context, customerID int) (*IntentDescriptor, error)
	// HandleSuccess verifies the checkout callback signature and finalizes
	// the order. Every failure surfaces as ErrVerificationFailed.
	HandleSuccess(ctx context.Context, customerID int, params SuccessParams) (*order.Order, error)
}

type service struct {
	provider Provider
	orders   Orders
	users    Users
}

func NewService(provider Provider, orders Orders, users Users) Service {
	return &service{provider: provider, orders: orders, users: users}
}

func (s *service) StartPayment(ctx context.Context, customerID int) (*IntentDescriptor, error) {
	cart, err := s.orders.OpenCart(ctx, customerID)
	if err != nil {
		if errors.Is(err, order.ErrNoActiveOrder) {
			return nil, ErrNoActiveCart
		}
		return nil, err
	}

	// Provider amounts are in subunits; fractional paise are truncated.
	amount := cart.CartTotal().Mul(decimalHundred).IntPart()
	receipt := fmt.Sprintf("order_rcptid_%d", cart.ID)

	intent, err := s.provider.CreateIntent(ctx, amount, checkoutCurrency, receipt)
	if err != nil {
		return nil, err
	}

	if err := s.orders.AttachProviderOrder(ctx, cart.ID, intent.ProviderOrderID); err != nil {
		return nil, err
	}

	u, err := s.users.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("payment started",
		zap.Int("order_id", cart.ID),
		zap.String("provider_order_id", intent.ProviderOrderID),
		zap.Int64("amount", intent.Amount),
	)

	return &IntentDescriptor{
		OrderID:     intent.ProviderOrderID,
		RazorpayKey: s.provider.Key(),
		Amount:      intent.Amount,
		Currency:    intent.Currency,
		Name:        checkoutName,
		Prefill: Prefill{
			Name:    u.Username,
			Email:   u.Email,
			Contact: u.Phone,
		},
	}, nil
}

func (s *service) HandleSuccess(ctx context.Context, customerID int, params SuccessParams) (*order.Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("provider_order_id", params.ProviderOrderID),
		zap.String("payment_id", params.PaymentID),
	)

	if err := s.provider.VerifySignature(params.ProviderOrderID, params.PaymentID, params.Signature); err != nil {
		log.Warn("payment signature rejected", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	}

	o, err := s.orders.CompleteVerified(ctx, params.ProviderOrderID, params.PaymentID, customerID, params.Shipping)
	if err != nil {
		log.Error("failed to finalize verified payment", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	}

	log.Info("payment verified", zap.Int("order_id", o.ID))
	return o, nil
}
