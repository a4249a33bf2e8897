package order

import (
	"context"

	"shopcore-be/internal/logger"
	"shopcore-be/internal/product"

	"go.uber.org/zap"
)

const (
	ActionAdd    = "add"
	ActionRemove = "remove"
)

type Service interface {
	// GetOrCreateCart returns the customer's open order, creating it when
	// absent. Concurrent calls never create two carts.
	GetOrCreateCart(ctx context.Context, customerID int) (*Order, error)
	// OpenCart returns the open order or ErrNoActiveOrder.
	OpenCart(ctx context.Context, customerID int) (*Order, error)
	// UpdateItem applies +1/-1 to the (cart, product) line item for
	// add/remove; other actions fall through as a no-op. Items at or below
	// zero are deleted.
	UpdateItem(ctx context.Context, customerID, productID int, action string) error
	// ProcessOrder is the direct (non-gateway) finalization path.
	ProcessOrder(ctx context.Context, customerID int, shipping *ShippingInfo) (*Order, error)
	// AttachProviderOrder records the payment provider's intent id on the order.
	AttachProviderOrder(ctx context.Context, orderID int, providerOrderID string) error
	// CompleteVerified finalizes the order bound to providerOrderID, recording
	// the provider payment id as the transaction id. Atomic with the address.
	CompleteVerified(ctx context.Context, providerOrderID, paymentID string, customerID int, shipping ShippingInfo) (*Order, error)
	// ListCompleted returns the customer's completed orders, newest first.
	ListCompleted(ctx context.Context, customerID int) ([]Order, error)
}

type service struct {
	repo    Repository
	catalog product.Repository
}

func NewService(repo Repository, catalog product.Repository) Service {
	return &service{repo: repo, catalog: catalog}
}

func (s *service) GetOrCreateCart(ctx context.Context, customerID int) (*Order, error) {
	o, err := s.repo.GetOpenOrder(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if o == nil {
		o, err = s.repo.CreateOrder(ctx, customerID)
		if IsUniqueViolation(err) {
			// Lost the open-cart slot to a concurrent request.
			o, err = s.repo.GetOpenOrder(ctx, customerID)
		}
		if err != nil {
			return nil, err
		}

		logger.FromCtx(ctx).Info("cart created",
			zap.Int("order_id", o.ID),
			zap.Int("customer_id", customerID),
		)
	}

	o.Items, err = s.repo.ListItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}

	return o, nil
}

func (s *service) OpenCart(ctx context.Context, customerID int) (*Order, error) {
	o, err := s.repo.GetOpenOrder(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrNoActiveOrder
	}

	o.Items, err = s.repo.ListItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) UpdateItem(ctx context.Context, customerID, productID int, action string) error {
	if _, err := s.catalog.GetByID(ctx, productID); err != nil {
		return err
	}

	cart, err := s.GetOrCreateCart(ctx, customerID)
	if err != nil {
		return err
	}

	item, err := s.repo.GetItem(ctx, cart.ID, productID)
	if err != nil {
		return err
	}
	if item == nil {
		item, err = s.repo.CreateItem(ctx, cart.ID, productID)
		if err != nil {
			return err
		}
		if item == nil {
			// A concurrent request created the line item first.
			item, err = s.repo.GetItem(ctx, cart.ID, productID)
			if err != nil {
				return err
			}
		}
	}

	switch action {
	case ActionAdd:
		item.Quantity++
	case ActionRemove:
		item.Quantity--
	}

	if item.Quantity <= 0 {
		return s.repo.DeleteItem(ctx, item.ID)
	}
	return s.repo.SetItemQuantity(ctx, item.ID, item.Quantity)
}

func (s *service) ProcessOrder(ctx context.Context, customerID int, shipping *ShippingInfo) (*Order, error) {
	o, err := s.repo.GetOpenOrder(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrNoActiveOrder
	}

	if shipping == nil {
		return nil, ErrShippingRequired
	}

	err = s.repo.FinalizeOrder(ctx, FinalizeParams{
		OrderID:    o.ID,
		CustomerID: customerID,
		Shipping:   *shipping,
	})
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("order finalized",
		zap.Int("order_id", o.ID),
		zap.Int("customer_id", customerID),
	)

	o.Completed = true
	return s.load(ctx, o)
}

func (s *service) AttachProviderOrder(ctx context.Context, orderID int, providerOrderID string) error {
	return s.repo.SetProviderOrderID(ctx, orderID, providerOrderID)
}

func (s *service) CompleteVerified(ctx context.Context, providerOrderID, paymentID string, customerID int, shipping ShippingInfo) (*Order, error) {
	o, err := s.repo.GetByProviderOrderID(ctx, providerOrderID)
	if err != nil {
		return nil, err
	}

	err = s.repo.FinalizeOrder(ctx, FinalizeParams{
		OrderID:       o.ID,
		CustomerID:    customerID,
		TransactionID: &paymentID,
		Shipping:      shipping,
	})
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("order finalized via payment gateway",
		zap.Int("order_id", o.ID),
		zap.String("provider_order_id", providerOrderID),
	)

	o.Completed = true
	o.TransactionID = &paymentID
	return s.load(ctx, o)
}

func (s *service) ListCompleted(ctx context.Context, customerID int) ([]Order, error) {
	orders, err := s.repo.ListCompleted(ctx, customerID)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if _, err := s.load(ctx, &orders[i]); err != nil {
			return nil, err
		}
	}

	return orders, nil
}

// load fills in items and the surfaced shipping address.
func (s *service) load(ctx context.Context, o *Order) (*Order, error) {
	items, err := s.repo.ListItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items

	addr, err := s.repo.FirstShippingAddress(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.ShippingAddress = addr

	return o, nil
}
