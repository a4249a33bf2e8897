package rest

import (
	"context"

	"shopcore-be/internal/order"
	"shopcore-be/internal/payment"
	"shopcore-be/internal/product"
	"shopcore-be/internal/user"
	"shopcore-be/internal/wishlist"

	"github.com/stretchr/testify/mock"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, params user.RegisterParams) (string, user.User, error) {
	args := m.Called(ctx, params)
	return args.String(0), args.Get(1).(user.User), args.Error(2)
}

func (m *MockUserService) Login(ctx context.Context, username, password string) (string, user.User, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Get(1).(user.User), args.Error(2)
}

func (m *MockUserService) GetByID(ctx context.Context, id int) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) List(ctx context.Context) ([]product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id int) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) GetOrCreateCart(ctx context.Context, customerID int) (*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) OpenCart(ctx context.Context, customerID int) (*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) UpdateItem(ctx context.Context, customerID, productID int, action string) error {
	args := m.Called(ctx, customerID, productID, action)
	return args.Error(0)
}

func (m *MockOrderService) ProcessOrder(ctx context.Context, customerID int, shipping *order.ShippingInfo) (*order.Order, error) {
	args := m.Called(ctx, customerID, shipping)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) AttachProviderOrder(ctx context.Context, orderID int, providerOrderID string) error {
	args := m.Called(ctx, orderID, providerOrderID)
	return args.Error(0)
}

func (m *MockOrderService) CompleteVerified(ctx context.Context, providerOrderID, paymentID string, customerID int, shipping order.ShippingInfo) (*order.Order, error) {
	args := m.Called(ctx, providerOrderID, paymentID, customerID, shipping)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) ListCompleted(ctx context.Context, customerID int) ([]order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) StartPayment(ctx context.Context, customerID int) (*payment.IntentDescriptor, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.IntentDescriptor), args.Error(1)
}

func (m *MockPaymentService) HandleSuccess(ctx context.Context, customerID int, params payment.SuccessParams) (*order.Order, error) {
	args := m.Called(ctx, customerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockWishlistService struct {
	mock.Mock
}

func (m *MockWishlistService) List(ctx context.Context, userID int) ([]wishlist.Item, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]wishlist.Item), args.Error(1)
}

func (m *MockWishlistService) Add(ctx context.Context, userID, productID int) (*wishlist.Item, error) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wishlist.Item), args.Error(1)
}

func (m *MockWishlistService) Remove(ctx context.Context, userID, productID int) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

func newTestServer() (*Server, *MockUserService, *MockProductService, *MockOrderService, *MockPaymentService, *MockWishlistService) {
	users := new(MockUserService)
	products := new(MockProductService)
	orders := new(MockOrderService)
	payments := new(MockPaymentService)
	wishes := new(MockWishlistService)
	return NewServer(users, products, orders, payments, wishes), users, products, orders, payments, wishes
}
