package mocks

import (
	"context"

	"github.com/seabasket/seabasket-api/domain"
)

// MockOrderService implements domain.OrderService interface for testing
type MockOrderService struct {
	PlaceOrderFunc  func(ctx context.Context, userID, cartID uint) (*domain.CheckoutResult, error)
	ListOrdersFunc  func(ctx context.Context, userID uint) ([]domain.Order, error)
	OrderDetailFunc func(ctx context.Context, userID, orderID uint) (*domain.OrderDetail, error)
	CancelOrderFunc func(ctx context.Context, userID, orderID uint) error
}

// NewMockOrderService creates a new MockOrderService with default behaviors
func NewMockOrderService() *MockOrderService {
	return &MockOrderService{}
}

// PlaceOrder runs the checkout workflow
func (m *MockOrderService) PlaceOrder(ctx context.Context, userID, cartID uint) (*domain.CheckoutResult, error) {
	if m.PlaceOrderFunc != nil {
		return m.PlaceOrderFunc(ctx, userID, cartID)
	}
	// Default behavior: fixed successful checkout
	return &domain.CheckoutResult{OrderID: 1, OrderRef: "ref-1", PaymentURL: "https://pay.example.com/session/ref-1"}, nil
}

// ListOrders returns the user's orders
func (m *MockOrderService) ListOrders(ctx context.Context, userID uint) ([]domain.Order, error) {
	if m.ListOrdersFunc != nil {
		return m.ListOrdersFunc(ctx, userID)
	}
	// Default behavior: no orders
	return nil, nil
}

// OrderDetail returns one order with its lines
func (m *MockOrderService) OrderDetail(ctx context.Context, userID, orderID uint) (*domain.OrderDetail, error) {
	if m.OrderDetailFunc != nil {
		return m.OrderDetailFunc(ctx, userID, orderID)
	}
	// Default behavior: not found
	return nil, domain.ErrOrderNotFound
}

// CancelOrder cancels one of the user's orders
func (m *MockOrderService) CancelOrder(ctx context.Context, userID, orderID uint) error {
	if m.CancelOrderFunc != nil {
		return m.CancelOrderFunc(ctx, userID, orderID)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.OrderService = (*MockOrderService)(nil)
