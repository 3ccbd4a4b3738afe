package mocks

import (
	"context"

	"github.com/seabasket/seabasket-api/domain"
)

// MockOrderRepository implements domain.OrderRepository interface for testing
type MockOrderRepository struct {
	CreateWithLinesFunc func(ctx context.Context, order *domain.Order, lines []domain.OrderLine, clearCartID uint) error
	FindByIDFunc        func(ctx context.Context, id uint) (*domain.Order, error)
	ListByUserFunc      func(ctx context.Context, userID uint) ([]domain.Order, error)
	LinesFunc           func(ctx context.Context, orderID uint) ([]domain.OrderLine, error)
	CancelFunc          func(ctx context.Context, orderID uint) error
}

// NewMockOrderRepository creates a new MockOrderRepository with default behaviors
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{}
}

// CreateWithLines creates the order, its lines and clears the cart
func (m *MockOrderRepository) CreateWithLines(ctx context.Context, order *domain.Order, lines []domain.OrderLine, clearCartID uint) error {
	if m.CreateWithLinesFunc != nil {
		return m.CreateWithLinesFunc(ctx, order, lines, clearCartID)
	}
	// Default behavior: success
	return nil
}

// FindByID finds an order by ID
func (m *MockOrderRepository) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrOrderNotFound
}

// ListByUser returns the user's orders
func (m *MockOrderRepository) ListByUser(ctx context.Context, userID uint) ([]domain.Order, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	// Default behavior: no orders
	return nil, nil
}

// Lines returns an order's line items
func (m *MockOrderRepository) Lines(ctx context.Context, orderID uint) ([]domain.OrderLine, error) {
	if m.LinesFunc != nil {
		return m.LinesFunc(ctx, orderID)
	}
	// Default behavior: no lines
	return nil, nil
}

// Cancel marks an order cancelled
func (m *MockOrderRepository) Cancel(ctx context.Context, orderID uint) error {
	if m.CancelFunc != nil {
		return m.CancelFunc(ctx, orderID)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.OrderRepository = (*MockOrderRepository)(nil)
