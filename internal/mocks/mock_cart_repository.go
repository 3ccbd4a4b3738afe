package mocks

import (
	"context"

	"github.com/seabasket/seabasket-api/domain"
)

// MockCartRepository implements domain.CartRepository interface for testing
type MockCartRepository struct {
	CreateFunc       func(ctx context.Context, cart *domain.Cart) error
	FindByIDFunc     func(ctx context.Context, id uint) (*domain.Cart, error)
	FindByUserIDFunc func(ctx context.Context, userID uint) (*domain.Cart, error)
	LinesFunc        func(ctx context.Context, cartID uint) ([]domain.CartLine, error)
	LineDetailsFunc  func(ctx context.Context, cartID uint) ([]domain.CartLineDetail, error)
	AddLineFunc      func(ctx context.Context, cartID, productID uint, quantity int) error
	RemoveLineFunc   func(ctx context.Context, cartID, productID uint) error
}

// NewMockCartRepository creates a new MockCartRepository with default behaviors
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{}
}

// Create creates a new cart
func (m *MockCartRepository) Create(ctx context.Context, cart *domain.Cart) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, cart)
	}
	// Default behavior: success
	return nil
}

// FindByID finds a cart by ID
func (m *MockCartRepository) FindByID(ctx context.Context, id uint) (*domain.Cart, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrCartNotFound
}

// FindByUserID finds the cart owned by a user
func (m *MockCartRepository) FindByUserID(ctx context.Context, userID uint) (*domain.Cart, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	// Default behavior: not found
	return nil, domain.ErrCartNotFound
}

// Lines returns the raw cart lines
func (m *MockCartRepository) Lines(ctx context.Context, cartID uint) ([]domain.CartLine, error) {
	if m.LinesFunc != nil {
		return m.LinesFunc(ctx, cartID)
	}
	// Default behavior: empty cart
	return nil, nil
}

// LineDetails returns cart lines joined with product data
func (m *MockCartRepository) LineDetails(ctx context.Context, cartID uint) ([]domain.CartLineDetail, error) {
	if m.LineDetailsFunc != nil {
		return m.LineDetailsFunc(ctx, cartID)
	}
	// Default behavior: empty cart
	return nil, nil
}

// AddLine merges a product line into the cart
func (m *MockCartRepository) AddLine(ctx context.Context, cartID, productID uint, quantity int) error {
	if m.AddLineFunc != nil {
		return m.AddLineFunc(ctx, cartID, productID, quantity)
	}
	// Default behavior: success
	return nil
}

// RemoveLine deletes a product line from the cart
func (m *MockCartRepository) RemoveLine(ctx context.Context, cartID, productID uint) error {
	if m.RemoveLineFunc != nil {
		return m.RemoveLineFunc(ctx, cartID, productID)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.CartRepository = (*MockCartRepository)(nil)
