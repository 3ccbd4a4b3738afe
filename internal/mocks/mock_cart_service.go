package mocks

import (
	"context"

	"github.com/seabasket/seabasket-api/domain"
)

// MockCartService implements domain.CartService interface for testing
type MockCartService struct {
	GetFunc           func(ctx context.Context, userID uint) (*domain.CartDetail, error)
	AddProductFunc    func(ctx context.Context, userID, productID uint, quantity int) error
	RemoveProductFunc func(ctx context.Context, userID, productID uint) error
}

// NewMockCartService creates a new MockCartService with default behaviors
func NewMockCartService() *MockCartService {
	return &MockCartService{}
}

// Get returns the user's cart view
func (m *MockCartService) Get(ctx context.Context, userID uint) (*domain.CartDetail, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID)
	}
	// Default behavior: empty cart
	return &domain.CartDetail{CartID: 1}, nil
}

// AddProduct merges a product into the cart
func (m *MockCartService) AddProduct(ctx context.Context, userID, productID uint, quantity int) error {
	if m.AddProductFunc != nil {
		return m.AddProductFunc(ctx, userID, productID, quantity)
	}
	// Default behavior: success
	return nil
}

// RemoveProduct removes a product line from the cart
func (m *MockCartService) RemoveProduct(ctx context.Context, userID, productID uint) error {
	if m.RemoveProductFunc != nil {
		return m.RemoveProductFunc(ctx, userID, productID)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.CartService = (*MockCartService)(nil)
