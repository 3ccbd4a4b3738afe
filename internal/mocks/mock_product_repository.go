package mocks

import (
	"context"

	"github.com/seabasket/seabasket-api/domain"
)

// MockProductRepository implements domain.ProductRepository interface for testing
type MockProductRepository struct {
	CreateFunc     func(ctx context.Context, product *domain.Product) error
	FindByIDFunc   func(ctx context.Context, id uint) (*domain.Product, error)
	ListFunc       func(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	ListByUserFunc func(ctx context.Context, userID uint, filter domain.ProductFilter) ([]domain.Product, error)
	CategoriesFunc func(ctx context.Context) ([]string, error)
	TrendingFunc   func(ctx context.Context, minRating float64, limit int) ([]domain.Product, error)
	UpdateFunc     func(ctx context.Context, product *domain.Product) error
	DeleteFunc     func(ctx context.Context, id uint) error
}

// NewMockProductRepository creates a new MockProductRepository with default behaviors
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{}
}

// Create creates a new product
func (m *MockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, product)
	}
	// Default behavior: success
	return nil
}

// FindByID finds a product by ID
func (m *MockProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrProductNotFound
}

// List returns the filtered catalog listing
func (m *MockProductRepository) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	// Default behavior: empty listing
	return nil, nil
}

// ListByUser returns one seller's products
func (m *MockProductRepository) ListByUser(ctx context.Context, userID uint, filter domain.ProductFilter) ([]domain.Product, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, filter)
	}
	// Default behavior: empty listing
	return nil, nil
}

// Categories returns the distinct category names
func (m *MockProductRepository) Categories(ctx context.Context) ([]string, error) {
	if m.CategoriesFunc != nil {
		return m.CategoriesFunc(ctx)
	}
	// Default behavior: no categories
	return nil, nil
}

// Trending returns highly rated recent products
func (m *MockProductRepository) Trending(ctx context.Context, minRating float64, limit int) ([]domain.Product, error) {
	if m.TrendingFunc != nil {
		return m.TrendingFunc(ctx, minRating, limit)
	}
	// Default behavior: empty listing
	return nil, nil
}

// Update updates an existing product
func (m *MockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, product)
	}
	// Default behavior: success
	return nil
}

// Delete removes a product
func (m *MockProductRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.ProductRepository = (*MockProductRepository)(nil)
