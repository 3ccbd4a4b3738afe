package mocks

import (
	"context"

	"github.com/seabasket/seabasket-api/domain"
)

// MockCatalogService implements domain.CatalogService interface for testing
type MockCatalogService struct {
	BrowseFunc        func(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	ProductDetailFunc func(ctx context.Context, id uint) (*domain.Product, []domain.ReviewDetail, error)
	CategoriesFunc    func(ctx context.Context) ([]string, error)
	TrendingFunc      func(ctx context.Context) ([]domain.Product, error)
	PostReviewFunc    func(ctx context.Context, userID, productID uint, text string) error
	CreateProductFunc func(ctx context.Context, product *domain.Product) error
	OwnProductsFunc   func(ctx context.Context, userID uint, filter domain.ProductFilter) ([]domain.Product, error)
	OwnProductFunc    func(ctx context.Context, userID, productID uint) (*domain.Product, error)
	UpdateProductFunc func(ctx context.Context, userID uint, product *domain.Product) error
	DeleteProductFunc func(ctx context.Context, userID, productID uint) error
}

// NewMockCatalogService creates a new MockCatalogService with default behaviors
func NewMockCatalogService() *MockCatalogService {
	return &MockCatalogService{}
}

// Browse returns the filtered listing
func (m *MockCatalogService) Browse(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	if m.BrowseFunc != nil {
		return m.BrowseFunc(ctx, filter)
	}
	// Default behavior: empty listing
	return nil, nil
}

// ProductDetail returns one product with reviews
func (m *MockCatalogService) ProductDetail(ctx context.Context, id uint) (*domain.Product, []domain.ReviewDetail, error) {
	if m.ProductDetailFunc != nil {
		return m.ProductDetailFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, nil, domain.ErrProductNotFound
}

// Categories returns the distinct category names
func (m *MockCatalogService) Categories(ctx context.Context) ([]string, error) {
	if m.CategoriesFunc != nil {
		return m.CategoriesFunc(ctx)
	}
	// Default behavior: no categories
	return nil, nil
}

// Trending returns highly rated recent products
func (m *MockCatalogService) Trending(ctx context.Context) ([]domain.Product, error) {
	if m.TrendingFunc != nil {
		return m.TrendingFunc(ctx)
	}
	// Default behavior: empty listing
	return nil, nil
}

// PostReview records a review
func (m *MockCatalogService) PostReview(ctx context.Context, userID, productID uint, text string) error {
	if m.PostReviewFunc != nil {
		return m.PostReviewFunc(ctx, userID, productID, text)
	}
	// Default behavior: success
	return nil
}

// CreateProduct adds a seller-owned product
func (m *MockCatalogService) CreateProduct(ctx context.Context, product *domain.Product) error {
	if m.CreateProductFunc != nil {
		return m.CreateProductFunc(ctx, product)
	}
	// Default behavior: success
	return nil
}

// OwnProducts returns the seller's products
func (m *MockCatalogService) OwnProducts(ctx context.Context, userID uint, filter domain.ProductFilter) ([]domain.Product, error) {
	if m.OwnProductsFunc != nil {
		return m.OwnProductsFunc(ctx, userID, filter)
	}
	// Default behavior: empty listing
	return nil, nil
}

// OwnProduct returns one of the seller's products
func (m *MockCatalogService) OwnProduct(ctx context.Context, userID, productID uint) (*domain.Product, error) {
	if m.OwnProductFunc != nil {
		return m.OwnProductFunc(ctx, userID, productID)
	}
	// Default behavior: not found
	return nil, domain.ErrProductNotFound
}

// UpdateProduct overwrites one of the seller's products
func (m *MockCatalogService) UpdateProduct(ctx context.Context, userID uint, product *domain.Product) error {
	if m.UpdateProductFunc != nil {
		return m.UpdateProductFunc(ctx, userID, product)
	}
	// Default behavior: success
	return nil
}

// DeleteProduct removes one of the seller's products
func (m *MockCatalogService) DeleteProduct(ctx context.Context, userID, productID uint) error {
	if m.DeleteProductFunc != nil {
		return m.DeleteProductFunc(ctx, userID, productID)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.CatalogService = (*MockCatalogService)(nil)
