package mocks

import (
	"context"

	"github.com/seabasket/seabasket-api/domain"
)

// MockReviewRepository implements domain.ReviewRepository interface for testing
type MockReviewRepository struct {
	CreateFunc        func(ctx context.Context, review *domain.Review) error
	ListByProductFunc func(ctx context.Context, productID uint) ([]domain.ReviewDetail, error)
}

// NewMockReviewRepository creates a new MockReviewRepository with default behaviors
func NewMockReviewRepository() *MockReviewRepository {
	return &MockReviewRepository{}
}

// Create records a review
func (m *MockReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, review)
	}
	// Default behavior: success
	return nil
}

// ListByProduct returns a product's reviews with reviewer names
func (m *MockReviewRepository) ListByProduct(ctx context.Context, productID uint) ([]domain.ReviewDetail, error) {
	if m.ListByProductFunc != nil {
		return m.ListByProductFunc(ctx, productID)
	}
	// Default behavior: no reviews
	return nil, nil
}

// Compile-time interface compliance verification
var _ domain.ReviewRepository = (*MockReviewRepository)(nil)
