package mocks

import (
	"context"

	"github.com/seabasket/seabasket-api/domain"
)

// MockPaymentService implements domain.PaymentService interface for testing
type MockPaymentService struct {
	CreateCheckoutSessionFunc func(ctx context.Context, ref string, items []domain.PaymentLineItem) (string, error)
}

// NewMockPaymentService creates a new MockPaymentService with default behaviors
func NewMockPaymentService() *MockPaymentService {
	return &MockPaymentService{}
}

// CreateCheckoutSession opens a payment session with the provider
func (m *MockPaymentService) CreateCheckoutSession(ctx context.Context, ref string, items []domain.PaymentLineItem) (string, error) {
	if m.CreateCheckoutSessionFunc != nil {
		return m.CreateCheckoutSessionFunc(ctx, ref, items)
	}
	// Default behavior: fixed hosted-payment URL
	return "https://pay.example.com/session/" + ref, nil
}

// Compile-time interface compliance verification
var _ domain.PaymentService = (*MockPaymentService)(nil)
