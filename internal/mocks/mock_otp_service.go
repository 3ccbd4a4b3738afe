package mocks

import (
	"context"

	"github.com/seabasket/seabasket-api/domain"
)

// MockOTPService implements domain.OTPService interface for testing
type MockOTPService struct {
	SendFunc   func(ctx context.Context, email string) error
	VerifyFunc func(ctx context.Context, email, code string) error
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// Send generates and emails a verification code
func (m *MockOTPService) Send(ctx context.Context, email string) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, email)
	}
	// Default behavior: success
	return nil
}

// Verify checks the submitted code
func (m *MockOTPService) Verify(ctx context.Context, email, code string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, email, code)
	}
	// Default behavior: no code on file
	return domain.ErrOTPNotFound
}

// Compile-time interface compliance verification
var _ domain.OTPService = (*MockOTPService)(nil)
