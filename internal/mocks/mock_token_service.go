package mocks

import (
	"github.com/seabasket/seabasket-api/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	GenerateUserTokenFunc  func(userID uint) (string, error)
	GenerateResetTokenFunc func(email string) (string, error)
	ValidateFunc           func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// GenerateUserToken issues a bearer token for a user
func (m *MockTokenService) GenerateUserToken(userID uint) (string, error) {
	if m.GenerateUserTokenFunc != nil {
		return m.GenerateUserTokenFunc(userID)
	}
	// Default behavior: fixed token
	return "mock_user_token", nil
}

// GenerateResetToken issues a password-reset token
func (m *MockTokenService) GenerateResetToken(email string) (string, error) {
	if m.GenerateResetTokenFunc != nil {
		return m.GenerateResetTokenFunc(email)
	}
	// Default behavior: fixed token
	return "mock_reset_token", nil
}

// Validate verifies a token and returns its claims
func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	// Default behavior: invalid token
	return nil, domain.ErrTokenInvalid
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
