package mocks

import (
	"context"

	"github.com/seabasket/seabasket-api/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	SignUpFunc         func(ctx context.Context, name, email, mobile, password string) (*domain.User, error)
	SignInFunc         func(ctx context.Context, email, mobile, password string) (string, *domain.User, error)
	UpdateProfileFunc  func(ctx context.Context, userID uint, name, email, mobile string) error
	ForgotPasswordFunc func(ctx context.Context, email string) error
	ResetPasswordFunc  func(ctx context.Context, token, newPassword string) error
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// SignUp registers a new user
func (m *MockAuthService) SignUp(ctx context.Context, name, email, mobile, password string) (*domain.User, error) {
	if m.SignUpFunc != nil {
		return m.SignUpFunc(ctx, name, email, mobile, password)
	}
	// Default behavior: created user with a fixed id
	return &domain.User{ID: 1, Name: name, Email: email, Mobile: mobile}, nil
}

// SignIn authenticates and issues a token
func (m *MockAuthService) SignIn(ctx context.Context, email, mobile, password string) (string, *domain.User, error) {
	if m.SignInFunc != nil {
		return m.SignInFunc(ctx, email, mobile, password)
	}
	// Default behavior: not found
	return "", nil, domain.ErrUserNotFound
}

// UpdateProfile updates profile fields
func (m *MockAuthService) UpdateProfile(ctx context.Context, userID uint, name, email, mobile string) error {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, userID, name, email, mobile)
	}
	// Default behavior: success
	return nil
}

// ForgotPassword issues a reset token
func (m *MockAuthService) ForgotPassword(ctx context.Context, email string) error {
	if m.ForgotPasswordFunc != nil {
		return m.ForgotPasswordFunc(ctx, email)
	}
	// Default behavior: success
	return nil
}

// ResetPassword verifies the token and overwrites the password
func (m *MockAuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, token, newPassword)
	}
	// Default behavior: invalid token
	return domain.ErrTokenInvalid
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
