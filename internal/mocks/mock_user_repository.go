package mocks

import (
	"context"

	"github.com/seabasket/seabasket-api/domain"
)

// MockUserRepository implements domain.UserRepository interface for testing
type MockUserRepository struct {
	CreateFunc                func(ctx context.Context, user *domain.User) error
	FindByIDFunc              func(ctx context.Context, id uint) (*domain.User, error)
	FindByEmailFunc           func(ctx context.Context, email string) (*domain.User, error)
	FindByMobileFunc          func(ctx context.Context, mobile string) (*domain.User, error)
	ExistsByEmailOrMobileFunc func(ctx context.Context, email, mobile string) (bool, error)
	UpdateFunc                func(ctx context.Context, user *domain.User) error
	UpdatePasswordByEmailFunc func(ctx context.Context, email, passwordHash string) error
	MarkVerifiedFunc          func(ctx context.Context, email string) error
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// Create creates a new user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	// Default behavior: success
	return nil
}

// FindByID finds a user by ID
func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByEmail finds a user by email
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByMobile finds a user by mobile number
func (m *MockUserRepository) FindByMobile(ctx context.Context, mobile string) (*domain.User, error) {
	if m.FindByMobileFunc != nil {
		return m.FindByMobileFunc(ctx, mobile)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// ExistsByEmailOrMobile reports whether a user exists with either identifier
func (m *MockUserRepository) ExistsByEmailOrMobile(ctx context.Context, email, mobile string) (bool, error) {
	if m.ExistsByEmailOrMobileFunc != nil {
		return m.ExistsByEmailOrMobileFunc(ctx, email, mobile)
	}
	// Default behavior: no existing user
	return false, nil
}

// Update updates an existing user
func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	// Default behavior: success
	return nil
}

// UpdatePasswordByEmail overwrites the stored password hash
func (m *MockUserRepository) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error {
	if m.UpdatePasswordByEmailFunc != nil {
		return m.UpdatePasswordByEmailFunc(ctx, email, passwordHash)
	}
	// Default behavior: success
	return nil
}

// MarkVerified flags the user's email as verified
func (m *MockUserRepository) MarkVerified(ctx context.Context, email string) error {
	if m.MarkVerifiedFunc != nil {
		return m.MarkVerifiedFunc(ctx, email)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.UserRepository = (*MockUserRepository)(nil)
