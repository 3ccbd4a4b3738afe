package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/seabasket/seabasket-api/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User
type DBUser struct {
	ID           uint      `gorm:"primaryKey"`
	Name         string    `gorm:"size:255"`
	Email        string    `gorm:"uniqueIndex;size:255"`
	Mobile       string    `gorm:"uniqueIndex;size:32"`
	PasswordHash string    `gorm:"column:password"`
	IsVerified   bool      `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := userToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrUserAlreadyExists
		}
		return err
	}
	user.ID = dbUser.ID
	return nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return userToDomain(&dbUser), nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return userToDomain(&dbUser), nil
}

// FindByMobile implements domain.UserRepository
func (r *UserRepositoryImpl) FindByMobile(ctx context.Context, mobile string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("mobile = ?", mobile).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return userToDomain(&dbUser), nil
}

// ExistsByEmailOrMobile implements domain.UserRepository
func (r *UserRepositoryImpl) ExistsByEmailOrMobile(ctx context.Context, email, mobile string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBUser{}).
		Where("email = ? OR mobile = ?", email, mobile).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update implements domain.UserRepository
func (r *UserRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	res := r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"name":   user.Name,
			"email":  user.Email,
			"mobile": user.Mobile,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// UpdatePasswordByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error {
	res := r.db.WithContext(ctx).Model(&DBUser{}).Where("email = ?", email).
		Update("password", passwordHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// MarkVerified implements domain.UserRepository
func (r *UserRepositoryImpl) MarkVerified(ctx context.Context, email string) error {
	res := r.db.WithContext(ctx).Model(&DBUser{}).Where("email = ?", email).
		Update("is_verified", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func userToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Mobile:       user.Mobile,
		PasswordHash: user.PasswordHash,
		IsVerified:   user.IsVerified,
	}
}

func userToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:           dbUser.ID,
		Name:         dbUser.Name,
		Email:        dbUser.Email,
		Mobile:       dbUser.Mobile,
		PasswordHash: dbUser.PasswordHash,
		IsVerified:   dbUser.IsVerified,
		CreatedAt:    dbUser.CreatedAt,
		UpdatedAt:    dbUser.UpdatedAt,
	}
}
