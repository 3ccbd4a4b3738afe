package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/seabasket/seabasket-api/domain"
)

// ReviewRepositoryImpl implements domain.ReviewRepository using GORM
type ReviewRepositoryImpl struct {
	db *gorm.DB
}

// DBReview represents the database model for Review
type DBReview struct {
	ID        uint   `gorm:"primaryKey"`
	Review    string `gorm:"type:text"`
	UserID    uint   `gorm:"index"`
	ProductID uint   `gorm:"index"`
	CreatedAt time.Time
}

// TableName returns the table name for GORM
func (DBReview) TableName() string {
	return "reviews"
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB) domain.ReviewRepository {
	return &ReviewRepositoryImpl{db: db}
}

// Create implements domain.ReviewRepository
func (r *ReviewRepositoryImpl) Create(ctx context.Context, review *domain.Review) error {
	dbReview := &DBReview{
		Review:    review.Review,
		UserID:    review.UserID,
		ProductID: review.ProductID,
	}
	if err := r.db.WithContext(ctx).Create(dbReview).Error; err != nil {
		return err
	}
	review.ID = dbReview.ID
	return nil
}

// ListByProduct implements domain.ReviewRepository, joining each
// review with the reviewer's display name.
func (r *ReviewRepositoryImpl) ListByProduct(ctx context.Context, productID uint) ([]domain.ReviewDetail, error) {
	var details []domain.ReviewDetail
	err := r.db.WithContext(ctx).Table("reviews").
		Select("reviews.review, users.name AS user_name").
		Joins("JOIN users ON users.id = reviews.user_id").
		Where("reviews.product_id = ?", productID).
		Order("reviews.id").
		Scan(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}
