package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/seabasket/seabasket-api/domain"
)

// ProductRepositoryImpl implements domain.ProductRepository using GORM
type ProductRepositoryImpl struct {
	db *gorm.DB
}

// DBProduct represents the database model for Product
type DBProduct struct {
	ID          uint    `gorm:"primaryKey"`
	Title       string  `gorm:"size:255;index"`
	ImageURL    string  `gorm:"column:image_url"`
	Price       float64 `gorm:"index"`
	Description string
	Rating      float64 `gorm:"index"`
	Discount    float64
	Category    string `gorm:"size:64;index"`
	UserID      uint   `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for GORM
func (DBProduct) TableName() string {
	return "products"
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domain.ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

// Create implements domain.ProductRepository
func (r *ProductRepositoryImpl) Create(ctx context.Context, product *domain.Product) error {
	dbProduct := productToDB(product)
	if err := r.db.WithContext(ctx).Create(dbProduct).Error; err != nil {
		return err
	}
	product.ID = dbProduct.ID
	return nil
}

// FindByID implements domain.ProductRepository
func (r *ProductRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	var dbProduct DBProduct
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbProduct).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return productToDomain(&dbProduct), nil
}

// List implements domain.ProductRepository. Results are ordered by
// price, matching the storefront's default listing.
func (r *ProductRepositoryImpl) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	var dbProducts []DBProduct
	q := applyFilter(r.db.WithContext(ctx).Model(&DBProduct{}), filter)
	if err := q.Order("price").Find(&dbProducts).Error; err != nil {
		return nil, err
	}
	return productsToDomain(dbProducts), nil
}

// ListByUser implements domain.ProductRepository
func (r *ProductRepositoryImpl) ListByUser(ctx context.Context, userID uint, filter domain.ProductFilter) ([]domain.Product, error) {
	var dbProducts []DBProduct
	q := applyFilter(r.db.WithContext(ctx).Model(&DBProduct{}), filter).
		Where("user_id = ?", userID)
	if err := q.Order("price").Find(&dbProducts).Error; err != nil {
		return nil, err
	}
	return productsToDomain(dbProducts), nil
}

// Categories implements domain.ProductRepository
func (r *ProductRepositoryImpl) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).Model(&DBProduct{}).
		Distinct().
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// Trending implements domain.ProductRepository
func (r *ProductRepositoryImpl) Trending(ctx context.Context, minRating float64, limit int) ([]domain.Product, error) {
	var dbProducts []DBProduct
	err := r.db.WithContext(ctx).
		Where("rating >= ?", minRating).
		Order("updated_at DESC").
		Limit(limit).
		Find(&dbProducts).Error
	if err != nil {
		return nil, err
	}
	return productsToDomain(dbProducts), nil
}

// Update implements domain.ProductRepository
func (r *ProductRepositoryImpl) Update(ctx context.Context, product *domain.Product) error {
	res := r.db.WithContext(ctx).Model(&DBProduct{}).Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"title":       product.Title,
			"image_url":   product.ImageURL,
			"price":       product.Price,
			"description": product.Description,
			"rating":      product.Rating,
			"discount":    product.Discount,
			"category":    product.Category,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// Delete implements domain.ProductRepository
func (r *ProductRepositoryImpl) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBProduct{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// applyFilter translates a ProductFilter into WHERE clauses; every
// set constraint is ANDed.
func applyFilter(q *gorm.DB, filter domain.ProductFilter) *gorm.DB {
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Title != "" {
		q = q.Where("title LIKE ?", "%"+filter.Title+"%")
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil {
		q = q.Where("price BETWEEN ? AND ?", *filter.MinPrice, *filter.MaxPrice)
	}
	if filter.MinRating != nil {
		q = q.Where("rating >= ?", *filter.MinRating)
	}
	if filter.MinDiscount != nil {
		q = q.Where("discount >= ?", *filter.MinDiscount)
	}
	return q
}

func productToDB(product *domain.Product) *DBProduct {
	return &DBProduct{
		ID:          product.ID,
		Title:       product.Title,
		ImageURL:    product.ImageURL,
		Price:       product.Price,
		Description: product.Description,
		Rating:      product.Rating,
		Discount:    product.Discount,
		Category:    product.Category,
		UserID:      product.UserID,
	}
}

func productToDomain(dbProduct *DBProduct) *domain.Product {
	return &domain.Product{
		ID:          dbProduct.ID,
		Title:       dbProduct.Title,
		ImageURL:    dbProduct.ImageURL,
		Price:       dbProduct.Price,
		Description: dbProduct.Description,
		Rating:      dbProduct.Rating,
		Discount:    dbProduct.Discount,
		Category:    dbProduct.Category,
		UserID:      dbProduct.UserID,
		CreatedAt:   dbProduct.CreatedAt,
		UpdatedAt:   dbProduct.UpdatedAt,
	}
}

func productsToDomain(dbProducts []DBProduct) []domain.Product {
	products := make([]domain.Product, 0, len(dbProducts))
	for i := range dbProducts {
		products = append(products, *productToDomain(&dbProducts[i]))
	}
	return products
}
