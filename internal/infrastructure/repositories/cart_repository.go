package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/seabasket/seabasket-api/domain"
)

// CartRepositoryImpl implements domain.CartRepository using GORM
type CartRepositoryImpl struct {
	db *gorm.DB
}

// DBCart represents the database model for Cart
type DBCart struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"uniqueIndex"`
	CreatedAt time.Time
}

// TableName returns the table name for GORM
func (DBCart) TableName() string {
	return "carts"
}

// DBCartLine represents the database model for CartLine. The
// composite unique index backs the atomic add-or-increment upsert.
type DBCartLine struct {
	ID        uint `gorm:"primaryKey"`
	CartID    uint `gorm:"uniqueIndex:idx_cart_product"`
	ProductID uint `gorm:"uniqueIndex:idx_cart_product"`
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (DBCartLine) TableName() string {
	return "cart_lines"
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *gorm.DB) domain.CartRepository {
	return &CartRepositoryImpl{db: db}
}

// Create implements domain.CartRepository
func (r *CartRepositoryImpl) Create(ctx context.Context, cart *domain.Cart) error {
	dbCart := &DBCart{UserID: cart.UserID}
	if err := r.db.WithContext(ctx).Create(dbCart).Error; err != nil {
		return err
	}
	cart.ID = dbCart.ID
	return nil
}

// FindByID implements domain.CartRepository
func (r *CartRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Cart, error) {
	var dbCart DBCart
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbCart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCartNotFound
		}
		return nil, err
	}
	return cartToDomain(&dbCart), nil
}

// FindByUserID implements domain.CartRepository
func (r *CartRepositoryImpl) FindByUserID(ctx context.Context, userID uint) (*domain.Cart, error) {
	var dbCart DBCart
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&dbCart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCartNotFound
		}
		return nil, err
	}
	return cartToDomain(&dbCart), nil
}

// Lines implements domain.CartRepository
func (r *CartRepositoryImpl) Lines(ctx context.Context, cartID uint) ([]domain.CartLine, error) {
	var dbLines []DBCartLine
	if err := r.db.WithContext(ctx).Where("cart_id = ?", cartID).Find(&dbLines).Error; err != nil {
		return nil, err
	}
	lines := make([]domain.CartLine, 0, len(dbLines))
	for i := range dbLines {
		lines = append(lines, domain.CartLine{
			ID:        dbLines[i].ID,
			CartID:    dbLines[i].CartID,
			ProductID: dbLines[i].ProductID,
			Quantity:  dbLines[i].Quantity,
			CreatedAt: dbLines[i].CreatedAt,
			UpdatedAt: dbLines[i].UpdatedAt,
		})
	}
	return lines, nil
}

// LineDetails implements domain.CartRepository
func (r *CartRepositoryImpl) LineDetails(ctx context.Context, cartID uint) ([]domain.CartLineDetail, error) {
	var details []domain.CartLineDetail
	err := r.db.WithContext(ctx).Table("cart_lines").
		Select("cart_lines.product_id, products.title, products.image_url, products.price AS unit_price, cart_lines.quantity").
		Joins("JOIN products ON products.id = cart_lines.product_id").
		Where("cart_lines.cart_id = ?", cartID).
		Order("cart_lines.id").
		Scan(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}

// AddLine implements domain.CartRepository. The increment happens in
// the database so two concurrent adds for the same (cart, product)
// pair cannot lose an update.
func (r *CartRepositoryImpl) AddLine(ctx context.Context, cartID, productID uint, quantity int) error {
	line := DBCartLine{CartID: cartID, ProductID: productID, Quantity: quantity}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + ?", quantity),
			"updated_at": time.Now(),
		}),
	}).Create(&line).Error
}

// RemoveLine implements domain.CartRepository
func (r *CartRepositoryImpl) RemoveLine(ctx context.Context, cartID, productID uint) error {
	res := r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&DBCartLine{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCartLineNotFound
	}
	return nil
}

func cartToDomain(dbCart *DBCart) *domain.Cart {
	return &domain.Cart{
		ID:        dbCart.ID,
		UserID:    dbCart.UserID,
		CreatedAt: dbCart.CreatedAt,
	}
}
