package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/seabasket/seabasket-api/domain"
)

// OrderRepositoryImpl implements domain.OrderRepository using GORM
type OrderRepositoryImpl struct {
	db *gorm.DB
}

// DBOrder represents the database model for Order
type DBOrder struct {
	ID          uint   `gorm:"primaryKey"`
	Ref         string `gorm:"uniqueIndex;size:64"`
	UserID      uint   `gorm:"index"`
	Status      string `gorm:"size:16;index"`
	IsCancelled bool
	Lines       []DBOrderLine `gorm:"foreignKey:OrderID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for GORM
func (DBOrder) TableName() string {
	return "orders"
}

// DBOrderLine represents the database model for OrderLine
type DBOrderLine struct {
	ID        uint   `gorm:"primaryKey"`
	OrderID   uint   `gorm:"index"`
	ProductID uint   `gorm:"index"`
	Title     string `gorm:"size:255"`
	UnitPrice float64
	Quantity  int
	CreatedAt time.Time
}

// TableName returns the table name for GORM
func (DBOrderLine) TableName() string {
	return "order_lines"
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domain.OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

// CreateWithLines implements domain.OrderRepository. Header, lines
// and the cart clear commit or roll back together; the clear is
// scoped to the source cart so other carts holding the same products
// are untouched.
func (r *OrderRepositoryImpl) CreateWithLines(ctx context.Context, order *domain.Order, lines []domain.OrderLine, clearCartID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbOrder := &DBOrder{
			Ref:         order.Ref,
			UserID:      order.UserID,
			Status:      string(order.Status),
			IsCancelled: order.IsCancelled,
		}
		if err := tx.Create(dbOrder).Error; err != nil {
			return err
		}

		dbLines := make([]DBOrderLine, 0, len(lines))
		for i := range lines {
			dbLines = append(dbLines, DBOrderLine{
				OrderID:   dbOrder.ID,
				ProductID: lines[i].ProductID,
				Title:     lines[i].Title,
				UnitPrice: lines[i].UnitPrice,
				Quantity:  lines[i].Quantity,
			})
		}
		if len(dbLines) > 0 {
			if err := tx.Create(&dbLines).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("cart_id = ?", clearCartID).Delete(&DBCartLine{}).Error; err != nil {
			return err
		}

		order.ID = dbOrder.ID
		return nil
	})
}

// FindByID implements domain.OrderRepository
func (r *OrderRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	var dbOrder DBOrder
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbOrder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return orderToDomain(&dbOrder), nil
}

// ListByUser implements domain.OrderRepository
func (r *OrderRepositoryImpl) ListByUser(ctx context.Context, userID uint) ([]domain.Order, error) {
	var dbOrders []DBOrder
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Lines").
		Order("created_at DESC").
		Find(&dbOrders).Error
	if err != nil {
		return nil, err
	}
	orders := make([]domain.Order, 0, len(dbOrders))
	for i := range dbOrders {
		orders = append(orders, *orderToDomain(&dbOrders[i]))
	}
	return orders, nil
}

// Lines implements domain.OrderRepository
func (r *OrderRepositoryImpl) Lines(ctx context.Context, orderID uint) ([]domain.OrderLine, error) {
	var dbLines []DBOrderLine
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Find(&dbLines).Error; err != nil {
		return nil, err
	}
	return orderLinesToDomain(dbLines), nil
}

// Cancel implements domain.OrderRepository. Cancelling an already
// cancelled order is a harmless repeat of the same write.
func (r *OrderRepositoryImpl) Cancel(ctx context.Context, orderID uint) error {
	res := r.db.WithContext(ctx).Model(&DBOrder{}).Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"status":       string(domain.OrderStatusCancelled),
			"is_cancelled": true,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func orderToDomain(dbOrder *DBOrder) *domain.Order {
	return &domain.Order{
		ID:          dbOrder.ID,
		Ref:         dbOrder.Ref,
		UserID:      dbOrder.UserID,
		Status:      domain.OrderStatus(dbOrder.Status),
		IsCancelled: dbOrder.IsCancelled,
		Lines:       orderLinesToDomain(dbOrder.Lines),
		CreatedAt:   dbOrder.CreatedAt,
		UpdatedAt:   dbOrder.UpdatedAt,
	}
}

func orderLinesToDomain(dbLines []DBOrderLine) []domain.OrderLine {
	lines := make([]domain.OrderLine, 0, len(dbLines))
	for i := range dbLines {
		lines = append(lines, domain.OrderLine{
			ID:        dbLines[i].ID,
			OrderID:   dbLines[i].OrderID,
			ProductID: dbLines[i].ProductID,
			Title:     dbLines[i].Title,
			UnitPrice: dbLines[i].UnitPrice,
			Quantity:  dbLines[i].Quantity,
			CreatedAt: dbLines[i].CreatedAt,
		})
	}
	return lines
}
