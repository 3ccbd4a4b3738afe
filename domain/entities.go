package domain

import "time"

// User represents a registered shopper or seller
type User struct {
	ID           uint
	Name         string
	Email        string
	Mobile       string
	PasswordHash string `gorm:"column:password"`
	IsVerified   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Product represents a catalog item owned by a seller
type Product struct {
	ID          uint
	Title       string
	ImageURL    string
	Price       float64
	Description string
	Rating      float64
	Discount    float64
	Category    string
	UserID      uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Cart is the per-user pre-checkout basket. Exactly one per user,
// created together with the user at sign-up.
type Cart struct {
	ID        uint
	UserID    uint
	CreatedAt time.Time
}

// CartLine holds one product/quantity pair inside a cart. Repeat adds
// for the same product merge additively into a single line.
type CartLine struct {
	ID        uint
	CartID    uint
	ProductID uint
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderStatus is the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

var orderStatusRank = map[OrderStatus]int{
	OrderStatusPending:   0,
	OrderStatusConfirmed: 1,
	OrderStatusShipped:   2,
	OrderStatusDelivered: 3,
}

// IsValid reports whether s is a known order status
func (s OrderStatus) IsValid() bool {
	_, ok := orderStatusRank[s]
	return ok || s == OrderStatusCancelled
}

// CanTransitionTo reports whether moving from s to next is allowed.
// Fulfillment only moves forward; cancel is reachable from every
// non-cancelled state and is terminal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == OrderStatusCancelled {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}
	from, ok := orderStatusRank[s]
	if !ok {
		return false
	}
	to, ok := orderStatusRank[next]
	if !ok {
		return false
	}
	return to > from
}

// Order is the immutable-line-item record created at checkout
type Order struct {
	ID          uint
	Ref         string
	UserID      uint
	Status      OrderStatus
	IsCancelled bool
	Lines       []OrderLine `gorm:"foreignKey:OrderID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderLine snapshots one cart line at checkout time. Title and unit
// price are copied from the product so later catalog edits do not
// rewrite order history.
type OrderLine struct {
	ID        uint
	OrderID   uint
	ProductID uint
	Title     string
	UnitPrice float64
	Quantity  int
	CreatedAt time.Time
}

// Review is free-text feedback by a user on a product
type Review struct {
	ID        uint
	Review    string
	UserID    uint
	ProductID uint
	CreatedAt time.Time
}

// ReviewDetail is a review joined with the reviewer's display name
type ReviewDetail struct {
	Review   string
	UserName string
}

// ProductFilter narrows catalog listings. Zero values mean "no
// constraint"; set constraints combine with AND.
type ProductFilter struct {
	Category    string
	Title       string
	MinPrice    *float64
	MaxPrice    *float64
	MinRating   *float64
	MinDiscount *float64
}

// CartLineDetail is a cart line joined with live product data
type CartLineDetail struct {
	ProductID uint
	Title     string
	ImageURL  string
	UnitPrice float64
	Quantity  int
}

// CartDetail is the composed cart view returned to the storefront
type CartDetail struct {
	CartID     uint
	Lines      []CartLineDetail
	TotalPrice float64
}

// PaymentLineItem is one priced line handed to the payment provider
type PaymentLineItem struct {
	Title     string
	UnitPrice float64
	Quantity  int
}

// CheckoutResult is the outcome of a successful order placement
type CheckoutResult struct {
	OrderID    uint
	OrderRef   string
	PaymentURL string
}

// OrderDetail is an order with its lines and the snapshot total
type OrderDetail struct {
	Order      *Order
	Lines      []OrderLine
	TotalPrice float64
}

// TokenClaims carries the verified content of a bearer token. Exactly
// one of UserID or Email is set, depending on the token kind.
type TokenClaims struct {
	UserID    uint
	Email     string
	IssuedAt  int64
	ExpiresAt int64
}
