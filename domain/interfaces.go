package domain

import "context"

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByMobile(ctx context.Context, mobile string) (*User, error)
	ExistsByEmailOrMobile(ctx context.Context, email, mobile string) (bool, error)
	Update(ctx context.Context, user *User) error
	UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error
	MarkVerified(ctx context.Context, email string) error
}

// ProductRepository defines catalog data access operations
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id uint) (*Product, error)
	List(ctx context.Context, filter ProductFilter) ([]Product, error)
	ListByUser(ctx context.Context, userID uint, filter ProductFilter) ([]Product, error)
	Categories(ctx context.Context) ([]string, error)
	Trending(ctx context.Context, minRating float64, limit int) ([]Product, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uint) error
}

// CartRepository defines cart and cart-line data access operations
type CartRepository interface {
	Create(ctx context.Context, cart *Cart) error
	FindByID(ctx context.Context, id uint) (*Cart, error)
	FindByUserID(ctx context.Context, userID uint) (*Cart, error)
	Lines(ctx context.Context, cartID uint) ([]CartLine, error)
	// LineDetails joins cart lines with live product data
	LineDetails(ctx context.Context, cartID uint) ([]CartLineDetail, error)
	// AddLine merges additively into an existing (cart, product) line
	// or creates one; the increment is atomic at the database level.
	AddLine(ctx context.Context, cartID, productID uint, quantity int) error
	RemoveLine(ctx context.Context, cartID, productID uint) error
}

// OrderRepository defines order data access operations
type OrderRepository interface {
	// CreateWithLines creates the order header and its lines and
	// clears the source cart's lines in a single transaction.
	CreateWithLines(ctx context.Context, order *Order, lines []OrderLine, clearCartID uint) error
	FindByID(ctx context.Context, id uint) (*Order, error)
	ListByUser(ctx context.Context, userID uint) ([]Order, error)
	Lines(ctx context.Context, orderID uint) ([]OrderLine, error)
	Cancel(ctx context.Context, orderID uint) error
}

// ReviewRepository defines review data access operations
type ReviewRepository interface {
	Create(ctx context.Context, review *Review) error
	ListByProduct(ctx context.Context, productID uint) ([]ReviewDetail, error)
}

// AuthService defines identity and credential business logic
type AuthService interface {
	SignUp(ctx context.Context, name, email, mobile, password string) (*User, error)
	SignIn(ctx context.Context, email, mobile, password string) (string, *User, error)
	UpdateProfile(ctx context.Context, userID uint, name, email, mobile string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// OTPService defines email verification operations
type OTPService interface {
	Send(ctx context.Context, email string) error
	Verify(ctx context.Context, email, code string) error
}

// CatalogService defines catalog browsing, admin CRUD and reviews
type CatalogService interface {
	Browse(ctx context.Context, filter ProductFilter) ([]Product, error)
	ProductDetail(ctx context.Context, id uint) (*Product, []ReviewDetail, error)
	Categories(ctx context.Context) ([]string, error)
	Trending(ctx context.Context) ([]Product, error)
	PostReview(ctx context.Context, userID, productID uint, text string) error

	CreateProduct(ctx context.Context, product *Product) error
	OwnProducts(ctx context.Context, userID uint, filter ProductFilter) ([]Product, error)
	OwnProduct(ctx context.Context, userID, productID uint) (*Product, error)
	UpdateProduct(ctx context.Context, userID uint, product *Product) error
	DeleteProduct(ctx context.Context, userID, productID uint) error
}

// CartService defines cart mutation and read operations
type CartService interface {
	Get(ctx context.Context, userID uint) (*CartDetail, error)
	AddProduct(ctx context.Context, userID, productID uint, quantity int) error
	RemoveProduct(ctx context.Context, userID, productID uint) error
}

// OrderService defines the checkout workflow and order queries
type OrderService interface {
	PlaceOrder(ctx context.Context, userID, cartID uint) (*CheckoutResult, error)
	ListOrders(ctx context.Context, userID uint) ([]Order, error)
	OrderDetail(ctx context.Context, userID, orderID uint) (*OrderDetail, error)
	CancelOrder(ctx context.Context, userID, orderID uint) error
}

// PasswordService defines password hashing operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines signed bearer-token operations. Validate
// always checks the signature; there is no unverified decode path.
type TokenService interface {
	GenerateUserToken(userID uint) (string, error)
	GenerateResetToken(email string) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// NotificationService defines outbound email and SMS operations
type NotificationService interface {
	SendEmail(to, subject, body string) error
	SendSMS(to, message string) error
}

// PaymentService defines the external payment-session provider
type PaymentService interface {
	// CreateCheckoutSession registers the priced line items with the
	// provider and returns an opaque URL the buyer completes payment
	// on. ref correlates the session with the checkout attempt.
	CreateCheckoutSession(ctx context.Context, ref string, items []PaymentLineItem) (string, error)
}
