package app

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/seabasket/seabasket-api/domain"
	"github.com/seabasket/seabasket-api/internal/config"
	"github.com/seabasket/seabasket-api/internal/http/handlers"
	"github.com/seabasket/seabasket-api/internal/http/middleware"
	"github.com/seabasket/seabasket-api/internal/infrastructure/auth"
	"github.com/seabasket/seabasket-api/internal/infrastructure/database"
	"github.com/seabasket/seabasket-api/internal/infrastructure/notifications"
	"github.com/seabasket/seabasket-api/internal/infrastructure/payments"
	"github.com/seabasket/seabasket-api/internal/infrastructure/repositories"
	"github.com/seabasket/seabasket-api/internal/services"
)

// Container holds every wired component of the application. Wiring is
// explicit constructor injection, bottom-up: infrastructure, then
// repositories, then services, then HTTP.
type Container struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *database.RedisClient

	UserRepo    domain.UserRepository
	ProductRepo domain.ProductRepository
	CartRepo    domain.CartRepository
	OrderRepo   domain.OrderRepository
	ReviewRepo  domain.ReviewRepository

	AuthSvc    domain.AuthService
	OTPSvc     domain.OTPService
	CatalogSvc domain.CatalogService
	CartSvc    domain.CartService
	OrderSvc   domain.OrderService

	AuthHandlers  *handlers.AuthHandlers
	ShopHandlers  *handlers.ShopHandlers
	AdminHandlers *handlers.AdminHandlers
	AuthMW        *middleware.AuthMW
}

// NewContainer connects to the backing stores and wires the dependency
// graph. It fails fast: an unreachable database or Redis aborts start.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	db, err := database.Open(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, err
	}

	redisClient := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := redisClient.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	c := &Container{Config: cfg, DB: db, Redis: redisClient}

	c.UserRepo = repositories.NewUserRepository(db)
	c.ProductRepo = repositories.NewProductRepository(db)
	c.CartRepo = repositories.NewCartRepository(db)
	c.OrderRepo = repositories.NewOrderRepository(db)
	c.ReviewRepo = repositories.NewReviewRepository(db)

	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.TokenVersion, cfg.AccessTTL, cfg.ResetTTL)
	mailer := notifications.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, "")
	smsSender := notifications.NewTwilioSender(cfg.TwilioSID, cfg.TwilioToken, cfg.TwilioNumber)
	notifier := notifications.NewNotifier(mailer, smsSender)
	paymentSvc := payments.NewStripeService(cfg.StripeAPIURL, cfg.StripeSecretKey, cfg.StripeSuccessURL, cfg.StripeCancelURL)

	c.AuthSvc = services.NewAuthService(c.UserRepo, c.CartRepo, passwordSvc, tokenSvc, notifier)
	c.OTPSvc = services.NewOTPService(c.UserRepo, notifier, redisClient.Client, services.OTPConfig{
		Length: cfg.OTPLength,
		TTL:    cfg.OTPTTL,
	})
	c.CatalogSvc = services.NewCatalogService(c.ProductRepo, c.ReviewRepo)
	c.CartSvc = services.NewCartService(c.CartRepo, c.ProductRepo)
	c.OrderSvc = services.NewOrderService(c.OrderRepo, c.CartRepo, c.ProductRepo, paymentSvc, redisClient.Client, cfg.CheckoutLockTTL)

	c.AuthHandlers = handlers.NewAuthHandlers(c.AuthSvc, c.OTPSvc)
	c.ShopHandlers = handlers.NewShopHandlers(c.CatalogSvc, c.CartSvc, c.OrderSvc)
	c.AdminHandlers = handlers.NewAdminHandlers(c.CatalogSvc)
	c.AuthMW = middleware.NewAuthMW(tokenSvc, c.UserRepo)

	return c, nil
}

// Close releases the container's external connections
func (c *Container) Close() error {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			return err
		}
	}
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
