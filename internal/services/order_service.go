package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/seabasket/seabasket-api/domain"
	"github.com/seabasket/seabasket-api/internal/infrastructure/database"
)

// OrderServiceImpl implements domain.OrderService. PlaceOrder is the
// checkout workflow: price the cart live, open a payment session with
// the external provider, then materialize the order and clear the
// cart in one database transaction. A per-cart Redis lock serializes
// concurrent checkout attempts on the same cart.
type OrderServiceImpl struct {
	orderRepo   domain.OrderRepository
	cartRepo    domain.CartRepository
	productRepo domain.ProductRepository
	paymentSvc  domain.PaymentService
	redisClient *redis.Client
	lockTTL     time.Duration
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo domain.OrderRepository,
	cartRepo domain.CartRepository,
	productRepo domain.ProductRepository,
	paymentSvc domain.PaymentService,
	redisClient *redis.Client,
	lockTTL time.Duration,
) domain.OrderService {
	return &OrderServiceImpl{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		paymentSvc:  paymentSvc,
		redisClient: redisClient,
		lockTTL:     lockTTL,
	}
}

func checkoutLockKey(cartID uint) string {
	return fmt.Sprintf("checkout:cart:%d", cartID)
}

// PlaceOrder implements domain.OrderService
func (s *OrderServiceImpl) PlaceOrder(ctx context.Context, userID, cartID uint) (*domain.CheckoutResult, error) {
	cart, err := s.cartRepo.FindByID(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if cart.UserID != userID {
		return nil, domain.ErrCartNotOwned
	}

	// One checkout per cart at a time. The lock key doubles as the
	// idempotency scope: a retry while an attempt is in flight is
	// rejected instead of double-creating orders.
	ref := uuid.NewString()
	acquired, err := database.SetNX(ctx, s.redisClient, checkoutLockKey(cartID), ref, s.lockTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire checkout lock: %w", err)
	}
	if !acquired {
		return nil, domain.ErrCheckoutInProgress
	}
	defer s.redisClient.Del(context.WithoutCancel(ctx), checkoutLockKey(cartID))

	cartLines, err := s.cartRepo.Lines(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart lines: %w", err)
	}
	if len(cartLines) == 0 {
		return nil, domain.ErrCartEmpty
	}

	// Prices are read live from the catalog at checkout time; the
	// add-to-cart price carries no lock.
	orderLines := make([]domain.OrderLine, 0, len(cartLines))
	paymentItems := make([]domain.PaymentLineItem, 0, len(cartLines))
	for _, line := range cartLines {
		product, err := s.productRepo.FindByID(ctx, line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to price cart line for product %d: %w", line.ProductID, err)
		}
		orderLines = append(orderLines, domain.OrderLine{
			ProductID: product.ID,
			Title:     product.Title,
			UnitPrice: product.Price,
			Quantity:  line.Quantity,
		})
		paymentItems = append(paymentItems, domain.PaymentLineItem{
			Title:     product.Title,
			UnitPrice: product.Price,
			Quantity:  line.Quantity,
		})
	}

	// Nothing has been written yet, so a provider failure aborts the
	// whole operation with no compensation needed.
	paymentURL, err := s.paymentSvc.CreateCheckoutSession(ctx, ref, paymentItems)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment session: %w", err)
	}

	order := &domain.Order{
		Ref:    ref,
		UserID: userID,
		Status: domain.OrderStatusConfirmed,
	}
	if err := s.orderRepo.CreateWithLines(ctx, order, orderLines, cartID); err != nil {
		// The payment session already exists and is not cancelled
		// here; it expires on the provider side.
		log.Printf("ORPHANED_PAYMENT_SESSION: ref=%s cart_id=%d error=%v", ref, cartID, err)
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return &domain.CheckoutResult{
		OrderID:    order.ID,
		OrderRef:   order.Ref,
		PaymentURL: paymentURL,
	}, nil
}

// ListOrders implements domain.OrderService
func (s *OrderServiceImpl) ListOrders(ctx context.Context, userID uint) ([]domain.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

// OrderDetail implements domain.OrderService. The total is computed
// from the prices snapshotted at placement, not the current catalog.
func (s *OrderServiceImpl) OrderDetail(ctx context.Context, userID, orderID uint) (*domain.OrderDetail, error) {
	order, err := s.loadOwnedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	lines, err := s.orderRepo.Lines(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order lines: %w", err)
	}

	var total float64
	for _, line := range lines {
		total += line.UnitPrice * float64(line.Quantity)
	}
	return &domain.OrderDetail{
		Order:      order,
		Lines:      lines,
		TotalPrice: total,
	}, nil
}

// CancelOrder implements domain.OrderService. Cancelling twice is
// harmless: the order stays cancelled.
func (s *OrderServiceImpl) CancelOrder(ctx context.Context, userID, orderID uint) error {
	order, err := s.loadOwnedOrder(ctx, userID, orderID)
	if err != nil {
		return err
	}
	if order.IsCancelled {
		return nil
	}
	return s.orderRepo.Cancel(ctx, orderID)
}

func (s *OrderServiceImpl) loadOwnedOrder(ctx context.Context, userID, orderID uint) (*domain.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domain.ErrOrderNotOwned
	}
	return order, nil
}
