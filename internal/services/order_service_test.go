package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/seabasket/seabasket-api/domain"
	"github.com/seabasket/seabasket-api/internal/mocks"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func ownedCart(cartID, userID uint) func(ctx context.Context, id uint) (*domain.Cart, error) {
	return func(ctx context.Context, id uint) (*domain.Cart, error) {
		if id != cartID {
			return nil, domain.ErrCartNotFound
		}
		return &domain.Cart{ID: cartID, UserID: userID}, nil
	}
}

func TestOrderServiceImpl_PlaceOrder(t *testing.T) {
	product := &domain.Product{ID: 7, Title: "Teapot", Price: 19.99, UserID: 99}

	tests := []struct {
		name           string
		userID         uint
		cartID         uint
		setupMocks     func(*mocks.MockOrderRepository, *mocks.MockCartRepository, *mocks.MockProductRepository, *mocks.MockPaymentService)
		setupRedis     func(*miniredis.Miniredis)
		expectedError  error
		validateResult func(t *testing.T, result *domain.CheckoutResult)
	}{
		{
			name:   "successful checkout",
			userID: 1,
			cartID: 10,
			setupMocks: func(orderRepo *mocks.MockOrderRepository, cartRepo *mocks.MockCartRepository, productRepo *mocks.MockProductRepository, paymentSvc *mocks.MockPaymentService) {
				cartRepo.FindByIDFunc = ownedCart(10, 1)
				cartRepo.LinesFunc = func(ctx context.Context, cartID uint) ([]domain.CartLine, error) {
					return []domain.CartLine{{CartID: 10, ProductID: 7, Quantity: 2}}, nil
				}
				productRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Product, error) {
					return product, nil
				}
				orderRepo.CreateWithLinesFunc = func(ctx context.Context, order *domain.Order, lines []domain.OrderLine, clearCartID uint) error {
					if clearCartID != 10 {
						t.Errorf("expected cart 10 to be cleared, got %d", clearCartID)
					}
					if len(lines) != 1 {
						t.Fatalf("expected 1 order line, got %d", len(lines))
					}
					if lines[0].Title != "Teapot" || lines[0].UnitPrice != 19.99 {
						t.Errorf("expected snapshotted title/price, got %q %v", lines[0].Title, lines[0].UnitPrice)
					}
					if order.Status != domain.OrderStatusConfirmed {
						t.Errorf("expected confirmed status, got %s", order.Status)
					}
					order.ID = 55
					return nil
				}
			},
			validateResult: func(t *testing.T, result *domain.CheckoutResult) {
				if result.OrderID != 55 {
					t.Errorf("expected order id 55, got %d", result.OrderID)
				}
				if result.OrderRef == "" {
					t.Error("expected non-empty order ref")
				}
				if result.PaymentURL == "" {
					t.Error("expected payment URL")
				}
			},
		},
		{
			name:   "cart not found",
			userID: 1,
			cartID: 404,
			setupMocks: func(orderRepo *mocks.MockOrderRepository, cartRepo *mocks.MockCartRepository, productRepo *mocks.MockProductRepository, paymentSvc *mocks.MockPaymentService) {
				cartRepo.FindByIDFunc = ownedCart(10, 1)
			},
			expectedError: domain.ErrCartNotFound,
		},
		{
			name:   "cart owned by someone else",
			userID: 2,
			cartID: 10,
			setupMocks: func(orderRepo *mocks.MockOrderRepository, cartRepo *mocks.MockCartRepository, productRepo *mocks.MockProductRepository, paymentSvc *mocks.MockPaymentService) {
				cartRepo.FindByIDFunc = ownedCart(10, 1)
			},
			expectedError: domain.ErrCartNotOwned,
		},
		{
			name:   "empty cart",
			userID: 1,
			cartID: 10,
			setupMocks: func(orderRepo *mocks.MockOrderRepository, cartRepo *mocks.MockCartRepository, productRepo *mocks.MockProductRepository, paymentSvc *mocks.MockPaymentService) {
				cartRepo.FindByIDFunc = ownedCart(10, 1)
				cartRepo.LinesFunc = func(ctx context.Context, cartID uint) ([]domain.CartLine, error) {
					return nil, nil
				}
			},
			expectedError: domain.ErrCartEmpty,
		},
		{
			name:   "checkout already in progress",
			userID: 1,
			cartID: 10,
			setupMocks: func(orderRepo *mocks.MockOrderRepository, cartRepo *mocks.MockCartRepository, productRepo *mocks.MockProductRepository, paymentSvc *mocks.MockPaymentService) {
				cartRepo.FindByIDFunc = ownedCart(10, 1)
			},
			setupRedis: func(mr *miniredis.Miniredis) {
				mr.Set("checkout:cart:10", "someone-else")
			},
			expectedError: domain.ErrCheckoutInProgress,
		},
		{
			name:   "payment provider failure writes nothing",
			userID: 1,
			cartID: 10,
			setupMocks: func(orderRepo *mocks.MockOrderRepository, cartRepo *mocks.MockCartRepository, productRepo *mocks.MockProductRepository, paymentSvc *mocks.MockPaymentService) {
				cartRepo.FindByIDFunc = ownedCart(10, 1)
				cartRepo.LinesFunc = func(ctx context.Context, cartID uint) ([]domain.CartLine, error) {
					return []domain.CartLine{{CartID: 10, ProductID: 7, Quantity: 1}}, nil
				}
				productRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Product, error) {
					return product, nil
				}
				paymentSvc.CreateCheckoutSessionFunc = func(ctx context.Context, ref string, items []domain.PaymentLineItem) (string, error) {
					return "", errors.New("provider down")
				}
				orderRepo.CreateWithLinesFunc = func(ctx context.Context, order *domain.Order, lines []domain.OrderLine, clearCartID uint) error {
					t.Error("order must not be created when the payment session fails")
					return nil
				}
			},
			expectedError: errors.New("failed to create payment session: provider down"),
		},
		{
			name:   "order persistence failure surfaces",
			userID: 1,
			cartID: 10,
			setupMocks: func(orderRepo *mocks.MockOrderRepository, cartRepo *mocks.MockCartRepository, productRepo *mocks.MockProductRepository, paymentSvc *mocks.MockPaymentService) {
				cartRepo.FindByIDFunc = ownedCart(10, 1)
				cartRepo.LinesFunc = func(ctx context.Context, cartID uint) ([]domain.CartLine, error) {
					return []domain.CartLine{{CartID: 10, ProductID: 7, Quantity: 1}}, nil
				}
				productRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Product, error) {
					return product, nil
				}
				orderRepo.CreateWithLinesFunc = func(ctx context.Context, order *domain.Order, lines []domain.OrderLine, clearCartID uint) error {
					return errors.New("db down")
				}
			},
			expectedError: errors.New("failed to create order: db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mr, client := newTestRedis(t)
			if tt.setupRedis != nil {
				tt.setupRedis(mr)
			}

			orderRepo := mocks.NewMockOrderRepository()
			cartRepo := mocks.NewMockCartRepository()
			productRepo := mocks.NewMockProductRepository()
			paymentSvc := mocks.NewMockPaymentService()
			if tt.setupMocks != nil {
				tt.setupMocks(orderRepo, cartRepo, productRepo, paymentSvc)
			}

			svc := NewOrderService(orderRepo, cartRepo, productRepo, paymentSvc, client, 30*time.Second)
			result, err := svc.PlaceOrder(context.Background(), tt.userID, tt.cartID)

			if tt.expectedError != nil {
				if err == nil {
					t.Fatalf("expected error %q, got nil", tt.expectedError)
				}
				if !errors.Is(err, tt.expectedError) && err.Error() != tt.expectedError.Error() {
					t.Fatalf("expected error %q, got %q", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validateResult != nil {
				tt.validateResult(t, result)
			}
		})
	}
}

func TestOrderServiceImpl_PlaceOrder_ReleasesLock(t *testing.T) {
	mr, client := newTestRedis(t)

	cartRepo := mocks.NewMockCartRepository()
	cartRepo.FindByIDFunc = ownedCart(10, 1)
	cartRepo.LinesFunc = func(ctx context.Context, cartID uint) ([]domain.CartLine, error) {
		return nil, nil
	}

	svc := NewOrderService(mocks.NewMockOrderRepository(), cartRepo, mocks.NewMockProductRepository(), mocks.NewMockPaymentService(), client, 30*time.Second)

	// The empty-cart failure path must still release the lock so the
	// user can retry after adding products.
	if _, err := svc.PlaceOrder(context.Background(), 1, 10); !errors.Is(err, domain.ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}
	if mr.Exists("checkout:cart:10") {
		t.Error("expected checkout lock to be released")
	}
}

func TestOrderServiceImpl_OrderDetail(t *testing.T) {
	orderRepo := mocks.NewMockOrderRepository()
	orderRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Order, error) {
		return &domain.Order{ID: id, UserID: 1, Status: domain.OrderStatusConfirmed}, nil
	}
	orderRepo.LinesFunc = func(ctx context.Context, orderID uint) ([]domain.OrderLine, error) {
		return []domain.OrderLine{
			{OrderID: orderID, ProductID: 7, Title: "Teapot", UnitPrice: 19.99, Quantity: 2},
			{OrderID: orderID, ProductID: 8, Title: "Mug", UnitPrice: 5.00, Quantity: 1},
		}, nil
	}

	_, client := newTestRedis(t)
	svc := NewOrderService(orderRepo, mocks.NewMockCartRepository(), mocks.NewMockProductRepository(), mocks.NewMockPaymentService(), client, time.Second)

	detail, err := svc.OrderDetail(context.Background(), 1, 55)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 19.99*2 + 5.00
	if detail.TotalPrice != want {
		t.Errorf("expected total %v from snapshotted prices, got %v", want, detail.TotalPrice)
	}

	// Non-owner reads are rejected before any lines load.
	if _, err := svc.OrderDetail(context.Background(), 2, 55); !errors.Is(err, domain.ErrOrderNotOwned) {
		t.Errorf("expected ErrOrderNotOwned, got %v", err)
	}
}

func TestOrderServiceImpl_CancelOrder(t *testing.T) {
	cancelled := false
	orderRepo := mocks.NewMockOrderRepository()
	orderRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Order, error) {
		return &domain.Order{ID: id, UserID: 1, Status: domain.OrderStatusCancelled, IsCancelled: cancelled}, nil
	}
	orderRepo.CancelFunc = func(ctx context.Context, orderID uint) error {
		cancelled = true
		return nil
	}

	_, client := newTestRedis(t)
	svc := NewOrderService(orderRepo, mocks.NewMockCartRepository(), mocks.NewMockProductRepository(), mocks.NewMockPaymentService(), client, time.Second)

	if err := svc.CancelOrder(context.Background(), 1, 55); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cancelled {
		t.Fatal("expected order to be cancelled")
	}

	// Cancelling again is a no-op, not an error.
	orderRepo.CancelFunc = func(ctx context.Context, orderID uint) error {
		t.Error("cancel must not be re-issued for an already cancelled order")
		return nil
	}
	if err := svc.CancelOrder(context.Background(), 1, 55); err != nil {
		t.Fatalf("unexpected error on repeat cancel: %v", err)
	}
}
