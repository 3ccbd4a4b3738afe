package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seabasket/seabasket-api/domain"
	"github.com/seabasket/seabasket-api/internal/mocks"
)

func setupShopRouter(catalogSvc domain.CatalogService, cartSvc domain.CartService, orderSvc domain.OrderService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewShopHandlers(catalogSvc, cartSvc, orderSvc)
	router := gin.New()
	router.GET("/shop/products", h.ListProducts)
	router.GET("/shop/products/categories", h.Categories)
	router.GET("/shop/products/trending", h.Trending)
	router.GET("/shop/products/:id", h.ProductDetail)
	router.POST("/shop/products/:id/review", withUser(1), h.PostReview)
	router.GET("/shop/cart", withUser(1), h.GetCart)
	router.POST("/shop/cart/add-product", withUser(1), h.AddToCart)
	router.DELETE("/shop/cart", withUser(1), h.RemoveFromCart)
	router.POST("/shop/order", withUser(1), h.PlaceOrder)
	router.GET("/shop/order", withUser(1), h.ListOrders)
	router.GET("/shop/order/:id", withUser(1), h.OrderDetail)
	return router
}

func TestShopHandlers_ListProducts_Filters(t *testing.T) {
	catalogSvc := mocks.NewMockCatalogService()
	catalogSvc.BrowseFunc = func(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
		assert.Equal(t, "kitchen", filter.Category)
		require.NotNil(t, filter.MinPrice)
		require.NotNil(t, filter.MaxPrice)
		assert.Equal(t, 5.0, *filter.MinPrice)
		assert.Equal(t, 50.0, *filter.MaxPrice)
		require.NotNil(t, filter.MinRating)
		assert.Equal(t, 4.0, *filter.MinRating)
		assert.Nil(t, filter.MinDiscount)
		return []domain.Product{{ID: 1, Title: "Teapot"}}, nil
	}
	router := setupShopRouter(catalogSvc, mocks.NewMockCartService(), mocks.NewMockOrderService())

	req := httptest.NewRequest(http.MethodGet, "/shop/products?category=kitchen&min_price=5&max_price=50&rating=4", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestShopHandlers_ProductDetail(t *testing.T) {
	t.Run("found with reviews", func(t *testing.T) {
		catalogSvc := mocks.NewMockCatalogService()
		catalogSvc.ProductDetailFunc = func(ctx context.Context, id uint) (*domain.Product, []domain.ReviewDetail, error) {
			return &domain.Product{ID: id, Title: "Teapot"},
				[]domain.ReviewDetail{{Review: "pours well", UserName: "Asha"}}, nil
		}
		router := setupShopRouter(catalogSvc, mocks.NewMockCartService(), mocks.NewMockOrderService())

		req := httptest.NewRequest(http.MethodGet, "/shop/products/7", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp, "product")
		assert.Contains(t, resp, "reviews")
	})

	t.Run("unknown product", func(t *testing.T) {
		router := setupShopRouter(mocks.NewMockCatalogService(), mocks.NewMockCartService(), mocks.NewMockOrderService())

		req := httptest.NewRequest(http.MethodGet, "/shop/products/404", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		router := setupShopRouter(mocks.NewMockCatalogService(), mocks.NewMockCartService(), mocks.NewMockOrderService())

		req := httptest.NewRequest(http.MethodGet, "/shop/products/abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestShopHandlers_Cart(t *testing.T) {
	t.Run("get returns lines and total", func(t *testing.T) {
		cartSvc := mocks.NewMockCartService()
		cartSvc.GetFunc = func(ctx context.Context, userID uint) (*domain.CartDetail, error) {
			return &domain.CartDetail{
				CartID:     10,
				Lines:      []domain.CartLineDetail{{ProductID: 7, Title: "Teapot", UnitPrice: 19.99, Quantity: 2}},
				TotalPrice: 39.98,
			}, nil
		}
		router := setupShopRouter(mocks.NewMockCatalogService(), cartSvc, mocks.NewMockOrderService())

		req := httptest.NewRequest(http.MethodGet, "/shop/cart", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 39.98, resp["total_price"])
	})

	t.Run("add unknown product", func(t *testing.T) {
		cartSvc := mocks.NewMockCartService()
		cartSvc.AddProductFunc = func(ctx context.Context, userID, productID uint, quantity int) error {
			return domain.ErrProductNotFound
		}
		router := setupShopRouter(mocks.NewMockCatalogService(), cartSvc, mocks.NewMockOrderService())

		w := doJSON(t, router, http.MethodPost, "/shop/cart/add-product", gin.H{"product_id": 404, "quantity": 1})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("add rejects zero quantity", func(t *testing.T) {
		router := setupShopRouter(mocks.NewMockCatalogService(), mocks.NewMockCartService(), mocks.NewMockOrderService())

		w := doJSON(t, router, http.MethodPost, "/shop/cart/add-product", gin.H{"product_id": 7, "quantity": 0})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("remove absent line", func(t *testing.T) {
		cartSvc := mocks.NewMockCartService()
		cartSvc.RemoveProductFunc = func(ctx context.Context, userID, productID uint) error {
			return domain.ErrCartLineNotFound
		}
		router := setupShopRouter(mocks.NewMockCatalogService(), cartSvc, mocks.NewMockOrderService())

		w := doJSON(t, router, http.MethodDelete, "/shop/cart", gin.H{"product_id": 7})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestShopHandlers_PlaceOrder(t *testing.T) {
	tests := []struct {
		name         string
		setupMocks   func(*mocks.MockOrderService)
		expectedCode int
	}{
		{
			name: "success returns payment link",
			setupMocks: func(orderSvc *mocks.MockOrderService) {
				orderSvc.PlaceOrderFunc = func(ctx context.Context, userID, cartID uint) (*domain.CheckoutResult, error) {
					assert.Equal(t, uint(1), userID)
					assert.Equal(t, uint(10), cartID)
					return &domain.CheckoutResult{OrderID: 55, OrderRef: "ref-1", PaymentURL: "https://pay.example.com/s/ref-1"}, nil
				}
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "cart not owned",
			setupMocks: func(orderSvc *mocks.MockOrderService) {
				orderSvc.PlaceOrderFunc = func(ctx context.Context, userID, cartID uint) (*domain.CheckoutResult, error) {
					return nil, domain.ErrCartNotOwned
				}
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "cart not found",
			setupMocks: func(orderSvc *mocks.MockOrderService) {
				orderSvc.PlaceOrderFunc = func(ctx context.Context, userID, cartID uint) (*domain.CheckoutResult, error) {
					return nil, domain.ErrCartNotFound
				}
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "empty cart",
			setupMocks: func(orderSvc *mocks.MockOrderService) {
				orderSvc.PlaceOrderFunc = func(ctx context.Context, userID, cartID uint) (*domain.CheckoutResult, error) {
					return nil, domain.ErrCartEmpty
				}
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "checkout already running",
			setupMocks: func(orderSvc *mocks.MockOrderService) {
				orderSvc.PlaceOrderFunc = func(ctx context.Context, userID, cartID uint) (*domain.CheckoutResult, error) {
					return nil, domain.ErrCheckoutInProgress
				}
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderSvc := mocks.NewMockOrderService()
			if tt.setupMocks != nil {
				tt.setupMocks(orderSvc)
			}
			router := setupShopRouter(mocks.NewMockCatalogService(), mocks.NewMockCartService(), orderSvc)

			w := doJSON(t, router, http.MethodPost, "/shop/order", gin.H{"cart_id": 10})
			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusOK {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "https://pay.example.com/s/ref-1", resp["payment_link"])
				assert.Equal(t, float64(55), resp["order_id"])
			}
		})
	}
}

func TestShopHandlers_OrderDetail(t *testing.T) {
	t.Run("cancel action", func(t *testing.T) {
		cancelled := false
		orderSvc := mocks.NewMockOrderService()
		orderSvc.CancelOrderFunc = func(ctx context.Context, userID, orderID uint) error {
			assert.Equal(t, uint(55), orderID)
			cancelled = true
			return nil
		}
		router := setupShopRouter(mocks.NewMockCatalogService(), mocks.NewMockCartService(), orderSvc)

		req := httptest.NewRequest(http.MethodGet, "/shop/order/55?action=cancel", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, cancelled)
	})

	t.Run("non-owner", func(t *testing.T) {
		orderSvc := mocks.NewMockOrderService()
		orderSvc.OrderDetailFunc = func(ctx context.Context, userID, orderID uint) (*domain.OrderDetail, error) {
			return nil, domain.ErrOrderNotOwned
		}
		router := setupShopRouter(mocks.NewMockCatalogService(), mocks.NewMockCartService(), orderSvc)

		req := httptest.NewRequest(http.MethodGet, "/shop/order/55", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("detail with snapshot total", func(t *testing.T) {
		orderSvc := mocks.NewMockOrderService()
		orderSvc.OrderDetailFunc = func(ctx context.Context, userID, orderID uint) (*domain.OrderDetail, error) {
			return &domain.OrderDetail{
				Order:      &domain.Order{ID: orderID, UserID: 1, Status: domain.OrderStatusConfirmed},
				Lines:      []domain.OrderLine{{ProductID: 7, Title: "Teapot", UnitPrice: 19.99, Quantity: 2}},
				TotalPrice: 39.98,
			}, nil
		}
		router := setupShopRouter(mocks.NewMockCatalogService(), mocks.NewMockCartService(), orderSvc)

		req := httptest.NewRequest(http.MethodGet, "/shop/order/55", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 39.98, resp["total_price"])
	})
}

func TestShopHandlers_PostReview(t *testing.T) {
	t.Run("unknown product", func(t *testing.T) {
		catalogSvc := mocks.NewMockCatalogService()
		catalogSvc.PostReviewFunc = func(ctx context.Context, userID, productID uint, text string) error {
			return domain.ErrProductNotFound
		}
		router := setupShopRouter(catalogSvc, mocks.NewMockCartService(), mocks.NewMockOrderService())

		w := doJSON(t, router, http.MethodPost, "/shop/products/404/review", gin.H{"review": "nice"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("created", func(t *testing.T) {
		catalogSvc := mocks.NewMockCatalogService()
		catalogSvc.PostReviewFunc = func(ctx context.Context, userID, productID uint, text string) error {
			assert.Equal(t, uint(1), userID)
			assert.Equal(t, uint(7), productID)
			assert.Equal(t, "pours well", text)
			return nil
		}
		router := setupShopRouter(catalogSvc, mocks.NewMockCartService(), mocks.NewMockOrderService())

		w := doJSON(t, router, http.MethodPost, "/shop/products/7/review", gin.H{"review": "pours well"})
		assert.Equal(t, http.StatusCreated, w.Code)
	})
}
