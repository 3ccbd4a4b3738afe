package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/seabasket/seabasket-api/domain"
	"github.com/seabasket/seabasket-api/internal/http/middleware"
)

// ShopHandlers handles the storefront HTTP requests: catalog browsing,
// cart mutation, checkout and order queries.
type ShopHandlers struct {
	catalogSvc domain.CatalogService
	cartSvc    domain.CartService
	orderSvc   domain.OrderService
}

// NewShopHandlers creates new shop handlers
func NewShopHandlers(catalogSvc domain.CatalogService, cartSvc domain.CartService, orderSvc domain.OrderService) *ShopHandlers {
	return &ShopHandlers{catalogSvc: catalogSvc, cartSvc: cartSvc, orderSvc: orderSvc}
}

// AddToCartRequest represents the add-to-cart request body
type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// RemoveFromCartRequest represents the remove-from-cart request body
type RemoveFromCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// PlaceOrderRequest represents the checkout request body
type PlaceOrderRequest struct {
	CartID uint `json:"cart_id" binding:"required"`
}

// PostReviewRequest represents the review submission body
type PostReviewRequest struct {
	Review string `json:"review" binding:"required,max=1024"`
}

func parseFilter(c *gin.Context) domain.ProductFilter {
	filter := domain.ProductFilter{
		Category: c.Query("category"),
		Title:    c.Query("title"),
	}
	if v, err := strconv.ParseFloat(c.Query("min_price"), 64); err == nil {
		filter.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(c.Query("max_price"), 64); err == nil {
		filter.MaxPrice = &v
	}
	if v, err := strconv.ParseFloat(c.Query("rating"), 64); err == nil {
		filter.MinRating = &v
	}
	if v, err := strconv.ParseFloat(c.Query("discount"), 64); err == nil {
		filter.MinDiscount = &v
	}
	return filter
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// ListProducts returns the filtered catalog listing
func (h *ShopHandlers) ListProducts(c *gin.Context) {
	products, err := h.catalogSvc.Browse(c.Request.Context(), parseFilter(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// ProductDetail returns one product with its reviews
func (h *ShopHandlers) ProductDetail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	product, reviews, err := h.catalogSvc.ProductDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product, "reviews": reviews})
}

// Categories returns the distinct category names in the catalog
func (h *ShopHandlers) Categories(c *gin.Context) {
	categories, err := h.catalogSvc.Categories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// Trending returns the highly rated recently updated products
func (h *ShopHandlers) Trending(c *gin.Context) {
	products, err := h.catalogSvc.Trending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list trending products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// PostReview records a review on a product
func (h *ShopHandlers) PostReview(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req PostReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.catalogSvc.PostReview(c.Request.Context(), userID, productID, req.Review); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post review"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Review added"})
}

// GetCart returns the authenticated user's cart with live prices
func (h *ShopHandlers) GetCart(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	cart, err := h.cartSvc.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrCartNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"cart_id":     cart.CartID,
		"products":    cart.Lines,
		"total_price": cart.TotalPrice,
	})
}

// AddToCart merges a product into the user's cart
func (h *ShopHandlers) AddToCart(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.cartSvc.AddProduct(c.Request.Context(), userID, req.ProductID, req.Quantity); err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		case errors.Is(err, domain.ErrCartNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product to cart"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product added to cart"})
}

// RemoveFromCart deletes one product line from the user's cart
func (h *ShopHandlers) RemoveFromCart(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req RemoveFromCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.cartSvc.RemoveProduct(c.Request.Context(), userID, req.ProductID); err != nil {
		switch {
		case errors.Is(err, domain.ErrCartNotFound), errors.Is(err, domain.ErrCartLineNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not in cart"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove product from cart"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product removed from cart"})
}

// PlaceOrder runs the checkout workflow and returns the payment link
func (h *ShopHandlers) PlaceOrder(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.orderSvc.PlaceOrder(c.Request.Context(), userID, req.CartID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCartNotOwned):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Cart does not belong to you"})
		case errors.Is(err, domain.ErrCartNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
		case errors.Is(err, domain.ErrCartEmpty):
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart is empty"})
		case errors.Is(err, domain.ErrCheckoutInProgress):
			c.JSON(http.StatusConflict, gin.H{"error": "Checkout already in progress for this cart"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Order placed",
		"order_id":     result.OrderID,
		"order_ref":    result.OrderRef,
		"payment_link": result.PaymentURL,
	})
}

// ListOrders returns the authenticated user's orders
func (h *ShopHandlers) ListOrders(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	orders, err := h.orderSvc.ListOrders(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// OrderDetail returns one order, or cancels it when ?action=cancel
func (h *ShopHandlers) OrderDetail(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if c.Query("action") == "cancel" {
		if err := h.orderSvc.CancelOrder(c.Request.Context(), userID, orderID); err != nil {
			h.orderError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order cancelled"})
		return
	}

	detail, err := h.orderSvc.OrderDetail(c.Request.Context(), userID, orderID)
	if err != nil {
		h.orderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"order":       detail.Order,
		"products":    detail.Lines,
		"total_price": detail.TotalPrice,
	})
}

func (h *ShopHandlers) orderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	case errors.Is(err, domain.ErrOrderNotOwned):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Order does not belong to you"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
	}
}
