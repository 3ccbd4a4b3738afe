package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seabasket/seabasket-api/domain"
	"github.com/seabasket/seabasket-api/internal/http/middleware"
)

// AdminHandlers handles seller-scoped product management. Every route
// operates on the authenticated seller's own products only.
type AdminHandlers struct {
	catalogSvc domain.CatalogService
}

// NewAdminHandlers creates new admin handlers
func NewAdminHandlers(catalogSvc domain.CatalogService) *AdminHandlers {
	return &AdminHandlers{catalogSvc: catalogSvc}
}

// ProductRequest represents the product create/update body
type ProductRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	ImageURL    string  `json:"image_url" binding:"omitempty,url"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Description string  `json:"description" binding:"omitempty,max=4096"`
	Rating      float64 `json:"rating" binding:"omitempty,min=0,max=5"`
	Discount    float64 `json:"discount" binding:"omitempty,min=0,max=100"`
	Category    string  `json:"category" binding:"required,max=255"`
}

// CreateProduct adds a product owned by the authenticated seller
func (h *AdminHandlers) CreateProduct(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := &domain.Product{
		Title:       req.Title,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		Description: req.Description,
		Rating:      req.Rating,
		Discount:    req.Discount,
		Category:    req.Category,
		UserID:      userID,
	}
	if err := h.catalogSvc.CreateProduct(c.Request.Context(), product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product created", "product": product})
}

// ListOwnProducts returns the seller's products, filterable like the
// public listing
func (h *AdminHandlers) ListOwnProducts(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	products, err := h.catalogSvc.OwnProducts(c.Request.Context(), userID, parseFilter(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetOwnProduct returns one of the seller's products. Other sellers'
// products read as not found.
func (h *AdminHandlers) GetOwnProduct(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}

	product, err := h.catalogSvc.OwnProduct(c.Request.Context(), userID, productID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// UpdateProduct overwrites one of the seller's products
func (h *AdminHandlers) UpdateProduct(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := &domain.Product{
		ID:          productID,
		Title:       req.Title,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		Description: req.Description,
		Rating:      req.Rating,
		Discount:    req.Discount,
		Category:    req.Category,
		UserID:      userID,
	}
	if err := h.catalogSvc.UpdateProduct(c.Request.Context(), userID, product); err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		case errors.Is(err, domain.ErrNotProductOwner):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "You do not own this product"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated"})
}

// DeleteProduct removes one of the seller's products
func (h *AdminHandlers) DeleteProduct(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.catalogSvc.DeleteProduct(c.Request.Context(), userID, productID); err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		case errors.Is(err, domain.ErrNotProductOwner):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "You do not own this product"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
