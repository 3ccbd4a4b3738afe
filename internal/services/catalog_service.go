package services

import (
	"context"

	"github.com/seabasket/seabasket-api/domain"
)

const (
	trendingMinRating = 4.0
	trendingLimit     = 10
)

// CatalogServiceImpl implements domain.CatalogService
type CatalogServiceImpl struct {
	productRepo domain.ProductRepository
	reviewRepo  domain.ReviewRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(productRepo domain.ProductRepository, reviewRepo domain.ReviewRepository) domain.CatalogService {
	return &CatalogServiceImpl{
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
	}
}

// Browse implements domain.CatalogService
func (s *CatalogServiceImpl) Browse(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	return s.productRepo.List(ctx, filter)
}

// ProductDetail implements domain.CatalogService
func (s *CatalogServiceImpl) ProductDetail(ctx context.Context, id uint) (*domain.Product, []domain.ReviewDetail, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	reviews, err := s.reviewRepo.ListByProduct(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return product, reviews, nil
}

// Categories implements domain.CatalogService
func (s *CatalogServiceImpl) Categories(ctx context.Context) ([]string, error) {
	return s.productRepo.Categories(ctx)
}

// Trending implements domain.CatalogService
func (s *CatalogServiceImpl) Trending(ctx context.Context) ([]domain.Product, error) {
	return s.productRepo.Trending(ctx, trendingMinRating, trendingLimit)
}

// PostReview implements domain.CatalogService
func (s *CatalogServiceImpl) PostReview(ctx context.Context, userID, productID uint, text string) error {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return err
	}
	return s.reviewRepo.Create(ctx, &domain.Review{
		Review:    text,
		UserID:    userID,
		ProductID: productID,
	})
}

// CreateProduct implements domain.CatalogService
func (s *CatalogServiceImpl) CreateProduct(ctx context.Context, product *domain.Product) error {
	return s.productRepo.Create(ctx, product)
}

// OwnProducts implements domain.CatalogService
func (s *CatalogServiceImpl) OwnProducts(ctx context.Context, userID uint, filter domain.ProductFilter) ([]domain.Product, error) {
	return s.productRepo.ListByUser(ctx, userID, filter)
}

// OwnProduct implements domain.CatalogService
func (s *CatalogServiceImpl) OwnProduct(ctx context.Context, userID, productID uint) (*domain.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.UserID != userID {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

// UpdateProduct implements domain.CatalogService. Only the owner may
// mutate a product.
func (s *CatalogServiceImpl) UpdateProduct(ctx context.Context, userID uint, product *domain.Product) error {
	existing, err := s.productRepo.FindByID(ctx, product.ID)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return domain.ErrNotProductOwner
	}
	return s.productRepo.Update(ctx, product)
}

// DeleteProduct implements domain.CatalogService
func (s *CatalogServiceImpl) DeleteProduct(ctx context.Context, userID, productID uint) error {
	existing, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return domain.ErrNotProductOwner
	}
	return s.productRepo.Delete(ctx, productID)
}
