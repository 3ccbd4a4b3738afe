package services

import (
	"context"

	"github.com/seabasket/seabasket-api/domain"
)

// CartServiceImpl implements domain.CartService
type CartServiceImpl struct {
	cartRepo    domain.CartRepository
	productRepo domain.ProductRepository
}

// NewCartService creates a new cart service
func NewCartService(cartRepo domain.CartRepository, productRepo domain.ProductRepository) domain.CartService {
	return &CartServiceImpl{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// Get implements domain.CartService. Lines are priced live against
// the catalog; the total is computed here, not stored.
func (s *CartServiceImpl) Get(ctx context.Context, userID uint) (*domain.CartDetail, error) {
	cart, err := s.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	lines, err := s.cartRepo.LineDetails(ctx, cart.ID)
	if err != nil {
		return nil, err
	}

	var total float64
	for _, line := range lines {
		total += line.UnitPrice * float64(line.Quantity)
	}
	return &domain.CartDetail{
		CartID:     cart.ID,
		Lines:      lines,
		TotalPrice: total,
	}, nil
}

// AddProduct implements domain.CartService. Carts exist from sign-up
// on, so a missing cart is a not-found condition rather than a reason
// to create one here.
func (s *CartServiceImpl) AddProduct(ctx context.Context, userID, productID uint, quantity int) error {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return err
	}

	cart, err := s.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	return s.cartRepo.AddLine(ctx, cart.ID, productID, quantity)
}

// RemoveProduct implements domain.CartService
func (s *CartServiceImpl) RemoveProduct(ctx context.Context, userID, productID uint) error {
	cart, err := s.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	return s.cartRepo.RemoveLine(ctx, cart.ID, productID)
}
