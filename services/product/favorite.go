package product

import (
	"context"

	favoriteRepo "lojinha/database/repository/favorite"
	productRepo "lojinha/database/repository/product"
	"lojinha/models"
)

// FavoriteService manages a user's favorite products.
type FavoriteService interface {
	// Favorite marks a product as a favorite of the user (idempotent).
	Favorite(ctx context.Context, userID, productID uint) error
	// Unfavorite unmarks a product as a favorite of the user.
	Unfavorite(ctx context.Context, userID, productID uint) error
	// ListFavorites retrieves one page of the user's favorites plus the
	// total count.
	ListFavorites(ctx context.Context, userID uint, page, perPage int) ([]models.Product, int64, error)
}

// DefaultFavoriteService is the production implementation.
type DefaultFavoriteService struct {
	Repo        favoriteRepo.FavoriteRepository
	ProductRepo productRepo.ProductRepository
}

func (s *DefaultFavoriteService) Favorite(ctx context.Context, userID, productID uint) error {
	p, err := s.ProductRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrProductNotFound
	}
	return s.Repo.Add(ctx, userID, productID)
}

func (s *DefaultFavoriteService) Unfavorite(ctx context.Context, userID, productID uint) error {
	p, err := s.ProductRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrProductNotFound
	}
	return s.Repo.Remove(ctx, userID, productID)
}

func (s *DefaultFavoriteService) ListFavorites(ctx context.Context, userID uint, page, perPage int) ([]models.Product, int64, error) {
	return s.Repo.ListByUser(ctx, userID, page, perPage)
}
