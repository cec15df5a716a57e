package favoriteRepo

import (
	"context"

	"lojinha/models"
)

// FavoriteRepository manages the user⟷product favorites pivot.
type FavoriteRepository interface {
	// Add marks a product as a favorite of the user. Adding an existing
	// favorite is a no-op.
	Add(ctx context.Context, userID, productID uint) error
	// Remove unmarks a product as a favorite of the user.
	Remove(ctx context.Context, userID, productID uint) error
	// ListByUser retrieves one page of the user's favorite products
	// (with categories) plus the total count.
	ListByUser(ctx context.Context, userID uint, page, perPage int) ([]models.Product, int64, error)
}
