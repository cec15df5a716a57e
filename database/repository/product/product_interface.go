package productRepo

import (
	"context"

	"lojinha/models"
)

// ProductRepository defines methods for catalog data access. Lookups
// return (nil, nil) when no record matches.
type ProductRepository interface {
	// GetByID retrieves a product (with its category) by ID.
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	// List retrieves one page of products plus the total row count.
	List(ctx context.Context, page, perPage int) ([]models.Product, int64, error)
	// Create inserts a new product record.
	Create(ctx context.Context, product *models.Product) error
	// Update modifies an existing product record.
	Update(ctx context.Context, product *models.Product) error
	// Delete removes a product record by its ID.
	Delete(ctx context.Context, id uint) error
	// CategoryExists reports whether a category with the given ID exists.
	CategoryExists(ctx context.Context, id uint) (bool, error)
}
