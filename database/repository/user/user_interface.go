package userRepo

import (
	"context"

	"lojinha/models"
)

// UserRepository defines methods for user data access. Lookups return
// (nil, nil) when no record matches.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, id uint) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// List retrieves one page of users ordered by ID descending, plus
	// the total row count.
	List(ctx context.Context, page, perPage int) ([]models.User, int64, error)
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
	// Update modifies an existing user record.
	Update(ctx context.Context, user *models.User) error
	// Delete removes a user record by its ID.
	Delete(ctx context.Context, id uint) error
}
