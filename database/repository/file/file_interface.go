package fileRepo

import (
	"context"

	"lojinha/models"
)

// FileRepository defines methods for uploaded file metadata access.
type FileRepository interface {
	// Create inserts a new file record.
	Create(ctx context.Context, file *models.File) error
	// List retrieves one page of files ordered by ID descending, plus
	// the total row count.
	List(ctx context.Context, page, perPage int) ([]models.File, int64, error)
	// ListByUser retrieves all files owned by a user.
	ListByUser(ctx context.Context, userID uint) ([]models.File, error)
}
