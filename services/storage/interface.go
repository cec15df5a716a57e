package storage

import (
	"context"
	"io"
)

// StorageService abstracts where uploaded files end up. Save returns
// the stored location: a path relative to the upload root for the
// local backend, or a remote URL for Cloudinary.
type StorageService interface {
	Save(ctx context.Context, src io.Reader, destFolder, filename string) (string, error)
	Delete(ctx context.Context, location string) error
}
