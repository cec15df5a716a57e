package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// CloudinaryStorageService implements StorageService on Cloudinary.
type CloudinaryStorageService struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorageService creates a Cloudinary-backed StorageService.
func NewCloudinaryStorageService(cloudName, apiKey, apiSecret string) (*CloudinaryStorageService, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryStorageService{cld: cld}, nil
}

// Save uploads the content into destFolder under a UUID-based public ID
// and returns the secure URL.
func (s *CloudinaryStorageService) Save(ctx context.Context, src io.Reader, destFolder, filename string) (string, error) {
	publicID := uuid.New().String()
	if ext := filepath.Ext(filename); ext != "" {
		publicID += "-" + strings.TrimPrefix(ext, ".")
	}

	result, err := s.cld.Upload.Upload(ctx, src, uploader.UploadParams{
		Folder:   destFolder,
		PublicID: publicID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to Cloudinary: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("cloudinary returned no URL for upload")
	}
	return result.SecureURL, nil
}

func (s *CloudinaryStorageService) Delete(ctx context.Context, location string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: location})
	if err != nil {
		return fmt.Errorf("failed to delete file from Cloudinary: %w", err)
	}
	return nil
}
