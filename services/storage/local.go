package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalStorageService stores files on the local filesystem under Root.
type LocalStorageService struct {
	Root string
}

func NewLocalStorageService(root string) *LocalStorageService {
	return &LocalStorageService{Root: root}
}

// Save writes the content under a UUID-based name, keeping the original
// file extension.
func (s *LocalStorageService) Save(_ context.Context, src io.Reader, destFolder, filename string) (string, error) {
	dir := filepath.Join(s.Root, destFolder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	stored := uuid.New().String() + filepath.Ext(filename)
	fullPath := filepath.Join(dir, stored)

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return filepath.Join(destFolder, stored), nil
}

func (s *LocalStorageService) Delete(_ context.Context, location string) error {
	return os.Remove(filepath.Join(s.Root, location))
}
