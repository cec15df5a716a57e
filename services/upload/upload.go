package upload

import (
	"context"
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"

	fileRepo "lojinha/database/repository/file"
	userRepo "lojinha/database/repository/user"
	"lojinha/models"
	"lojinha/services/storage"
	userService "lojinha/services/user"
	"lojinha/utils"

	"go.uber.org/zap"
)

var (
	// ErrFileRequired is returned when the multipart field is absent.
	ErrFileRequired = errors.New("Imagem é obrigatória!")
	// ErrInvalidType is returned for disallowed file types.
	ErrInvalidType = errors.New("Somente arquivos jpg, png, pdf e gif são permitidos!")
	// ErrTooLarge is returned when the upload exceeds the size limit.
	ErrTooLarge = errors.New("O arquivo não pode exceder 2MB!")
)

var allowedExtensions = map[string]bool{
	".jpg": true,
	".png": true,
	".pdf": true,
	".gif": true,
}

// UploadService defines business logic for file uploads.
type UploadService interface {
	// Upload validates the file, stores its content and persists the
	// metadata record.
	Upload(ctx context.Context, userID uint, header *multipart.FileHeader) (*models.File, error)
	// ListFiles retrieves one page of files plus the total count.
	ListFiles(ctx context.Context, page, perPage int) ([]models.File, int64, error)
	// ListUserFiles retrieves all files owned by a user.
	ListUserFiles(ctx context.Context, userID uint) ([]models.File, error)
}

// DefaultUploadService is the production implementation.
type DefaultUploadService struct {
	Files   fileRepo.FileRepository
	Users   userRepo.UserRepository
	Storage storage.StorageService
}

func (s *DefaultUploadService) Upload(ctx context.Context, userID uint, header *multipart.FileHeader) (*models.File, error) {
	if header == nil {
		return nil, ErrFileRequired
	}
	if header.Size > utils.MaxUploadSize {
		return nil, ErrTooLarge
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		return nil, ErrInvalidType
	}

	src, err := header.Open()
	if err != nil {
		utils.GetLogger().Error("Failed to open uploaded file", zap.Error(err))
		return nil, err
	}
	defer src.Close()

	location, err := s.Storage.Save(ctx, src, "uploads", header.Filename)
	if err != nil {
		utils.GetLogger().Error("Failed to store uploaded file", zap.Error(err))
		return nil, err
	}

	record := &models.File{
		UserID:   userID,
		Filename: header.Filename,
		Path:     location,
		MimeType: header.Header.Get("Content-Type"),
	}
	if err := s.Files.Create(ctx, record); err != nil {
		// Do not leave an orphaned blob behind.
		_ = s.Storage.Delete(ctx, location)
		return nil, err
	}
	return record, nil
}

func (s *DefaultUploadService) ListFiles(ctx context.Context, page, perPage int) ([]models.File, int64, error) {
	return s.Files.List(ctx, page, perPage)
}

func (s *DefaultUploadService) ListUserFiles(ctx context.Context, userID uint) ([]models.File, error) {
	usr, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, userService.ErrUserNotFound
	}
	return s.Files.ListByUser(ctx, userID)
}
