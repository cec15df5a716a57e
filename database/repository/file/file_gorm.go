package fileRepo

import (
	"context"
	"fmt"

	"lojinha/models"

	"gorm.io/gorm"
)

// GormFileRepo implements FileRepository on a relational store.
type GormFileRepo struct {
	db *gorm.DB
}

func NewGormFileRepo(db *gorm.DB) *GormFileRepo {
	return &GormFileRepo{db: db}
}

func (r *GormFileRepo) Create(ctx context.Context, file *models.File) error {
	if err := r.db.WithContext(ctx).Create(file).Error; err != nil {
		return fmt.Errorf("failed to create file record: %w", err)
	}
	return nil
}

func (r *GormFileRepo) List(ctx context.Context, page, perPage int) ([]models.File, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.File{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count files: %w", err)
	}

	files := []models.File{}
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&files).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list files: %w", err)
	}
	return files, total, nil
}

func (r *GormFileRepo) ListByUser(ctx context.Context, userID uint) ([]models.File, error) {
	files := []models.File{}
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&files).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list user files: %w", err)
	}
	return files, nil
}
