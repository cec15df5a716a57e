package favoriteRepo

import (
	"context"
	"fmt"

	"lojinha/models"

	"gorm.io/gorm"
)

// GormFavoriteRepo implements FavoriteRepository on the favorites join table.
type GormFavoriteRepo struct {
	db *gorm.DB
}

func NewGormFavoriteRepo(db *gorm.DB) *GormFavoriteRepo {
	return &GormFavoriteRepo{db: db}
}

func (r *GormFavoriteRepo) Add(ctx context.Context, userID, productID uint) error {
	user := models.User{ID: userID}
	product := models.Product{ID: productID}
	// Association appends upsert into the join table, so re-favoriting
	// an already favorited product does not duplicate the row.
	err := r.db.WithContext(ctx).Model(&user).Association("FavoriteProducts").Append(&product)
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

func (r *GormFavoriteRepo) Remove(ctx context.Context, userID, productID uint) error {
	user := models.User{ID: userID}
	product := models.Product{ID: productID}
	err := r.db.WithContext(ctx).Model(&user).Association("FavoriteProducts").Delete(&product)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

func (r *GormFavoriteRepo) ListByUser(ctx context.Context, userID uint, page, perPage int) ([]models.Product, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.Product{}).
		Joins("JOIN favorites ON favorites.product_id = products.id").
		Where("favorites.user_id = ?", userID).
		Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count favorites: %w", err)
	}

	products := []models.Product{}
	err := base.
		Preload("Category").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list favorites: %w", err)
	}
	return products, total, nil
}
