package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"anuncia/internal/models/db_models"
)

type FavoriteRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Favorite, error)
	Add(ctx context.Context, fav *db_models.Favorite) error
	Remove(ctx context.Context, userID, listingID uuid.UUID) error
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Favorite, error) {
	var favorites []db_models.Favorite
	err := r.db.WithContext(ctx).
		Preload("Listing").
		Preload("Listing.Photos").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

// Add relies on the composite unique index; duplicate pairs surface as a
// constraint violation for the service to translate.
func (r *favoriteRepository) Add(ctx context.Context, fav *db_models.Favorite) error {
	return r.db.WithContext(ctx).Create(fav).Error
}

func (r *favoriteRepository) Remove(ctx context.Context, userID, listingID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		Delete(&db_models.Favorite{}).Error
}
