package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/imovelliz/backend/internal/domain/listing"
	"github.com/imovelliz/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormFavoriteRepository implements listing.FavoriteRepository using GORM
type GormFavoriteRepository struct {
	db *gorm.DB
}

// NewGormFavoriteRepository creates a new GormFavoriteRepository
func NewGormFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

// Exists reports whether the (user, property) pair is favorited
func (r *GormFavoriteRepository) Exists(ctx context.Context, userID, propertyID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&listing.Favorite{}).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByUser returns a user's favorites, each with its property and only
// main-flagged photos loaded
func (r *GormFavoriteRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]listing.Favorite, error) {
	var favorites []listing.Favorite
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Property").
		Preload("Property.Photos", "is_main = ?", true).
		Order("created_at DESC").
		Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}

// Save inserts the favorite pair. The composite primary key turns a
// concurrent duplicate insert into a constraint violation, which is the
// real duplicate guard.
func (r *GormFavoriteRepository) Save(ctx context.Context, favorite *listing.Favorite) error {
	return r.db.WithContext(ctx).Create(favorite).Error
}

// Delete removes the favorite pair; returns shared.ErrNotFound when the
// pair does not exist
func (r *GormFavoriteRepository) Delete(ctx context.Context, userID, propertyID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Delete(&listing.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
