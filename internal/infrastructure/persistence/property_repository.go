package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/imovelliz/backend/internal/domain/listing"
	"github.com/imovelliz/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPropertyRepository implements listing.PropertyRepository using GORM
type GormPropertyRepository struct {
	db *gorm.DB
}

// NewGormPropertyRepository creates a new GormPropertyRepository
func NewGormPropertyRepository(db *gorm.DB) *GormPropertyRepository {
	return &GormPropertyRepository{db: db}
}

// FindByID finds a property by its ID with photos and owner
func (r *GormPropertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*listing.Property, error) {
	var property listing.Property
	if err := r.db.WithContext(ctx).
		Preload("Photos").
		Preload("Owner").
		First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &property, nil
}

// FindAll returns every property with photos and owner
func (r *GormPropertyRepository) FindAll(ctx context.Context) ([]listing.Property, error) {
	var properties []listing.Property
	if err := r.db.WithContext(ctx).
		Preload("Photos").
		Preload("Owner").
		Order("created_at DESC").
		Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

// FindByOwnerUsername returns the properties whose owner has the given
// username. The username is the human-facing ownership key, so the filter
// goes through a join rather than a resolved owner id.
func (r *GormPropertyRepository) FindByOwnerUsername(ctx context.Context, username string) ([]listing.Property, error) {
	var properties []listing.Property
	if err := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = properties.owner_id").
		Where("users.username = ?", username).
		Preload("Photos").
		Preload("Owner").
		Order("properties.created_at DESC").
		Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

// FindForHome returns at most limit available properties, newest first.
// Only main-flagged photos are loaded; if several carry the flag the
// projection later picks the first in storage order.
func (r *GormPropertyRepository) FindForHome(ctx context.Context, limit int) ([]listing.Property, error) {
	var properties []listing.Property
	if err := r.db.WithContext(ctx).
		Where("status = ?", listing.PropertyStatusAvailable).
		Order("created_at DESC").
		Limit(limit).
		Preload("Photos", "is_main = ?", true).
		Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

// ExistsByID reports whether a property with the given ID exists
func (r *GormPropertyRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&listing.Property{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateWithPhotos inserts the property and its photos as one atomic unit.
// A photo insert failure rolls back the property insert.
func (r *GormPropertyRepository) CreateWithPhotos(ctx context.Context, property *listing.Property, photos []*listing.PropertyPhoto) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(property).Error; err != nil {
			return err
		}
		if len(photos) > 0 {
			if err := tx.Create(photos).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateWithPhotos writes the property's scalar columns and appends the
// given photos in one transaction. Existing photo rows are untouched.
func (r *GormPropertyRepository) UpdateWithPhotos(ctx context.Context, property *listing.Property, photos []*listing.PropertyPhoto) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Select("*") forces zero-valued columns (omitted coordinates,
		// cleared flags) to be written too
		result := tx.Model(&listing.Property{}).
			Where("id = ?", property.ID).
			Select("*").
			Omit("id", "created_at", "owner_id", clause.Associations).
			Updates(property)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		if len(photos) > 0 {
			if err := tx.Create(photos).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the property; the schema's cascade rules remove its
// photos and favorites
func (r *GormPropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&listing.Property{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormPropertyPhotoRepository implements listing.PropertyPhotoRepository
// using GORM
type GormPropertyPhotoRepository struct {
	db *gorm.DB
}

// NewGormPropertyPhotoRepository creates a new GormPropertyPhotoRepository
func NewGormPropertyPhotoRepository(db *gorm.DB) *GormPropertyPhotoRepository {
	return &GormPropertyPhotoRepository{db: db}
}

// Save inserts a photo row
func (r *GormPropertyPhotoRepository) Save(ctx context.Context, photo *listing.PropertyPhoto) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

// FindByProperty returns all photos of a property
func (r *GormPropertyPhotoRepository) FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]listing.PropertyPhoto, error) {
	var photos []listing.PropertyPhoto
	if err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("created_at ASC").
		Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}
