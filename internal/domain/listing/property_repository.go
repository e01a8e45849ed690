package listing

import (
	"context"

	"github.com/google/uuid"
)

// PropertyRepository defines persistence operations for properties.
// Read methods return properties with their photo set and owner loaded
// unless documented otherwise.
type PropertyRepository interface {
	// FindByID finds a property by its ID with photos and owner
	FindByID(ctx context.Context, id uuid.UUID) (*Property, error)

	// FindAll returns every property with photos and owner
	FindAll(ctx context.Context) ([]Property, error)

	// FindByOwnerUsername returns the properties whose owner has the
	// given username
	FindByOwnerUsername(ctx context.Context, username string) ([]Property, error)

	// FindForHome returns at most limit available properties, newest
	// first, with only main-flagged photos loaded
	FindForHome(ctx context.Context, limit int) ([]Property, error)

	// ExistsByID reports whether a property with the given ID exists
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// CreateWithPhotos inserts the property and its photos as one atomic
	// unit; a photo insert failure rolls back the property insert
	CreateWithPhotos(ctx context.Context, property *Property, photos []*PropertyPhoto) error

	// UpdateWithPhotos writes the property's scalar columns and appends
	// the given photos in one transaction; existing photos are untouched
	UpdateWithPhotos(ctx context.Context, property *Property, photos []*PropertyPhoto) error

	// Delete removes the property; photos and favorites go with it via
	// the schema's cascade rules
	Delete(ctx context.Context, id uuid.UUID) error
}

// PropertyPhotoRepository defines persistence operations for standalone
// photo rows, used by the direct photo-attach endpoint
type PropertyPhotoRepository interface {
	// Save inserts a photo row
	Save(ctx context.Context, photo *PropertyPhoto) error

	// FindByProperty returns all photos of a property
	FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]PropertyPhoto, error)
}

// FavoriteRepository defines persistence operations for favorites
type FavoriteRepository interface {
	// Exists reports whether the (user, property) pair is favorited
	Exists(ctx context.Context, userID, propertyID uuid.UUID) (bool, error)

	// FindByUser returns a user's favorites, each with its property and
	// at most one main-flagged photo loaded
	FindByUser(ctx context.Context, userID uuid.UUID) ([]Favorite, error)

	// Save inserts the favorite pair
	Save(ctx context.Context, favorite *Favorite) error

	// Delete removes the favorite pair; returns shared.ErrNotFound if
	// the pair does not exist
	Delete(ctx context.Context, userID, propertyID uuid.UUID) error
}
