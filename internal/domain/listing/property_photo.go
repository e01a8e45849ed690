package listing

import (
	"strings"

	"github.com/google/uuid"
	"github.com/imovelliz/backend/internal/domain/shared"
)

// PropertyPhoto represents a photo attached to a property listing.
// The URL points at the stored file; the relational store never holds
// the file bytes themselves.
type PropertyPhoto struct {
	shared.BaseEntity
	URL        string    `gorm:"type:varchar(500);not null"`
	IsMain     bool      `gorm:"not null;default:false"`
	PropertyID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (PropertyPhoto) TableName() string {
	return "property_photos"
}

// NewPropertyPhoto creates a photo row linked to the given property
func NewPropertyPhoto(propertyID uuid.UUID, url string, isMain bool) (*PropertyPhoto, error) {
	if propertyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROPERTY", "Photo must reference a property")
	}
	if strings.TrimSpace(url) == "" {
		return nil, shared.NewDomainError("INVALID_PHOTO_URL", "Photo URL is required")
	}
	return &PropertyPhoto{
		BaseEntity: shared.NewBaseEntity(),
		URL:        strings.TrimSpace(url),
		IsMain:     isMain,
		PropertyID: propertyID,
	}, nil
}
