package listing

import (
	"time"

	"github.com/google/uuid"
	"github.com/imovelliz/backend/internal/domain/shared"
)

// Favorite marks a property as favorited by a user. Its identity is the
// (user, property) pair; the composite primary key is the actual guard
// against duplicate favorites under concurrent requests, the service-level
// existence check only produces the friendlier error.
type Favorite struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	PropertyID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt  time.Time
	Property   *Property `gorm:"foreignKey:PropertyID"`
}

// TableName returns the table name for GORM
func (Favorite) TableName() string {
	return "favorites"
}

// NewFavorite creates a favorite for the given pair
func NewFavorite(userID, propertyID uuid.UUID) (*Favorite, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "Favorite must reference a user")
	}
	if propertyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROPERTY", "Favorite must reference a property")
	}
	return &Favorite{
		UserID:     userID,
		PropertyID: propertyID,
		CreatedAt:  time.Now(),
	}, nil
}
