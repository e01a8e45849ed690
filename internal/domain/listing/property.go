package listing

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/imovelliz/backend/internal/domain/identity"
	"github.com/imovelliz/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PropertyType represents the kind of property being listed
type PropertyType string

const (
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeHouse      PropertyType = "house"
	PropertyTypeCommercial PropertyType = "commercial"
)

// IsValid reports whether the property type is one of the known values
func (t PropertyType) IsValid() bool {
	switch t {
	case PropertyTypeApartment, PropertyTypeHouse, PropertyTypeCommercial:
		return true
	}
	return false
}

// PropertyStatus represents the listing status of a property
type PropertyStatus string

const (
	PropertyStatusAvailable   PropertyStatus = "available"
	PropertyStatusSold        PropertyStatus = "sold"
	PropertyStatusRented      PropertyStatus = "rented"
	PropertyStatusUnderReview PropertyStatus = "under_review"
)

// IsValid reports whether the property status is one of the known values
func (s PropertyStatus) IsValid() bool {
	switch s {
	case PropertyStatusAvailable, PropertyStatusSold, PropertyStatusRented, PropertyStatusUnderReview:
		return true
	}
	return false
}

// Property represents a real-estate listing.
// It is the aggregate root for property-related operations; photos belong
// to exactly one property and are managed through it.
type Property struct {
	shared.BaseAggregateRoot
	Title         string          `gorm:"type:varchar(200);not null"`
	Description   string          `gorm:"type:text"`
	Address       string          `gorm:"type:varchar(300);not null"`
	City          string          `gorm:"type:varchar(100);not null"`
	State         string          `gorm:"type:varchar(100);not null"`
	ZipCode       string          `gorm:"type:varchar(20)"`
	Latitude      float64         `gorm:"not null;default:0"`
	Longitude     float64         `gorm:"not null;default:0"`
	Type          PropertyType    `gorm:"type:varchar(20);not null"`
	Status        PropertyStatus  `gorm:"type:varchar(20);not null;default:'available';index"`
	Price         decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Area          float64         `gorm:"not null;default:0"`
	Bedrooms      int             `gorm:"not null;default:0"`
	Bathrooms     int             `gorm:"not null;default:0"`
	ParkingSpaces int             `gorm:"not null;default:0"`
	Furnished     bool            `gorm:"not null;default:false"`
	OwnerID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Owner         *identity.User  `gorm:"foreignKey:OwnerID"`
	Photos        []PropertyPhoto `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Property) TableName() string {
	return "properties"
}

// NewProperty creates a new property listing owned by the given user.
// The owner is assigned at creation and is immutable afterwards.
func NewProperty(ownerID uuid.UUID, title, address, city, state string, propertyType PropertyType) (*Property, error) {
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Property owner is required")
	}
	if err := validateRequiredText("title", title, 200); err != nil {
		return nil, err
	}
	if err := validateRequiredText("address", address, 300); err != nil {
		return nil, err
	}
	if err := validateRequiredText("city", city, 100); err != nil {
		return nil, err
	}
	if err := validateRequiredText("state", state, 100); err != nil {
		return nil, err
	}
	if !propertyType.IsValid() {
		return nil, shared.NewDomainError("INVALID_PROPERTY_TYPE", "Invalid property type")
	}

	property := &Property{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             strings.TrimSpace(title),
		Address:           strings.TrimSpace(address),
		City:              strings.TrimSpace(city),
		State:             strings.TrimSpace(state),
		Type:              propertyType,
		Status:            PropertyStatusAvailable,
		Price:             decimal.Zero,
		OwnerID:           ownerID,
	}

	property.AddDomainEvent(NewPropertyCreatedEvent(property))

	return property, nil
}

// SetStatus changes the listing status
func (p *Property) SetStatus(status PropertyStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_PROPERTY_STATUS", "Invalid property status")
	}
	p.Status = status
	p.UpdatedAt = time.Now()
	return nil
}

// SetDescription sets the free-text description
func (p *Property) SetDescription(description string) {
	p.Description = description
	p.UpdatedAt = time.Now()
}

// SetLocation sets the optional location attributes. Coordinates of a
// listing that never supplied any are stored as zero, not null.
func (p *Property) SetLocation(zipCode string, latitude, longitude float64) {
	p.ZipCode = strings.TrimSpace(zipCode)
	p.Latitude = latitude
	p.Longitude = longitude
	p.UpdatedAt = time.Now()
}

// SetPrice sets the asking price
func (p *Property) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	p.Price = price
	p.UpdatedAt = time.Now()
	return nil
}

// SetFeatures sets the numeric and boolean listing attributes
func (p *Property) SetFeatures(area float64, bedrooms, bathrooms, parkingSpaces int, furnished bool) error {
	if area < 0 {
		return shared.NewDomainError("INVALID_AREA", "Area cannot be negative")
	}
	if bedrooms < 0 || bathrooms < 0 || parkingSpaces < 0 {
		return shared.NewDomainError("INVALID_FEATURES", "Room counts cannot be negative")
	}
	p.Area = area
	p.Bedrooms = bedrooms
	p.Bathrooms = bathrooms
	p.ParkingSpaces = parkingSpaces
	p.Furnished = furnished
	p.UpdatedAt = time.Now()
	return nil
}

// Update replaces the mutable scalar attributes of the listing. The update
// workflow re-sends the full payload, so every field is written; it never
// touches the owner or the existing photo set.
func (p *Property) Update(title, address, city, state string, propertyType PropertyType) error {
	if err := validateRequiredText("title", title, 200); err != nil {
		return err
	}
	if err := validateRequiredText("address", address, 300); err != nil {
		return err
	}
	if err := validateRequiredText("city", city, 100); err != nil {
		return err
	}
	if err := validateRequiredText("state", state, 100); err != nil {
		return err
	}
	if !propertyType.IsValid() {
		return shared.NewDomainError("INVALID_PROPERTY_TYPE", "Invalid property type")
	}

	p.Title = strings.TrimSpace(title)
	p.Address = strings.TrimSpace(address)
	p.City = strings.TrimSpace(city)
	p.State = strings.TrimSpace(state)
	p.Type = propertyType
	p.UpdatedAt = time.Now()

	p.AddDomainEvent(NewPropertyUpdatedEvent(p))

	return nil
}

// MainPhoto returns the photo flagged as main, or nil when none is.
// When several photos carry the flag the first in storage order wins;
// reads treat the flag as a projection hint, not a uniqueness invariant.
func (p *Property) MainPhoto() *PropertyPhoto {
	for i := range p.Photos {
		if p.Photos[i].IsMain {
			return &p.Photos[i]
		}
	}
	return nil
}

func validateRequiredText(field, value string, maxLen int) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_"+strings.ToUpper(field), "Property "+field+" is required")
	}
	if len(trimmed) > maxLen {
		return shared.NewDomainError("INVALID_"+strings.ToUpper(field), "Property "+field+" is too long")
	}
	return nil
}
