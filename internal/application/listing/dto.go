package listing

import (
	"time"

	"github.com/google/uuid"
	"github.com/imovelliz/backend/internal/domain/identity"
	"github.com/imovelliz/backend/internal/domain/listing"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Property DTOs
// =============================================================================

// CreatePropertyRequest represents a request to create a new property.
// It arrives as the field part of a multipart form, so form tags are
// bound alongside json ones.
type CreatePropertyRequest struct {
	Title         string          `form:"title" json:"title" binding:"required,min=1,max=200"`
	Description   string          `form:"description" json:"description"`
	Address       string          `form:"address" json:"address" binding:"required,min=1,max=300"`
	City          string          `form:"city" json:"city" binding:"required,min=1,max=100"`
	State         string          `form:"state" json:"state" binding:"required,min=1,max=100"`
	ZipCode       string          `form:"zip_code" json:"zip_code" binding:"max=20"`
	Latitude      float64         `form:"latitude" json:"latitude"`
	Longitude     float64         `form:"longitude" json:"longitude"`
	Type          string          `form:"type" json:"type" binding:"required,oneof=apartment house commercial"`
	Price         decimal.Decimal `form:"price" json:"price"`
	Area          float64         `form:"area" json:"area"`
	Bedrooms      int             `form:"bedrooms" json:"bedrooms"`
	Bathrooms     int             `form:"bathrooms" json:"bathrooms"`
	ParkingSpaces int             `form:"parking_spaces" json:"parking_spaces"`
	Furnished     bool            `form:"furnished" json:"furnished"`
}

// UpdatePropertyRequest represents a request to update a property. The
// whole payload is re-sent on every update; fields left out fall back to
// their zero value, latitude and longitude included.
type UpdatePropertyRequest struct {
	Title         string          `form:"title" json:"title" binding:"required,min=1,max=200"`
	Description   string          `form:"description" json:"description"`
	Address       string          `form:"address" json:"address" binding:"required,min=1,max=300"`
	City          string          `form:"city" json:"city" binding:"required,min=1,max=100"`
	State         string          `form:"state" json:"state" binding:"required,min=1,max=100"`
	ZipCode       string          `form:"zip_code" json:"zip_code" binding:"max=20"`
	Latitude      float64         `form:"latitude" json:"latitude"`
	Longitude     float64         `form:"longitude" json:"longitude"`
	Type          string          `form:"type" json:"type" binding:"required,oneof=apartment house commercial"`
	Status        string          `form:"status" json:"status" binding:"omitempty,oneof=available sold rented under_review"`
	Price         decimal.Decimal `form:"price" json:"price"`
	Area          float64         `form:"area" json:"area"`
	Bedrooms      int             `form:"bedrooms" json:"bedrooms"`
	Bathrooms     int             `form:"bathrooms" json:"bathrooms"`
	ParkingSpaces int             `form:"parking_spaces" json:"parking_spaces"`
	Furnished     bool            `form:"furnished" json:"furnished"`
}

// AddPhotoRequest represents a request to attach a photo row directly
type AddPhotoRequest struct {
	PropertyID uuid.UUID `json:"property_id" binding:"required"`
	URL        string    `json:"url" binding:"required,url,max=500"`
	IsMain     bool      `json:"is_main"`
}

// PhotoResponse represents a property photo in API responses
type PhotoResponse struct {
	ID         uuid.UUID `json:"id"`
	URL        string    `json:"url"`
	IsMain     bool      `json:"is_main"`
	PropertyID uuid.UUID `json:"property_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// OwnerResponse represents a property owner in API responses
type OwnerResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
}

// PropertyResponse represents a property in API responses
type PropertyResponse struct {
	ID            uuid.UUID       `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Address       string          `json:"address"`
	City          string          `json:"city"`
	State         string          `json:"state"`
	ZipCode       string          `json:"zip_code"`
	Latitude      float64         `json:"latitude"`
	Longitude     float64         `json:"longitude"`
	Type          string          `json:"type"`
	Status        string          `json:"status"`
	Price         decimal.Decimal `json:"price"`
	Area          float64         `json:"area"`
	Bedrooms      int             `json:"bedrooms"`
	Bathrooms     int             `json:"bathrooms"`
	ParkingSpaces int             `json:"parking_spaces"`
	Furnished     bool            `json:"furnished"`
	Owner         *OwnerResponse  `json:"owner,omitempty"`
	Photos        []PhotoResponse `json:"photos"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// HomePropertyResponse is the reduced projection served on the public
// home listing: summary fields plus at most the main photo.
type HomePropertyResponse struct {
	ID            uuid.UUID       `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Address       string          `json:"address"`
	City          string          `json:"city"`
	State         string          `json:"state"`
	Price         decimal.Decimal `json:"price"`
	Area          float64         `json:"area"`
	Bedrooms      int             `json:"bedrooms"`
	ParkingSpaces int             `json:"parking_spaces"`
	Photos        []PhotoResponse `json:"photos"`
}

// =============================================================================
// Favorite DTOs
// =============================================================================

// CreateFavoriteRequest represents a request to favorite a property
type CreateFavoriteRequest struct {
	PropertyID uuid.UUID `json:"property_id" binding:"required"`
}

// FavoriteResponse represents a favorite in API responses, carrying the
// favorited property with at most its main photo.
type FavoriteResponse struct {
	UserID     uuid.UUID         `json:"user_id"`
	PropertyID uuid.UUID         `json:"property_id"`
	Property   *PropertyResponse `json:"property,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

// =============================================================================
// Converters
// =============================================================================

// ToPhotoResponse converts a PropertyPhoto entity to a response DTO
func ToPhotoResponse(photo *listing.PropertyPhoto) PhotoResponse {
	return PhotoResponse{
		ID:         photo.ID,
		URL:        photo.URL,
		IsMain:     photo.IsMain,
		PropertyID: photo.PropertyID,
		CreatedAt:  photo.CreatedAt,
	}
}

// ToOwnerResponse converts a User entity to an owner response DTO
func ToOwnerResponse(user *identity.User) *OwnerResponse {
	if user == nil {
		return nil
	}
	return &OwnerResponse{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Email:    user.Email,
	}
}

// ToPropertyResponse converts a Property entity to a response DTO
func ToPropertyResponse(property *listing.Property) PropertyResponse {
	photos := make([]PhotoResponse, 0, len(property.Photos))
	for i := range property.Photos {
		photos = append(photos, ToPhotoResponse(&property.Photos[i]))
	}
	return PropertyResponse{
		ID:            property.ID,
		Title:         property.Title,
		Description:   property.Description,
		Address:       property.Address,
		City:          property.City,
		State:         property.State,
		ZipCode:       property.ZipCode,
		Latitude:      property.Latitude,
		Longitude:     property.Longitude,
		Type:          string(property.Type),
		Status:        string(property.Status),
		Price:         property.Price,
		Area:          property.Area,
		Bedrooms:      property.Bedrooms,
		Bathrooms:     property.Bathrooms,
		ParkingSpaces: property.ParkingSpaces,
		Furnished:     property.Furnished,
		Owner:         ToOwnerResponse(property.Owner),
		Photos:        photos,
		CreatedAt:     property.CreatedAt,
		UpdatedAt:     property.UpdatedAt,
	}
}

// ToPropertyResponses converts a slice of Property entities
func ToPropertyResponses(properties []listing.Property) []PropertyResponse {
	responses := make([]PropertyResponse, 0, len(properties))
	for i := range properties {
		responses = append(responses, ToPropertyResponse(&properties[i]))
	}
	return responses
}

// ToHomePropertyResponse converts a Property to the home projection,
// keeping only the main photo when one is flagged.
func ToHomePropertyResponse(property *listing.Property) HomePropertyResponse {
	photos := make([]PhotoResponse, 0, 1)
	if main := property.MainPhoto(); main != nil {
		photos = append(photos, ToPhotoResponse(main))
	}
	return HomePropertyResponse{
		ID:            property.ID,
		Title:         property.Title,
		Description:   property.Description,
		Address:       property.Address,
		City:          property.City,
		State:         property.State,
		Price:         property.Price,
		Area:          property.Area,
		Bedrooms:      property.Bedrooms,
		ParkingSpaces: property.ParkingSpaces,
		Photos:        photos,
	}
}

// ToHomePropertyResponses converts a slice of Property entities to the
// home projection
func ToHomePropertyResponses(properties []listing.Property) []HomePropertyResponse {
	responses := make([]HomePropertyResponse, 0, len(properties))
	for i := range properties {
		responses = append(responses, ToHomePropertyResponse(&properties[i]))
	}
	return responses
}

// ToFavoriteResponse converts a Favorite entity to a response DTO. The
// favorited property is trimmed to at most its main photo when loaded.
func ToFavoriteResponse(favorite *listing.Favorite) FavoriteResponse {
	response := FavoriteResponse{
		UserID:     favorite.UserID,
		PropertyID: favorite.PropertyID,
		CreatedAt:  favorite.CreatedAt,
	}
	if favorite.Property != nil {
		property := ToPropertyResponse(favorite.Property)
		if main := favorite.Property.MainPhoto(); main != nil {
			property.Photos = []PhotoResponse{ToPhotoResponse(main)}
		} else {
			property.Photos = []PhotoResponse{}
		}
		response.Property = &property
	}
	return response
}
