package listing

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/imovelliz/backend/internal/domain/identity"
	"github.com/imovelliz/backend/internal/domain/listing"
	"github.com/imovelliz/backend/internal/domain/shared"
)

// HomePageSize is the number of properties served on the public home listing
const HomePageSize = 6

// PropertyService orchestrates the property write and read workflows
type PropertyService struct {
	propertyRepo listing.PropertyRepository
	photoRepo    listing.PropertyPhotoRepository
	userRepo     identity.UserRepository
	intake       *UploadIntake
	cache        HomeCache
	eventBus     shared.EventPublisher
}

// NewPropertyService creates a new PropertyService
func NewPropertyService(
	propertyRepo listing.PropertyRepository,
	photoRepo listing.PropertyPhotoRepository,
	userRepo identity.UserRepository,
	intake *UploadIntake,
	cache HomeCache,
	eventBus shared.EventPublisher,
) *PropertyService {
	return &PropertyService{
		propertyRepo: propertyRepo,
		photoRepo:    photoRepo,
		userRepo:     userRepo,
		intake:       intake,
		cache:        cache,
		eventBus:     eventBus,
	}
}

// Create persists a new property owned by the user with the given
// username, stores the attached files and links them as photos. The
// property and photo inserts happen in one transaction; a photo insert
// failure leaves no property row behind.
func (s *PropertyService) Create(ctx context.Context, ownerUsername string, req CreatePropertyRequest, files []UploadFile) (*PropertyResponse, error) {
	if err := s.intake.ValidateBatch(files); err != nil {
		return nil, err
	}

	owner, err := s.userRepo.FindByUsername(ctx, ownerUsername)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("USER_NOT_FOUND", "Usuário não encontrado")
		}
		return nil, err
	}

	property, err := listing.NewProperty(owner.ID, req.Title, req.Address, req.City, req.State, listing.PropertyType(req.Type))
	if err != nil {
		return nil, err
	}
	property.SetDescription(req.Description)
	property.SetLocation(req.ZipCode, req.Latitude, req.Longitude)
	if err := property.SetPrice(req.Price); err != nil {
		return nil, err
	}
	if err := property.SetFeatures(req.Area, req.Bedrooms, req.Bathrooms, req.ParkingSpaces, req.Furnished); err != nil {
		return nil, err
	}

	stored, err := s.intake.StoreBatch(ctx, files)
	if err != nil {
		return nil, err
	}
	photos := make([]*listing.PropertyPhoto, 0, len(stored))
	for i, file := range stored {
		photo, err := listing.NewPropertyPhoto(property.ID, file.URL, i == 0)
		if err != nil {
			return nil, err
		}
		photos = append(photos, photo)
	}

	if err := s.propertyRepo.CreateWithPhotos(ctx, property, photos); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, property)

	property.Owner = owner
	property.Photos = make([]listing.PropertyPhoto, 0, len(photos))
	for _, photo := range photos {
		property.Photos = append(property.Photos, *photo)
	}

	response := ToPropertyResponse(property)
	return &response, nil
}

// Update rewrites all mutable scalar fields of a property from the full
// payload and appends photos for any newly attached files. Fields absent
// from the payload land as their zero value; latitude and longitude of a
// payload that omits them are stored as zero, not preserved.
func (s *PropertyService) Update(ctx context.Context, id uuid.UUID, req UpdatePropertyRequest, files []UploadFile) (*PropertyResponse, error) {
	if err := s.intake.ValidateBatch(files); err != nil {
		return nil, err
	}

	property, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("PROPERTY_NOT_FOUND", "Imóvel não encontrado")
		}
		return nil, err
	}

	if err := property.Update(req.Title, req.Address, req.City, req.State, listing.PropertyType(req.Type)); err != nil {
		return nil, err
	}
	property.SetDescription(req.Description)
	property.SetLocation(req.ZipCode, req.Latitude, req.Longitude)
	if err := property.SetPrice(req.Price); err != nil {
		return nil, err
	}
	if err := property.SetFeatures(req.Area, req.Bedrooms, req.Bathrooms, req.ParkingSpaces, req.Furnished); err != nil {
		return nil, err
	}
	if req.Status != "" {
		if err := property.SetStatus(listing.PropertyStatus(req.Status)); err != nil {
			return nil, err
		}
	}

	stored, err := s.intake.StoreBatch(ctx, files)
	if err != nil {
		return nil, err
	}
	photos := make([]*listing.PropertyPhoto, 0, len(stored))
	for _, file := range stored {
		photo, err := listing.NewPropertyPhoto(property.ID, file.URL, false)
		if err != nil {
			return nil, err
		}
		photos = append(photos, photo)
	}

	if err := s.propertyRepo.UpdateWithPhotos(ctx, property, photos); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, property)

	for _, photo := range photos {
		property.Photos = append(property.Photos, *photo)
	}

	response := ToPropertyResponse(property)
	return &response, nil
}

// List returns every property with photos and owner
func (s *PropertyService) List(ctx context.Context) ([]PropertyResponse, error) {
	properties, err := s.propertyRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToPropertyResponses(properties), nil
}

// ListByOwner returns the properties owned by the user with the given
// username
func (s *PropertyService) ListByOwner(ctx context.Context, username string) ([]PropertyResponse, error) {
	properties, err := s.propertyRepo.FindByOwnerUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return ToPropertyResponses(properties), nil
}

// Home returns the public home projection: at most six available
// properties, newest first, main photo only. The result is served from
// cache when present; property events invalidate it.
func (s *PropertyService) Home(ctx context.Context) ([]HomePropertyResponse, error) {
	if cached, ok := s.cache.Get(ctx); ok {
		return cached, nil
	}

	properties, err := s.propertyRepo.FindForHome(ctx, HomePageSize)
	if err != nil {
		return nil, err
	}
	responses := ToHomePropertyResponses(properties)
	s.cache.Set(ctx, responses)
	return responses, nil
}

// Get returns a single property by ID with photos and owner
func (s *PropertyService) Get(ctx context.Context, id uuid.UUID) (*PropertyResponse, error) {
	property, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("PROPERTY_NOT_FOUND", "Imóvel não encontrado")
		}
		return nil, err
	}
	response := ToPropertyResponse(property)
	return &response, nil
}

// Delete removes a property; the schema's cascade rules take its photos
// and favorites with it
func (s *PropertyService) Delete(ctx context.Context, id uuid.UUID) error {
	exists, err := s.propertyRepo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return shared.NewDomainError("PROPERTY_NOT_FOUND", "Imóvel não encontrado")
	}
	if err := s.propertyRepo.Delete(ctx, id); err != nil {
		return err
	}
	// delivery is best effort, the row is already gone
	_ = s.eventBus.Publish(ctx, listing.NewPropertyDeletedEvent(id))
	return nil
}

// AddPhoto attaches a photo row directly to an existing property
func (s *PropertyService) AddPhoto(ctx context.Context, req AddPhotoRequest) (*PhotoResponse, error) {
	exists, err := s.propertyRepo.ExistsByID(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, shared.NewDomainError("PROPERTY_NOT_FOUND", "Imóvel não encontrado")
	}

	photo, err := listing.NewPropertyPhoto(req.PropertyID, req.URL, req.IsMain)
	if err != nil {
		return nil, err
	}
	if err := s.photoRepo.Save(ctx, photo); err != nil {
		return nil, err
	}

	response := ToPhotoResponse(photo)
	return &response, nil
}

func (s *PropertyService) publishEvents(ctx context.Context, property *listing.Property) {
	events := property.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	// delivery is best effort, the transaction has already committed
	_ = s.eventBus.Publish(ctx, events...)
	property.ClearDomainEvents()
}
