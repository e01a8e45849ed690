package listing

import (
	"github.com/google/uuid"
	"github.com/imovelliz/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeProperty = "Property"

// Event type constants
const (
	EventTypePropertyCreated = "PropertyCreated"
	EventTypePropertyUpdated = "PropertyUpdated"
	EventTypePropertyDeleted = "PropertyDeleted"
)

// PropertyCreatedEvent is published when a new property is listed
type PropertyCreatedEvent struct {
	shared.BaseDomainEvent
	PropertyID uuid.UUID      `json:"property_id"`
	Title      string         `json:"title"`
	City       string         `json:"city"`
	Status     PropertyStatus `json:"status"`
	OwnerID    uuid.UUID      `json:"owner_id"`
}

// NewPropertyCreatedEvent creates a new PropertyCreatedEvent
func NewPropertyCreatedEvent(property *Property) *PropertyCreatedEvent {
	return &PropertyCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePropertyCreated, AggregateTypeProperty, property.ID),
		PropertyID:      property.ID,
		Title:           property.Title,
		City:            property.City,
		Status:          property.Status,
		OwnerID:         property.OwnerID,
	}
}

// PropertyUpdatedEvent is published when a property's attributes change
type PropertyUpdatedEvent struct {
	shared.BaseDomainEvent
	PropertyID uuid.UUID      `json:"property_id"`
	Title      string         `json:"title"`
	Status     PropertyStatus `json:"status"`
}

// NewPropertyUpdatedEvent creates a new PropertyUpdatedEvent
func NewPropertyUpdatedEvent(property *Property) *PropertyUpdatedEvent {
	return &PropertyUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePropertyUpdated, AggregateTypeProperty, property.ID),
		PropertyID:      property.ID,
		Title:           property.Title,
		Status:          property.Status,
	}
}

// PropertyDeletedEvent is published when a property is removed
type PropertyDeletedEvent struct {
	shared.BaseDomainEvent
	PropertyID uuid.UUID `json:"property_id"`
}

// NewPropertyDeletedEvent creates a new PropertyDeletedEvent
func NewPropertyDeletedEvent(propertyID uuid.UUID) *PropertyDeletedEvent {
	return &PropertyDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePropertyDeleted, AggregateTypeProperty, propertyID),
		PropertyID:      propertyID,
	}
}
