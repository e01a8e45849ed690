package listing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProperty(t *testing.T) {
	ownerID := uuid.New()

	t.Run("creates property with valid inputs", func(t *testing.T) {
		property, err := NewProperty(ownerID, "Casa X", "Rua das Flores 10", "Recife", "PE", PropertyTypeHouse)
		require.NoError(t, err)
		require.NotNil(t, property)

		assert.Equal(t, ownerID, property.OwnerID)
		assert.Equal(t, "Casa X", property.Title)
		assert.Equal(t, "Recife", property.City)
		assert.Equal(t, PropertyTypeHouse, property.Type)
		assert.Equal(t, PropertyStatusAvailable, property.Status)
		assert.True(t, property.Price.IsZero())
		assert.Zero(t, property.Latitude)
		assert.Zero(t, property.Longitude)
		assert.NotEmpty(t, property.ID)
	})

	t.Run("trims whitespace from text fields", func(t *testing.T) {
		property, err := NewProperty(ownerID, "  Casa X  ", " Rua A ", " Recife ", " PE ", PropertyTypeHouse)
		require.NoError(t, err)
		assert.Equal(t, "Casa X", property.Title)
		assert.Equal(t, "Rua A", property.Address)
	})

	t.Run("publishes PropertyCreated event", func(t *testing.T) {
		property, err := NewProperty(ownerID, "Casa X", "Rua A", "Recife", "PE", PropertyTypeHouse)
		require.NoError(t, err)

		events := property.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypePropertyCreated, events[0].EventType())

		event, ok := events[0].(*PropertyCreatedEvent)
		require.True(t, ok)
		assert.Equal(t, property.ID, event.PropertyID)
		assert.Equal(t, ownerID, event.OwnerID)
	})

	t.Run("fails with missing owner", func(t *testing.T) {
		_, err := NewProperty(uuid.Nil, "Casa X", "Rua A", "Recife", "PE", PropertyTypeHouse)
		require.Error(t, err)
	})

	t.Run("fails with empty title", func(t *testing.T) {
		_, err := NewProperty(ownerID, "  ", "Rua A", "Recife", "PE", PropertyTypeHouse)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "title")
	})

	t.Run("fails with unknown type", func(t *testing.T) {
		_, err := NewProperty(ownerID, "Casa X", "Rua A", "Recife", "PE", PropertyType("castle"))
		require.Error(t, err)
	})
}

func TestProperty_Update(t *testing.T) {
	ownerID := uuid.New()

	newProperty := func(t *testing.T) *Property {
		property, err := NewProperty(ownerID, "Casa X", "Rua A", "Recife", "PE", PropertyTypeHouse)
		require.NoError(t, err)
		property.ClearDomainEvents()
		return property
	}

	t.Run("replaces mutable scalar fields", func(t *testing.T) {
		property := newProperty(t)

		err := property.Update("Casa Y", "Rua B", "Olinda", "PE", PropertyTypeApartment)
		require.NoError(t, err)

		assert.Equal(t, "Casa Y", property.Title)
		assert.Equal(t, "Olinda", property.City)
		assert.Equal(t, PropertyTypeApartment, property.Type)
	})

	t.Run("never changes the owner", func(t *testing.T) {
		property := newProperty(t)
		require.NoError(t, property.Update("Casa Y", "Rua B", "Olinda", "PE", PropertyTypeApartment))
		assert.Equal(t, ownerID, property.OwnerID)
	})

	t.Run("publishes PropertyUpdated event", func(t *testing.T) {
		property := newProperty(t)
		require.NoError(t, property.Update("Casa Y", "Rua B", "Olinda", "PE", PropertyTypeApartment))

		events := property.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypePropertyUpdated, events[0].EventType())
	})

	t.Run("rejects invalid payloads without mutating", func(t *testing.T) {
		property := newProperty(t)
		err := property.Update("", "Rua B", "Olinda", "PE", PropertyTypeApartment)
		require.Error(t, err)
		assert.Equal(t, "Casa X", property.Title)
	})
}

func TestProperty_Setters(t *testing.T) {
	ownerID := uuid.New()
	property, err := NewProperty(ownerID, "Casa X", "Rua A", "Recife", "PE", PropertyTypeHouse)
	require.NoError(t, err)

	t.Run("SetPrice rejects negative values", func(t *testing.T) {
		assert.Error(t, property.SetPrice(decimal.NewFromInt(-1)))
		assert.NoError(t, property.SetPrice(decimal.NewFromInt(100000)))
		assert.True(t, property.Price.Equal(decimal.NewFromInt(100000)))
	})

	t.Run("SetFeatures rejects negative counts", func(t *testing.T) {
		assert.Error(t, property.SetFeatures(120, -1, 2, 1, true))
		assert.NoError(t, property.SetFeatures(120, 3, 2, 1, true))
		assert.Equal(t, 3, property.Bedrooms)
		assert.True(t, property.Furnished)
	})

	t.Run("SetLocation stores coordinates verbatim", func(t *testing.T) {
		property.SetLocation("50000-000", -8.05, -34.9)
		assert.Equal(t, "50000-000", property.ZipCode)
		assert.InDelta(t, -8.05, property.Latitude, 1e-9)
	})

	t.Run("SetStatus validates the value", func(t *testing.T) {
		assert.Error(t, property.SetStatus(PropertyStatus("archived")))
		assert.NoError(t, property.SetStatus(PropertyStatusSold))
		assert.Equal(t, PropertyStatusSold, property.Status)
	})
}

func TestProperty_MainPhoto(t *testing.T) {
	ownerID := uuid.New()
	property, err := NewProperty(ownerID, "Casa X", "Rua A", "Recife", "PE", PropertyTypeHouse)
	require.NoError(t, err)

	t.Run("returns nil when no photo is flagged", func(t *testing.T) {
		assert.Nil(t, property.MainPhoto())
	})

	t.Run("returns first flagged photo in storage order", func(t *testing.T) {
		first, err := NewPropertyPhoto(property.ID, "http://files.test/uploads/a.jpg", false)
		require.NoError(t, err)
		second, err := NewPropertyPhoto(property.ID, "http://files.test/uploads/b.jpg", true)
		require.NoError(t, err)
		third, err := NewPropertyPhoto(property.ID, "http://files.test/uploads/c.jpg", true)
		require.NoError(t, err)
		property.Photos = []PropertyPhoto{*first, *second, *third}

		main := property.MainPhoto()
		require.NotNil(t, main)
		assert.Equal(t, "http://files.test/uploads/b.jpg", main.URL)
	})
}

func TestNewPropertyPhoto(t *testing.T) {
	t.Run("requires a property reference", func(t *testing.T) {
		_, err := NewPropertyPhoto(uuid.Nil, "http://files.test/uploads/a.jpg", false)
		require.Error(t, err)
	})

	t.Run("requires a URL", func(t *testing.T) {
		_, err := NewPropertyPhoto(uuid.New(), "   ", false)
		require.Error(t, err)
	})
}

func TestNewFavorite(t *testing.T) {
	t.Run("creates favorite for a valid pair", func(t *testing.T) {
		userID, propertyID := uuid.New(), uuid.New()
		favorite, err := NewFavorite(userID, propertyID)
		require.NoError(t, err)
		assert.Equal(t, userID, favorite.UserID)
		assert.Equal(t, propertyID, favorite.PropertyID)
		assert.False(t, favorite.CreatedAt.IsZero())
	})

	t.Run("requires both references", func(t *testing.T) {
		_, err := NewFavorite(uuid.Nil, uuid.New())
		require.Error(t, err)
		_, err = NewFavorite(uuid.New(), uuid.Nil)
		require.Error(t, err)
	})
}
