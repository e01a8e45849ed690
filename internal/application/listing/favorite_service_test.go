package listing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/imovelliz/backend/internal/domain/listing"
	"github.com/imovelliz/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type favoriteServiceFixture struct {
	service      *FavoriteService
	favoriteRepo *MockFavoriteRepository
	propertyRepo *MockPropertyRepository
	userRepo     *MockUserRepository
}

func newFavoriteServiceFixture() *favoriteServiceFixture {
	favoriteRepo := new(MockFavoriteRepository)
	propertyRepo := new(MockPropertyRepository)
	userRepo := new(MockUserRepository)
	return &favoriteServiceFixture{
		service:      NewFavoriteService(favoriteRepo, propertyRepo, userRepo),
		favoriteRepo: favoriteRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
	}
}

func TestFavoriteService_Add(t *testing.T) {
	ctx := context.Background()
	userID, propertyID := uuid.New(), uuid.New()

	t.Run("favorites an existing pair once", func(t *testing.T) {
		f := newFavoriteServiceFixture()
		f.propertyRepo.On("ExistsByID", ctx, propertyID).Return(true, nil)
		f.userRepo.On("ExistsByID", ctx, userID).Return(true, nil)
		f.favoriteRepo.On("Exists", ctx, userID, propertyID).Return(false, nil)
		f.favoriteRepo.On("Save", ctx, mock.AnythingOfType("*listing.Favorite")).Return(nil)

		response, err := f.service.Add(ctx, userID, propertyID)
		require.NoError(t, err)
		assert.Equal(t, userID, response.UserID)
		assert.Equal(t, propertyID, response.PropertyID)
		f.favoriteRepo.AssertExpectations(t)
	})

	t.Run("fails with NotFound when the property does not exist", func(t *testing.T) {
		f := newFavoriteServiceFixture()
		f.propertyRepo.On("ExistsByID", ctx, propertyID).Return(false, nil)

		_, err := f.service.Add(ctx, userID, propertyID)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "Imóvel não encontrado", domainErr.Message)
		f.favoriteRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("fails with NotFound when the user does not exist", func(t *testing.T) {
		f := newFavoriteServiceFixture()
		f.propertyRepo.On("ExistsByID", ctx, propertyID).Return(true, nil)
		f.userRepo.On("ExistsByID", ctx, userID).Return(false, nil)

		_, err := f.service.Add(ctx, userID, propertyID)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "Usuário não encontrado", domainErr.Message)
	})

	t.Run("fails with Conflict when the pair is already favorited", func(t *testing.T) {
		f := newFavoriteServiceFixture()
		f.propertyRepo.On("ExistsByID", ctx, propertyID).Return(true, nil)
		f.userRepo.On("ExistsByID", ctx, userID).Return(true, nil)
		f.favoriteRepo.On("Exists", ctx, userID, propertyID).Return(true, nil)

		_, err := f.service.Add(ctx, userID, propertyID)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_FAVORITED", domainErr.Code)
		assert.Equal(t, "Este imóvel já está favoritado", domainErr.Message)
		f.favoriteRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestFavoriteService_List(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("returns favorites with at most the main photo per property", func(t *testing.T) {
		f := newFavoriteServiceFixture()
		property := newTestProperty(t, uuid.New())
		plain, err := listing.NewPropertyPhoto(property.ID, "http://files.test/uploads/a.jpg", false)
		require.NoError(t, err)
		main, err := listing.NewPropertyPhoto(property.ID, "http://files.test/uploads/b.jpg", true)
		require.NoError(t, err)
		property.Photos = []listing.PropertyPhoto{*plain, *main}

		favorite, err := listing.NewFavorite(userID, property.ID)
		require.NoError(t, err)
		favorite.Property = property

		f.userRepo.On("ExistsByID", ctx, userID).Return(true, nil)
		f.favoriteRepo.On("FindByUser", ctx, userID).Return([]listing.Favorite{*favorite}, nil)

		responses, err := f.service.List(ctx, userID)
		require.NoError(t, err)
		require.Len(t, responses, 1)
		require.NotNil(t, responses[0].Property)
		require.Len(t, responses[0].Property.Photos, 1)
		assert.Equal(t, "http://files.test/uploads/b.jpg", responses[0].Property.Photos[0].URL)
	})

	t.Run("fails with NotFound for an unknown user", func(t *testing.T) {
		f := newFavoriteServiceFixture()
		f.userRepo.On("ExistsByID", ctx, userID).Return(false, nil)

		_, err := f.service.List(ctx, userID)
		require.Error(t, err)
		f.favoriteRepo.AssertNotCalled(t, "FindByUser", mock.Anything, mock.Anything)
	})
}

func TestFavoriteService_Remove(t *testing.T) {
	ctx := context.Background()
	userID, propertyID := uuid.New(), uuid.New()

	t.Run("removes an existing favorite", func(t *testing.T) {
		f := newFavoriteServiceFixture()
		f.favoriteRepo.On("Delete", ctx, userID, propertyID).Return(nil)

		require.NoError(t, f.service.Remove(ctx, userID, propertyID))
	})

	t.Run("fails with NotFound when the pair was never favorited", func(t *testing.T) {
		f := newFavoriteServiceFixture()
		f.favoriteRepo.On("Delete", ctx, userID, propertyID).Return(shared.ErrNotFound)

		err := f.service.Remove(ctx, userID, propertyID)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "Favorito não encontrado", domainErr.Message)
	})
}
