package listing

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/imovelliz/backend/internal/domain/identity"
	"github.com/imovelliz/backend/internal/domain/listing"
	"github.com/imovelliz/backend/internal/domain/shared"
)

// FavoriteService handles the favorites workflow: an existence toggle over
// the (user, property) pair. The composite primary key in the database is
// the actual duplicate guard; the existence checks here exist to return
// friendly errors.
type FavoriteService struct {
	favoriteRepo listing.FavoriteRepository
	propertyRepo listing.PropertyRepository
	userRepo     identity.UserRepository
}

// NewFavoriteService creates a new FavoriteService
func NewFavoriteService(
	favoriteRepo listing.FavoriteRepository,
	propertyRepo listing.PropertyRepository,
	userRepo identity.UserRepository,
) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
	}
}

// Add favorites a property for a user. Both sides of the pair must exist
// and the pair must not already be favorited.
func (s *FavoriteService) Add(ctx context.Context, userID, propertyID uuid.UUID) (*FavoriteResponse, error) {
	propertyExists, err := s.propertyRepo.ExistsByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if !propertyExists {
		return nil, shared.NewDomainError("PROPERTY_NOT_FOUND", "Imóvel não encontrado")
	}

	userExists, err := s.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !userExists {
		return nil, shared.NewDomainError("USER_NOT_FOUND", "Usuário não encontrado")
	}

	alreadyFavorited, err := s.favoriteRepo.Exists(ctx, userID, propertyID)
	if err != nil {
		return nil, err
	}
	if alreadyFavorited {
		return nil, shared.NewDomainError("ALREADY_FAVORITED", "Este imóvel já está favoritado")
	}

	favorite, err := listing.NewFavorite(userID, propertyID)
	if err != nil {
		return nil, err
	}
	if err := s.favoriteRepo.Save(ctx, favorite); err != nil {
		return nil, err
	}

	response := ToFavoriteResponse(favorite)
	return &response, nil
}

// List returns a user's favorites, each carrying the favorited property
// with at most its main photo
func (s *FavoriteService) List(ctx context.Context, userID uuid.UUID) ([]FavoriteResponse, error) {
	userExists, err := s.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !userExists {
		return nil, shared.NewDomainError("USER_NOT_FOUND", "Usuário não encontrado")
	}

	favorites, err := s.favoriteRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	responses := make([]FavoriteResponse, 0, len(favorites))
	for i := range favorites {
		responses = append(responses, ToFavoriteResponse(&favorites[i]))
	}
	return responses, nil
}

// Remove deletes the favorite pair; the pair must exist
func (s *FavoriteService) Remove(ctx context.Context, userID, propertyID uuid.UUID) error {
	if err := s.favoriteRepo.Delete(ctx, userID, propertyID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("FAVORITE_NOT_FOUND", "Favorito não encontrado")
		}
		return err
	}
	return nil
}
