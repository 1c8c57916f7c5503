package favorites

import (
	"context"
	"strings"
	"time"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/Domenick1991/airreserve/internal/repository"
)

type FavoriteUseCase interface {
	Save(ctx context.Context, principal domain.Principal, input SaveFavoriteInput) (*domain.FavoritePlace, error)
	List(ctx context.Context, principal domain.Principal) ([]domain.FavoritePlace, error)
}

// SaveFavoriteInput mirrors a search form: PlaceName is the destination.
type SaveFavoriteInput struct {
	PlaceName string
	Departure string
	Date      time.Time
	Travelers int
}

type FavoriteService struct {
	favorites repository.FavoriteRepository
}

func NewFavoriteService(favorites repository.FavoriteRepository) *FavoriteService {
	return &FavoriteService{favorites: favorites}
}

func (s *FavoriteService) Save(ctx context.Context, principal domain.Principal, input SaveFavoriteInput) (*domain.FavoritePlace, error) {
	if principal.UserID <= 0 {
		return nil, domain.ErrUnauthenticated
	}

	fav := &domain.FavoritePlace{
		UserID:    principal.UserID,
		PlaceName: strings.TrimSpace(input.PlaceName),
		Departure: strings.TrimSpace(input.Departure),
		Date:      input.Date,
		Travelers: input.Travelers,
	}
	switch {
	case fav.PlaceName == "":
		return nil, domain.Validation("place name is required")
	case fav.Departure == "":
		return nil, domain.Validation("departure is required")
	case fav.Date.IsZero():
		return nil, domain.Validation("date is required")
	case fav.Travelers < 1:
		return nil, domain.Validation("travelers must be positive")
	}

	if err := s.favorites.Create(ctx, fav); err != nil {
		return nil, err
	}
	return fav, nil
}

func (s *FavoriteService) List(ctx context.Context, principal domain.Principal) ([]domain.FavoritePlace, error) {
	if principal.UserID <= 0 {
		return nil, domain.ErrUnauthenticated
	}
	list, err := s.favorites.ListByUser(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.FavoritePlace{}
	}
	return list, nil
}

var _ FavoriteUseCase = (*FavoriteService)(nil)
