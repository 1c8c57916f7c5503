package rewards

import (
	"context"

	"github.com/Domenick1991/airreserve/internal/domain"
)

// PointsPerTraveler is the loyalty score earned for every booked traveler.
const PointsPerTraveler = 100

type RewardUseCase interface {
	RewardPoints(ctx context.Context, userID int64) (int64, error)
	Destinations(ctx context.Context, userID int64) ([]string, error)
}

// BookingHistory is the read side of the booking ledger.
type BookingHistory interface {
	SumTravelers(ctx context.Context, userID int64) (int64, error)
	Destinations(ctx context.Context, userID int64) ([]string, error)
}

// RewardService derives points from committed bookings on every call; there
// is no stored balance to keep in sync.
type RewardService struct {
	history BookingHistory
}

func NewRewardService(history BookingHistory) *RewardService {
	return &RewardService{history: history}
}

func (s *RewardService) RewardPoints(ctx context.Context, userID int64) (int64, error) {
	if userID <= 0 {
		return 0, domain.ErrUnauthenticated
	}
	travelers, err := s.history.SumTravelers(ctx, userID)
	if err != nil {
		return 0, err
	}
	return travelers * PointsPerTraveler, nil
}

// Destinations lists the distinct airports the user has booked flights to.
func (s *RewardService) Destinations(ctx context.Context, userID int64) ([]string, error) {
	if userID <= 0 {
		return nil, domain.ErrUnauthenticated
	}
	return s.history.Destinations(ctx, userID)
}

var _ RewardUseCase = (*RewardService)(nil)
