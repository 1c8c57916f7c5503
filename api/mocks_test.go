package api

import (
	"context"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/Domenick1991/airreserve/internal/service/booking"
	"github.com/Domenick1991/airreserve/internal/service/coupons"
	"github.com/Domenick1991/airreserve/internal/service/favorites"
	"github.com/Domenick1991/airreserve/internal/service/flights"
	"github.com/Domenick1991/airreserve/internal/service/notifications"
	"github.com/Domenick1991/airreserve/internal/service/users"
	"github.com/stretchr/testify/mock"
)

type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) Search(ctx context.Context, req flights.SearchRequest) (*flights.SearchResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*flights.SearchResult), args.Error(1)
}

func (m *MockFlightUseCase) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) CreateBooking(ctx context.Context, principal domain.Principal, input booking.CreateBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, principal, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) ListBookings(ctx context.Context, principal domain.Principal) ([]domain.Booking, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockRewardUseCase struct {
	mock.Mock
}

func (m *MockRewardUseCase) RewardPoints(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRewardUseCase) Destinations(ctx context.Context, userID int64) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockFavoriteUseCase struct {
	mock.Mock
}

func (m *MockFavoriteUseCase) Save(ctx context.Context, principal domain.Principal, input favorites.SaveFavoriteInput) (*domain.FavoritePlace, error) {
	args := m.Called(ctx, principal, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FavoritePlace), args.Error(1)
}

func (m *MockFavoriteUseCase) List(ctx context.Context, principal domain.Principal) ([]domain.FavoritePlace, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FavoritePlace), args.Error(1)
}

type MockCouponUseCase struct {
	mock.Mock
}

func (m *MockCouponUseCase) Resolve(ctx context.Context, couponText, email string) (float64, error) {
	args := m.Called(ctx, couponText, email)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockCouponUseCase) Create(ctx context.Context, principal domain.Principal, input coupons.CreateCouponInput) (*domain.Coupon, error) {
	args := m.Called(ctx, principal, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Coupon), args.Error(1)
}

type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) Register(ctx context.Context, input users.RegisterInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.User), args.Error(2)
}

type MockShareUseCase struct {
	mock.Mock
}

func (m *MockShareUseCase) ShareTrip(ctx context.Context, principal domain.Principal, input notifications.ShareTripInput) error {
	args := m.Called(ctx, principal, input)
	return args.Error(0)
}
