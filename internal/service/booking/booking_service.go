package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/Domenick1991/airreserve/internal/kafka"
	"github.com/Domenick1991/airreserve/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, principal domain.Principal, input CreateBookingInput) (*domain.Booking, error)
	ListBookings(ctx context.Context, principal domain.Principal) ([]domain.Booking, error)
}

// Cache is the part of the search cache a booking makes stale.
type Cache interface {
	InvalidateRoute(ctx context.Context, route domain.Route) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	cache              Cache
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	logger             *zap.Logger
}

type CreateBookingInput struct {
	FlightID  int64 `json:"flight_id"`
	Travelers int   `json:"number_of_travelers"`
}

type BookingServiceOption func(*BookingService)

func WithCache(cache Cache) BookingServiceOption {
	return func(s *BookingService) {
		s.cache = cache
	}
}

func WithEvents(producer Producer, bookingTopic, notificationsTopic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.bookingTopic = bookingTopic
		s.notificationsTopic = notificationsTopic
	}
}

func WithLogger(logger *zap.Logger) BookingServiceOption {
	return func(s *BookingService) {
		s.logger = logger
	}
}

func NewBookingService(bookings repository.BookingRepository, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		bookings: bookings,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateBooking reserves input.Travelers seats for the principal. Seat
// decrement and insert are one atomic repository call; everything after it
// (cache invalidation, events) is best effort and never undoes the booking.
func (s *BookingService) CreateBooking(ctx context.Context, principal domain.Principal, input CreateBookingInput) (*domain.Booking, error) {
	if principal.UserID <= 0 {
		return nil, domain.ErrUnauthenticated
	}
	if input.FlightID <= 0 {
		return nil, domain.Validation("flight id must be positive")
	}
	if input.Travelers < 1 {
		return nil, domain.Validation("number of travelers must be at least 1")
	}

	booking := &domain.Booking{
		Reference: uuid.NewString(),
		UserID:    principal.UserID,
		FlightID:  input.FlightID,
		Travelers: input.Travelers,
	}

	flight, err := s.bookings.Create(ctx, booking)
	if err != nil {
		s.logger.Info("booking rejected",
			zap.Int64("user_id", principal.UserID),
			zap.Int64("flight_id", input.FlightID),
			zap.Int("travelers", input.Travelers),
			zap.String("reason", domain.ErrorCode(err)),
		)
		return nil, err
	}

	s.logger.Info("booking created",
		zap.String("reference", booking.Reference),
		zap.Int64("flight_id", booking.FlightID),
		zap.Int("travelers", booking.Travelers),
		zap.Int("seats_left", flight.AvailableSeats),
	)

	if s.cache != nil {
		if err := s.cache.InvalidateRoute(ctx, flight.Route()); err != nil {
			s.logger.Warn("failed to invalidate search cache", zap.Stringer("route", flight.Route()), zap.Error(err))
		}
	}
	s.publish(ctx, principal, booking, flight)
	return booking, nil
}

func (s *BookingService) ListBookings(ctx context.Context, principal domain.Principal) ([]domain.Booking, error) {
	if principal.UserID <= 0 {
		return nil, domain.ErrUnauthenticated
	}
	return s.bookings.ListByUser(ctx, principal.UserID)
}

// publish emits the booking event and the traveler's confirmation. Each is
// attempted on its own; failures are logged.
func (s *BookingService) publish(ctx context.Context, principal domain.Principal, booking *domain.Booking, flight *domain.Flight) {
	if s.producer == nil {
		return
	}
	if s.bookingTopic != "" {
		event := kafka.BookingEvent{
			Type:       "booking_created",
			Reference:  booking.Reference,
			BookingID:  booking.ID,
			UserID:     booking.UserID,
			FlightID:   booking.FlightID,
			Travelers:  booking.Travelers,
			Email:      principal.Email,
			OccurredAt: time.Now().UTC(),
		}
		if err := s.producer.Publish(ctx, s.bookingTopic, booking.Reference, event); err != nil {
			s.logger.Warn("failed to publish booking_created", zap.String("reference", booking.Reference), zap.Error(err))
		}
	}
	if s.notificationsTopic != "" && principal.Email != "" {
		n := Confirmation(principal.Email, booking, flight)
		if err := s.producer.Publish(ctx, s.notificationsTopic, booking.Reference, n); err != nil {
			s.logger.Warn("failed to publish booking confirmation", zap.String("reference", booking.Reference), zap.Error(err))
		}
	}
}

// Confirmation is the message sent to the traveler after a booking commits.
func Confirmation(to string, booking *domain.Booking, flight *domain.Flight) domain.Notification {
	return domain.Notification{
		Kind:    "booking_created",
		To:      to,
		Subject: fmt.Sprintf("Booking %s confirmed", booking.Reference),
		Body: fmt.Sprintf("%d traveler(s) on %s flight %s to %s, departing %s.",
			booking.Travelers, flight.Airline, flight.DepartureAirport, flight.DestinationAirport,
			flight.DepartureDate.Format(domain.DateLayout)),
	}
}

var _ BookingUseCase = (*BookingService)(nil)
