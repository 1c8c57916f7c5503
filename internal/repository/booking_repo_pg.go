package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	// Create reserves booking.Travelers seats and records the booking in one
	// transaction, returning the flight as it is after the decrement.
	Create(ctx context.Context, booking *domain.Booking) (*domain.Flight, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	SumTravelers(ctx context.Context, userID int64) (int64, error)
	Destinations(ctx context.Context, userID int64) ([]string, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Flight, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, domain.Infrastructure("begin booking", err)
	}
	defer tx.Rollback(ctx)

	// Postgres re-checks the WHERE clause after waiting on the row lock, so
	// concurrent bookings for the last seats cannot both pass.
	flight, err := scanFlight(tx.QueryRow(ctx, `UPDATE flights
		SET available_seats = available_seats - $2, updated_at = now()
		WHERE id = $1 AND available_seats >= $2
		RETURNING `+flightColumns, booking.FlightID, booking.Travelers))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, r.rejection(ctx, tx, booking)
	}
	if err != nil {
		return nil, domain.Infrastructure("reserve seats", err)
	}

	if err := tx.QueryRow(ctx, `INSERT INTO bookings (reference, user_id, flight_id, number_of_travelers)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`, booking.Reference, booking.UserID, booking.FlightID, booking.Travelers).
		Scan(&booking.ID, &booking.CreatedAt); err != nil {
		return nil, mapError("insert booking", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.Infrastructure("commit booking", err)
	}
	return flight, nil
}

// rejection explains why the conditional decrement matched no row.
func (r *PGBookingRepository) rejection(ctx context.Context, tx pgx.Tx, booking *domain.Booking) error {
	var available int
	err := tx.QueryRow(ctx, `SELECT available_seats FROM flights WHERE id=$1`, booking.FlightID).Scan(&available)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("flight %d: %w", booking.FlightID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Infrastructure("check flight", err)
	}
	return fmt.Errorf("flight %d has %d seats left, %d requested: %w", booking.FlightID, available, booking.Travelers, domain.ErrCapacityExceeded)
}

func (r *PGBookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT id, reference, user_id, flight_id, number_of_travelers, created_at
		FROM bookings WHERE user_id=$1 ORDER BY id`, userID)
	if err != nil {
		return nil, domain.Infrastructure("list bookings", err)
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.Reference, &b.UserID, &b.FlightID, &b.Travelers, &b.CreatedAt); err != nil {
			return nil, domain.Infrastructure("scan booking", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Infrastructure("list bookings", err)
	}
	return bookings, nil
}

func (r *PGBookingRepository) SumTravelers(ctx context.Context, userID int64) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(number_of_travelers), 0) FROM bookings WHERE user_id=$1`, userID).Scan(&total); err != nil {
		return 0, domain.Infrastructure("sum travelers", err)
	}
	return total, nil
}

func (r *PGBookingRepository) Destinations(ctx context.Context, userID int64) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT f.destination_airport
		FROM bookings b JOIN flights f ON f.id = b.flight_id
		WHERE b.user_id=$1
		ORDER BY f.destination_airport`, userID)
	if err != nil {
		return nil, domain.Infrastructure("list destinations", err)
	}
	defer rows.Close()

	destinations := make([]string, 0)
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, domain.Infrastructure("scan destination", err)
		}
		destinations = append(destinations, d)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Infrastructure("list destinations", err)
	}
	return destinations, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
