package repository

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/Domenick1991/airreserve/internal/migrations"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testDatabaseEnv = "AIRRESERVE_TEST_DATABASE_URL"

// newTestPool connects to the database named by AIRRESERVE_TEST_DATABASE_URL
// and applies the embedded migrations. Tests are skipped without it.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv(testDatabaseEnv)
	if dsn == "" {
		t.Skipf("%s not set", testDatabaseEnv)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	m, err := migrations.NewMigrator(pool, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, m.Run(ctx))
	require.NoError(t, m.Close())
	return pool
}

func insertTestFlight(t *testing.T, pool *pgxpool.Pool, seats int) int64 {
	t.Helper()
	var id int64
	err := pool.QueryRow(context.Background(), `INSERT INTO flights
		(departure_airport, destination_airport, departure_date, price_cents, total_seats, available_seats, number_of_stops, airline)
		VALUES ('TST', 'DST', CURRENT_DATE + 30, 10000, $1, $1, 0, 'TestAir')
		RETURNING id`, seats).Scan(&id)
	require.NoError(t, err)
	return id
}

func insertTestUser(t *testing.T, pool *pgxpool.Pool) int64 {
	t.Helper()
	user := &domain.User{Name: "Test", Email: uuid.NewString() + "@example.com", PasswordHash: "x", Role: domain.RoleUser}
	require.NoError(t, NewUserRepository(pool).Create(context.Background(), user))
	return user.ID
}

func availableSeats(t *testing.T, pool *pgxpool.Pool, flightID int64) int {
	t.Helper()
	var seats int
	require.NoError(t, pool.QueryRow(context.Background(), `SELECT available_seats FROM flights WHERE id=$1`, flightID).Scan(&seats))
	return seats
}

func newBooking(userID, flightID int64, travelers int) *domain.Booking {
	return &domain.Booking{Reference: uuid.NewString(), UserID: userID, FlightID: flightID, Travelers: travelers}
}

func TestPGBookingRepository_Create_TwoSeatFlight(t *testing.T) {
	pool := newTestPool(t)
	repo := NewBookingRepository(pool)
	ctx := context.Background()

	flightID := insertTestFlight(t, pool, 2)
	userID := insertTestUser(t, pool)

	_, err := repo.Create(ctx, newBooking(userID, flightID, 3))
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	assert.Equal(t, 2, availableSeats(t, pool, flightID))

	b := newBooking(userID, flightID, 2)
	flight, err := repo.Create(ctx, b)
	require.NoError(t, err)
	assert.Positive(t, b.ID)
	assert.Equal(t, 0, flight.AvailableSeats)

	_, err = repo.Create(ctx, newBooking(userID, flightID, 1))
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	assert.Equal(t, 0, availableSeats(t, pool, flightID))

	total, err := repo.SumTravelers(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestPGBookingRepository_Create_UnknownFlight(t *testing.T) {
	pool := newTestPool(t)
	repo := NewBookingRepository(pool)

	_, err := repo.Create(context.Background(), newBooking(insertTestUser(t, pool), 1<<40, 1))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPGBookingRepository_Create_UnknownUserRollsBack(t *testing.T) {
	pool := newTestPool(t)
	repo := NewBookingRepository(pool)
	flightID := insertTestFlight(t, pool, 5)

	_, err := repo.Create(context.Background(), newBooking(1<<40, flightID, 2))

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 5, availableSeats(t, pool, flightID))
}

func TestPGBookingRepository_Create_ConcurrentBookings(t *testing.T) {
	pool := newTestPool(t)
	repo := NewBookingRepository(pool)
	ctx := context.Background()

	const seats, attempts = 5, 20
	flightID := insertTestFlight(t, pool, seats)
	userID := insertTestUser(t, pool)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok       int
		rejected int
		other    []error
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, newBooking(userID, flightID, 1))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, domain.ErrCapacityExceeded):
				rejected++
			default:
				other = append(other, err)
			}
		}()
	}
	wg.Wait()

	require.Empty(t, other)
	assert.Equal(t, seats, ok)
	assert.Equal(t, attempts-seats, rejected)
	assert.Equal(t, 0, availableSeats(t, pool, flightID))

	var booked int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COALESCE(SUM(number_of_travelers), 0) FROM bookings WHERE flight_id=$1`, flightID).Scan(&booked))
	assert.Equal(t, seats, booked)
}
