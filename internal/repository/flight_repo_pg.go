package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	Search(ctx context.Context, q domain.SearchQuery) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightColumns = `id, departure_airport, destination_airport, departure_date, price_cents, total_seats, available_seats, number_of_stops, airline, created_at, updated_at`

var orderClauses = map[domain.SortKey]string{
	domain.SortNone:      "id ASC",
	domain.SortPriceAsc:  "price_cents ASC, id ASC",
	domain.SortPriceDesc: "price_cents DESC, id ASC",
	domain.SortStopsAsc:  "number_of_stops ASC, id ASC",
	domain.SortStopsDesc: "number_of_stops DESC, id ASC",
}

// buildSearchQuery only ever concatenates fixed SQL fragments; user input
// travels as positional arguments.
func buildSearchQuery(q domain.SearchQuery) (string, []any, error) {
	order, ok := orderClauses[q.Sort]
	if !ok {
		return "", nil, domain.Validation("unknown sort key %q", q.Sort)
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + flightColumns + ` FROM flights
		WHERE departure_airport = $1
		AND destination_airport = $2
		AND departure_date = $3
		AND available_seats >= $4`)
	args := []any{q.Departure, q.Destination, q.Date, q.Travelers}

	if airline, ok := q.AirlineFilter(); ok {
		args = append(args, airline)
		fmt.Fprintf(&sb, "\n\t\tAND airline = $%d", len(args))
	}
	sb.WriteString("\n\t\tORDER BY " + order)
	return sb.String(), args, nil
}

func (r *PGFlightRepository) Search(ctx context.Context, q domain.SearchQuery) ([]domain.Flight, error) {
	query, args, err := buildSearchQuery(q)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.Infrastructure("search flights", err)
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, domain.Infrastructure("scan flight", err)
		}
		flights = append(flights, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Infrastructure("search flights", err)
	}
	return flights, nil
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	f, err := scanFlight(r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE id=$1`, id))
	if err != nil {
		return nil, mapError(fmt.Sprintf("flight %d", id), err)
	}
	return f, nil
}

func scanFlight(row pgx.Row) (*domain.Flight, error) {
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.DepartureAirport, &f.DestinationAirport, &f.DepartureDate, &f.PriceCents, &f.TotalSeats, &f.AvailableSeats, &f.NumberOfStops, &f.Airline, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
