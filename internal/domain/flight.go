package domain

import "time"

// DateLayout is the wire format of departure dates.
const DateLayout = "2006-01-02"

type Flight struct {
	ID                 int64
	DepartureAirport   string
	DestinationAirport string
	DepartureDate      time.Time
	PriceCents         int64
	TotalSeats         int
	AvailableSeats     int
	NumberOfStops      int
	Airline            string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (f Flight) Route() Route {
	return Route{Departure: f.DepartureAirport, Destination: f.DestinationAirport, Date: f.DepartureDate}
}

// Route identifies the set of flights a single search can return.
type Route struct {
	Departure   string
	Destination string
	Date        time.Time
}

func (r Route) String() string {
	return r.Departure + "-" + r.Destination + "@" + r.Date.Format(DateLayout)
}
