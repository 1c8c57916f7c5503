package domain

import "time"

// Booking is a committed seat reservation. It is never mutated once created.
type Booking struct {
	ID        int64
	Reference string
	UserID    int64
	FlightID  int64
	Travelers int
	CreatedAt time.Time
}
