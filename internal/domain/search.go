package domain

import (
	"strings"
	"time"
)

// AllAirlines disables the airline filter.
const AllAirlines = "all"

type SortKey string

const (
	SortNone      SortKey = ""
	SortPriceAsc  SortKey = "asc"
	SortPriceDesc SortKey = "desc"
	SortStopsAsc  SortKey = "stopsAsc"
	SortStopsDesc SortKey = "stopsDesc"
)

func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.TrimSpace(s)); k {
	case SortNone, SortPriceAsc, SortPriceDesc, SortStopsAsc, SortStopsDesc:
		return k, nil
	default:
		return SortNone, Validation("unknown sort key %q", s)
	}
}

type SearchQuery struct {
	Departure   string
	Destination string
	Date        time.Time
	Travelers   int
	Airline     string
	Sort        SortKey
}

func (q SearchQuery) Route() Route {
	return Route{Departure: q.Departure, Destination: q.Destination, Date: q.Date}
}

// AirlineFilter returns the airline to match and whether the filter is active.
func (q SearchQuery) AirlineFilter() (string, bool) {
	if q.Airline == "" || q.Airline == AllAirlines {
		return "", false
	}
	return q.Airline, true
}

func (q SearchQuery) Validate() error {
	if q.Departure == "" {
		return Validation("departure is required")
	}
	if q.Destination == "" {
		return Validation("destination is required")
	}
	if q.Date.IsZero() {
		return Validation("date is required")
	}
	if q.Travelers < 1 {
		return Validation("travelers must be positive")
	}
	if _, err := ParseSortKey(string(q.Sort)); err != nil {
		return err
	}
	return nil
}
