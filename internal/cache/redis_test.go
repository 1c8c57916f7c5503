package cache

import (
	"strings"
	"testing"
	"time"

	"github.com/Domenick1991/airreserve/config"
	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNewRedisCache(t *testing.T) {
	c := NewRedisCache(config.RedisConfig{Addr: "localhost:6379"}, time.Minute)
	assert.NotNil(t, c)
	assert.NoError(t, c.Close())
}

func TestSearchKey(t *testing.T) {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	q := domain.SearchQuery{Departure: "SVO", Destination: "LED", Date: date, Travelers: 2, Sort: domain.SortPriceAsc}

	assert.Equal(t, "cache:flights:search:SVO:LED:2025-06-01:2::asc", searchKey(q))

	all := q
	all.Airline = domain.AllAirlines
	assert.Equal(t, searchKey(q), searchKey(all), "\"all\" is the same query as no filter")

	s7 := q
	s7.Airline = "S7"
	assert.NotEqual(t, searchKey(q), searchKey(s7))
}

func TestRouteIndexKey_CoversSearchKeys(t *testing.T) {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	q := domain.SearchQuery{Departure: "SVO", Destination: "LED", Date: date, Travelers: 1}
	flight := domain.Flight{DepartureAirport: "SVO", DestinationAirport: "LED", DepartureDate: date}

	assert.Equal(t, routeIndexKey(q.Route()), routeIndexKey(flight.Route()))
	assert.True(t, strings.HasSuffix(searchKey(q), ":1::"))
}

func TestRouteVersionKey(t *testing.T) {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	r := domain.Route{Departure: "SVO", Destination: "LED", Date: date}

	assert.Equal(t, "cache:flights:version:SVO:LED:2025-06-01", routeVersionKey(r))
	assert.NotEqual(t, routeIndexKey(r), routeVersionKey(r))
}
