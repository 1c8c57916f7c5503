package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/Domenick1991/airreserve/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type flightResponse struct {
	ID                   int64  `json:"id"`
	DepartureAirport     string `json:"departure_airport"`
	DestinationAirport   string `json:"destination_airport"`
	DepartureDate        string `json:"departure_date"`
	PriceCents           int64  `json:"price_cents"`
	DiscountedPriceCents *int64 `json:"discounted_price_cents,omitempty"`
	TotalSeats           int    `json:"total_seats"`
	AvailableSeats       int    `json:"available_seats"`
	NumberOfStops        int    `json:"number_of_stops"`
	Airline              string `json:"airline"`
}

type searchResponse struct {
	Flights  []flightResponse `json:"flights"`
	Discount float64          `json:"discount"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup, auth *Auth) {
	router.GET("/search", auth.Optional(), h.search)
	router.GET("/:id", h.get)
}

func (h *FlightHandler) search(c *gin.Context) {
	query, err := parseSearchQuery(c)
	if err != nil {
		writeError(c, err)
		return
	}

	req := flights.SearchRequest{Query: query, Coupon: strings.TrimSpace(c.Query("coupon"))}
	if p, ok := principalFrom(c); ok {
		req.Email = p.Email
	}

	result, err := h.service.Search(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := searchResponse{Flights: make([]flightResponse, 0, len(result.Flights)), Discount: result.Discount}
	for _, f := range result.Flights {
		item := toFlightResponse(f.Flight)
		discounted := f.DiscountedPriceCents
		item.DiscountedPriceCents = &discounted
		resp.Flights = append(resp.Flights, item)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "invalid id")
		return
	}
	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFlightResponse(*flight))
}

func parseSearchQuery(c *gin.Context) (domain.SearchQuery, error) {
	q := domain.SearchQuery{
		Departure:   strings.ToUpper(strings.TrimSpace(c.Query("departure"))),
		Destination: strings.ToUpper(strings.TrimSpace(c.Query("destination"))),
		Airline:     strings.TrimSpace(c.Query("airline")),
		Travelers:   1,
	}

	rawDate := c.Query("date")
	if rawDate == "" {
		return q, domain.Validation("date is required")
	}
	date, err := time.Parse(domain.DateLayout, rawDate)
	if err != nil {
		return q, domain.Validation("date must be %s", domain.DateLayout)
	}
	q.Date = date

	if raw := c.Query("travelers"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return q, domain.Validation("travelers must be a number")
		}
		q.Travelers = n
	}

	sort, err := domain.ParseSortKey(c.Query("sort"))
	if err != nil {
		return q, err
	}
	q.Sort = sort

	return q, q.Validate()
}

func toFlightResponse(f domain.Flight) flightResponse {
	return flightResponse{
		ID:                 f.ID,
		DepartureAirport:   f.DepartureAirport,
		DestinationAirport: f.DestinationAirport,
		DepartureDate:      f.DepartureDate.Format(domain.DateLayout),
		PriceCents:         f.PriceCents,
		TotalSeats:         f.TotalSeats,
		AvailableSeats:     f.AvailableSeats,
		NumberOfStops:      f.NumberOfStops,
		Airline:            f.Airline,
	}
}
