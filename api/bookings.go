package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/Domenick1991/airreserve/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	FlightID  int64 `json:"flight_id" binding:"required"`
	Travelers int   `json:"number_of_travelers" binding:"required"`
}

type bookingResponse struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`
	FlightID  int64  `json:"flight_id"`
	Travelers int    `json:"number_of_travelers"`
	CreatedAt string `json:"created_at"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup, auth *Auth) {
	router.Use(auth.Required())
	router.POST("", h.create)
	router.GET("", h.list)
}

func (h *BookingHandler) create(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), principal, booking.CreateBookingInput{
		FlightID:  req.FlightID,
		Travelers: req.Travelers,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toBookingResponse(*b))
}

func (h *BookingHandler) list(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	bookings, err := h.service.ListBookings(c.Request.Context(), principal)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, toBookingResponse(b))
	}
	c.JSON(http.StatusOK, resp)
}

func toBookingResponse(b domain.Booking) bookingResponse {
	return bookingResponse{
		ID:        b.ID,
		Reference: b.Reference,
		FlightID:  b.FlightID,
		Travelers: b.Travelers,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}
