package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/Domenick1991/airreserve/internal/service/favorites"
	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	service favorites.FavoriteUseCase
}

type saveFavoriteRequest struct {
	PlaceName string `json:"place_name" binding:"required"`
	Departure string `json:"departure" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Travelers int    `json:"travelers"`
}

type favoriteResponse struct {
	ID        int64  `json:"id"`
	PlaceName string `json:"place_name"`
	Departure string `json:"departure"`
	Date      string `json:"date"`
	Travelers int    `json:"travelers"`
}

func NewFavoriteHandler(service favorites.FavoriteUseCase) *FavoriteHandler {
	return &FavoriteHandler{service: service}
}

func (h *FavoriteHandler) Register(router *gin.RouterGroup, auth *Auth) {
	router.Use(auth.Required())
	router.POST("", h.save)
	router.GET("", h.list)
}

func (h *FavoriteHandler) save(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var req saveFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	date, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		badRequest(c, "date must be "+domain.DateLayout)
		return
	}

	place, err := h.service.Save(c.Request.Context(), principal, favorites.SaveFavoriteInput{
		PlaceName: req.PlaceName,
		Departure: req.Departure,
		Date:      date,
		Travelers: req.Travelers,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toFavoriteResponse(*place))
}

func (h *FavoriteHandler) list(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	places, err := h.service.List(c.Request.Context(), principal)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]favoriteResponse, 0, len(places))
	for _, p := range places {
		resp = append(resp, toFavoriteResponse(p))
	}
	c.JSON(http.StatusOK, resp)
}

func toFavoriteResponse(p domain.FavoritePlace) favoriteResponse {
	return favoriteResponse{
		ID:        p.ID,
		PlaceName: p.PlaceName,
		Departure: p.Departure,
		Date:      p.Date.Format(domain.DateLayout),
		Travelers: p.Travelers,
	}
}
