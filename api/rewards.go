package api

import (
	"net/http"

	"github.com/Domenick1991/airreserve/internal/service/rewards"
	"github.com/gin-gonic/gin"
)

type RewardHandler struct {
	service rewards.RewardUseCase
}

func NewRewardHandler(service rewards.RewardUseCase) *RewardHandler {
	return &RewardHandler{service: service}
}

func (h *RewardHandler) Register(router *gin.RouterGroup, auth *Auth) {
	router.Use(auth.Required())
	router.GET("/rewards", h.points)
	router.GET("/destinations", h.destinations)
}

func (h *RewardHandler) points(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	points, err := h.service.RewardPoints(c.Request.Context(), principal.UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reward_points": points})
}

func (h *RewardHandler) destinations(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	destinations, err := h.service.Destinations(c.Request.Context(), principal.UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	if destinations == nil {
		destinations = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"destinations": destinations})
}
