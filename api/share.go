package api

import (
	"net/http"

	"github.com/Domenick1991/airreserve/internal/service/notifications"
	"github.com/gin-gonic/gin"
)

type ShareHandler struct {
	service notifications.ShareUseCase
}

type shareTripRequest struct {
	ToEmail string `json:"to_email" binding:"required"`
	Subject string `json:"subject"`
	Text    string `json:"text" binding:"required"`
}

func NewShareHandler(service notifications.ShareUseCase) *ShareHandler {
	return &ShareHandler{service: service}
}

func (h *ShareHandler) Register(router *gin.RouterGroup, auth *Auth) {
	router.POST("/share", auth.Required(), h.share)
}

func (h *ShareHandler) share(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var req shareTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	err := h.service.ShareTrip(c.Request.Context(), principal, notifications.ShareTripInput{
		ToEmail: req.ToEmail,
		Subject: req.Subject,
		Text:    req.Text,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
}
