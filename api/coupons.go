package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/Domenick1991/airreserve/internal/service/coupons"
	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	service coupons.CouponUseCase
}

type createCouponRequest struct {
	Text            string `json:"coupon_text" binding:"required"`
	DiscountAmount  int    `json:"discount_amount"`
	ExpirationDate  string `json:"expiration_date" binding:"required"`
	ApplicableUsers string `json:"applicable_users"`
}

type couponResponse struct {
	Text            string `json:"coupon_text"`
	DiscountAmount  int    `json:"discount_amount"`
	ExpirationDate  string `json:"expiration_date"`
	ApplicableUsers string `json:"applicable_users"`
}

func NewCouponHandler(service coupons.CouponUseCase) *CouponHandler {
	return &CouponHandler{service: service}
}

func (h *CouponHandler) Register(router *gin.RouterGroup, auth *Auth) {
	router.POST("", auth.Required(), h.create)
	router.GET("/:code/discount", auth.Optional(), h.discount)
}

func (h *CouponHandler) create(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var req createCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	expires, err := time.Parse(domain.DateLayout, req.ExpirationDate)
	if err != nil {
		badRequest(c, "expiration_date must be "+domain.DateLayout)
		return
	}

	coupon, err := h.service.Create(c.Request.Context(), principal, coupons.CreateCouponInput{
		Text:            req.Text,
		DiscountAmount:  req.DiscountAmount,
		ExpiresAt:       expires,
		ApplicableUsers: req.ApplicableUsers,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, couponResponse{
		Text:            coupon.Text,
		DiscountAmount:  coupon.DiscountAmount,
		ExpirationDate:  coupon.ExpiresAt.Format(domain.DateLayout),
		ApplicableUsers: coupon.ApplicableUsers,
	})
}

// discount reports the factor the caller would get; anonymous callers only
// see coupons open to everyone.
func (h *CouponHandler) discount(c *gin.Context) {
	var email string
	if p, ok := principalFrom(c); ok {
		email = p.Email
	}

	code := c.Param("code")
	factor, err := h.service.Resolve(c.Request.Context(), code, email)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"coupon_text": code, "discount": factor})
}
