package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/Domenick1991/airreserve/internal/service/coupons"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCouponHandler_create(t *testing.T) {
	admin := domain.Principal{UserID: 1, Email: "admin@example.com", Role: domain.RoleAdmin}
	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	input := coupons.CreateCouponInput{Text: "SPRING", DiscountAmount: 15, ExpiresAt: expires, ApplicableUsers: "all"}

	testCases := []struct {
		name       string
		principal  domain.Principal
		body       string
		setup      func(m *MockCouponUseCase)
		wantStatus int
	}{
		{
			name:      "admin creates",
			principal: admin,
			body:      `{"coupon_text":"SPRING","discount_amount":15,"expiration_date":"2030-01-01","applicable_users":"all"}`,
			setup: func(m *MockCouponUseCase) {
				m.On("Create", mock.Anything, admin, input).
					Return(&domain.Coupon{Text: "SPRING", DiscountAmount: 15, ExpiresAt: expires, ApplicableUsers: "all"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:      "regular user forbidden",
			principal: testPrincipal,
			body:      `{"coupon_text":"SPRING","discount_amount":15,"expiration_date":"2030-01-01","applicable_users":"all"}`,
			setup: func(m *MockCouponUseCase) {
				m.On("Create", mock.Anything, testPrincipal, input).Return(nil, domain.ErrForbidden)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "bad expiration date",
			principal:  admin,
			body:       `{"coupon_text":"SPRING","discount_amount":15,"expiration_date":"soon"}`,
			setup:      func(m *MockCouponUseCase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:      "duplicate",
			principal: admin,
			body:      `{"coupon_text":"SPRING","discount_amount":15,"expiration_date":"2030-01-01","applicable_users":"all"}`,
			setup: func(m *MockCouponUseCase) {
				m.On("Create", mock.Anything, admin, input).Return(nil, domain.ErrAlreadyExists)
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockCouponUseCase{}
			tc.setup(mockService)
			handler := NewCouponHandler(mockService)

			c, w := newTestContext("POST", "/coupons", tc.body)
			withPrincipal(c, tc.principal)

			handler.create(c)

			assert.Equal(t, tc.wantStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestCouponHandler_discount(t *testing.T) {
	mockService := &MockCouponUseCase{}
	handler := NewCouponHandler(mockService)

	mockService.On("Resolve", mock.Anything, "SPRING", "").Return(0.85, nil)
	mockService.On("Resolve", mock.Anything, "SPRING", testPrincipal.Email).Return(0.5, nil)

	c, w := newTestContext("GET", "/coupons/SPRING/discount", "")
	c.AddParam("code", "SPRING")
	handler.discount(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"coupon_text":"SPRING","discount":0.85}`, w.Body.String())

	c, w = newTestContext("GET", "/coupons/SPRING/discount", "")
	c.AddParam("code", "SPRING")
	withPrincipal(c, testPrincipal)
	handler.discount(c)
	assert.JSONEq(t, `{"coupon_text":"SPRING","discount":0.5}`, w.Body.String())

	mockService.AssertExpectations(t)
}
