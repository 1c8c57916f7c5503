package coupons

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/Domenick1991/airreserve/internal/repository"
	"go.uber.org/zap"
)

type CouponUseCase interface {
	Resolve(ctx context.Context, couponText, email string) (float64, error)
	Create(ctx context.Context, principal domain.Principal, input CreateCouponInput) (*domain.Coupon, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type CreateCouponInput struct {
	Text            string    `json:"coupon_text"`
	DiscountAmount  int       `json:"discount_amount"`
	ExpiresAt       time.Time `json:"expiration_date"`
	ApplicableUsers string    `json:"applicable_users"`
}

type CouponService struct {
	coupons            repository.CouponRepository
	producer           Producer
	notificationsTopic string
	now                func() time.Time
	logger             *zap.Logger
}

type CouponServiceOption func(*CouponService)

func WithClock(now func() time.Time) CouponServiceOption {
	return func(s *CouponService) {
		s.now = now
	}
}

func WithLogger(logger *zap.Logger) CouponServiceOption {
	return func(s *CouponService) {
		s.logger = logger
	}
}

// WithNotifications makes Create tell the single user a scoped coupon is for.
func WithNotifications(producer Producer, topic string) CouponServiceOption {
	return func(s *CouponService) {
		s.producer = producer
		s.notificationsTopic = topic
	}
}

func NewCouponService(coupons repository.CouponRepository, opts ...CouponServiceOption) *CouponService {
	service := &CouponService{
		coupons: coupons,
		now:     time.Now,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Resolve returns the price factor for couponText. Unknown, expired or
// foreign coupons resolve to domain.NoDiscount; only storage failures error.
func (s *CouponService) Resolve(ctx context.Context, couponText, email string) (float64, error) {
	couponText = strings.TrimSpace(couponText)
	if couponText == "" {
		return domain.NoDiscount, nil
	}

	coupon, err := s.coupons.GetByText(ctx, couponText)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NoDiscount, nil
	}
	if err != nil {
		return 0, err
	}

	if !coupon.AppliesTo(email, s.now()) {
		s.logger.Debug("coupon not applicable", zap.String("coupon", couponText), zap.Time("expires_at", coupon.ExpiresAt))
		return domain.NoDiscount, nil
	}
	return coupon.Factor(), nil
}

func (s *CouponService) Create(ctx context.Context, principal domain.Principal, input CreateCouponInput) (*domain.Coupon, error) {
	if !principal.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	coupon := &domain.Coupon{
		Text:            strings.TrimSpace(input.Text),
		DiscountAmount:  input.DiscountAmount,
		ExpiresAt:       input.ExpiresAt,
		ApplicableUsers: strings.TrimSpace(input.ApplicableUsers),
	}
	if coupon.ApplicableUsers == "" {
		coupon.ApplicableUsers = domain.ApplicableToAll
	}
	if err := s.validate(coupon); err != nil {
		return nil, err
	}

	if err := s.coupons.Create(ctx, coupon); err != nil {
		return nil, err
	}
	s.logger.Info("coupon created", zap.String("coupon", coupon.Text), zap.Int("discount", coupon.DiscountAmount), zap.Int64("admin_id", principal.UserID))

	if coupon.ApplicableUsers != domain.ApplicableToAll {
		s.notify(ctx, coupon)
	}
	return coupon, nil
}

func (s *CouponService) validate(c *domain.Coupon) error {
	if c.Text == "" {
		return domain.Validation("coupon text is required")
	}
	if c.DiscountAmount < 0 || c.DiscountAmount >= 100 {
		return domain.Validation("discount amount must be in [0, 100)")
	}
	if !c.ExpiresAt.After(s.now()) {
		return domain.Validation("expiration date must be in the future")
	}
	if c.ApplicableUsers != domain.ApplicableToAll && !strings.Contains(c.ApplicableUsers, "@") {
		return domain.Validation("applicable users must be %q or an email", domain.ApplicableToAll)
	}
	return nil
}

func (s *CouponService) notify(ctx context.Context, c *domain.Coupon) {
	if s.producer == nil || s.notificationsTopic == "" {
		return
	}
	n := domain.Notification{
		Kind:    "coupon_granted",
		To:      c.ApplicableUsers,
		Subject: "You received a discount coupon",
		Body:    "Use code " + c.Text + " before " + c.ExpiresAt.Format(domain.DateLayout) + ".",
	}
	if err := s.producer.Publish(ctx, s.notificationsTopic, c.Text, n); err != nil {
		s.logger.Warn("failed to publish coupon notification", zap.String("coupon", c.Text), zap.Error(err))
	}
}

var _ CouponUseCase = (*CouponService)(nil)
