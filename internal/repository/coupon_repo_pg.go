package repository

import (
	"context"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CouponRepository interface {
	GetByText(ctx context.Context, text string) (*domain.Coupon, error)
	Create(ctx context.Context, coupon *domain.Coupon) error
}

type PGCouponRepository struct {
	db *pgxpool.Pool
}

func NewCouponRepository(db *pgxpool.Pool) CouponRepository {
	return &PGCouponRepository{db: db}
}

func (r *PGCouponRepository) GetByText(ctx context.Context, text string) (*domain.Coupon, error) {
	row := r.db.QueryRow(ctx, `SELECT id, coupon_text, discount_amount, expiration_date, applicable_users, created_at FROM coupons WHERE coupon_text=$1`, text)
	var c domain.Coupon
	if err := row.Scan(&c.ID, &c.Text, &c.DiscountAmount, &c.ExpiresAt, &c.ApplicableUsers, &c.CreatedAt); err != nil {
		return nil, mapError("coupon "+text, err)
	}
	return &c, nil
}

func (r *PGCouponRepository) Create(ctx context.Context, coupon *domain.Coupon) error {
	err := r.db.QueryRow(ctx, `INSERT INTO coupons (coupon_text, discount_amount, expiration_date, applicable_users)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`, coupon.Text, coupon.DiscountAmount, coupon.ExpiresAt, coupon.ApplicableUsers).
		Scan(&coupon.ID, &coupon.CreatedAt)
	return mapError("create coupon", err)
}

var _ CouponRepository = (*PGCouponRepository)(nil)
