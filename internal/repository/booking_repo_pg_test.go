package repository

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewBookingRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewBookingRepository(pool)
	assert.NotNil(t, repo)
}

func TestNewCouponRepository(t *testing.T) {
	assert.NotNil(t, NewCouponRepository(&pgxpool.Pool{}))
}

func TestNewFavoriteRepository(t *testing.T) {
	assert.NotNil(t, NewFavoriteRepository(&pgxpool.Pool{}))
}

func TestNewUserRepository(t *testing.T) {
	assert.NotNil(t, NewUserRepository(&pgxpool.Pool{}))
}
