package domain

import (
	"strings"
	"time"
)

// ApplicableToAll scopes a coupon to every user.
const ApplicableToAll = "all"

// NoDiscount is the factor applied when no valid coupon is supplied.
const NoDiscount = 1.0

type Coupon struct {
	ID              int64
	Text            string
	DiscountAmount  int
	ExpiresAt       time.Time
	ApplicableUsers string
	CreatedAt       time.Time
}

// AppliesTo reports whether the coupon is unexpired at now and scoped to email.
func (c Coupon) AppliesTo(email string, now time.Time) bool {
	if !now.Before(c.ExpiresAt) {
		return false
	}
	if c.ApplicableUsers == ApplicableToAll {
		return true
	}
	return email != "" && strings.EqualFold(c.ApplicableUsers, email)
}

// Factor is the multiplier applied to prices, in (0,1].
func (c Coupon) Factor() float64 {
	return 1 - float64(c.DiscountAmount)/100
}
