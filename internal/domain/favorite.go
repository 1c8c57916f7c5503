package domain

import "time"

// FavoritePlace is a saved search template owned by one user.
type FavoritePlace struct {
	ID        int64
	UserID    int64
	PlaceName string
	Departure string
	Date      time.Time
	Travelers int
	CreatedAt time.Time
}
