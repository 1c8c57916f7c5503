package repository

import (
	"context"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FavoriteRepository interface {
	Create(ctx context.Context, fav *domain.FavoritePlace) error
	ListByUser(ctx context.Context, userID int64) ([]domain.FavoritePlace, error)
}

type PGFavoriteRepository struct {
	db *pgxpool.Pool
}

func NewFavoriteRepository(db *pgxpool.Pool) FavoriteRepository {
	return &PGFavoriteRepository{db: db}
}

func (r *PGFavoriteRepository) Create(ctx context.Context, fav *domain.FavoritePlace) error {
	err := r.db.QueryRow(ctx, `INSERT INTO favorite_places (user_id, place_name, departure, date, travelers)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`, fav.UserID, fav.PlaceName, fav.Departure, fav.Date, fav.Travelers).
		Scan(&fav.ID, &fav.CreatedAt)
	return mapError("save favorite", err)
}

func (r *PGFavoriteRepository) ListByUser(ctx context.Context, userID int64) ([]domain.FavoritePlace, error) {
	rows, err := r.db.Query(ctx, `SELECT id, user_id, place_name, departure, date, travelers, created_at
		FROM favorite_places WHERE user_id=$1 ORDER BY id`, userID)
	if err != nil {
		return nil, domain.Infrastructure("list favorites", err)
	}
	defer rows.Close()

	favorites := make([]domain.FavoritePlace, 0)
	for rows.Next() {
		var f domain.FavoritePlace
		if err := rows.Scan(&f.ID, &f.UserID, &f.PlaceName, &f.Departure, &f.Date, &f.Travelers, &f.CreatedAt); err != nil {
			return nil, domain.Infrastructure("scan favorite", err)
		}
		favorites = append(favorites, f)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Infrastructure("list favorites", err)
	}
	return favorites, nil
}

var _ FavoriteRepository = (*PGFavoriteRepository)(nil)
