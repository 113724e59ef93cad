package models

import (
	"context"
	"errors"
	"time"

	"cinediscover/proj/internal/domain/fields"
	"cinediscover/proj/internal/domain/models"
	"cinediscover/proj/internal/storage"
	"cinediscover/proj/internal/storage/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FavoriteModel struct {
	DB *pgxpool.Pool
}

func (m *FavoriteModel) Get(ctx context.Context, userID string, movieID int) (*models.Favorite, error) {
	rows, err := m.DB.Query(
		ctx,
		"SELECT id, user_id, movie_id, created_at FROM favorites WHERE user_id = $1 AND movie_id = $2",
		userID,
		movieID,
	)
	if err != nil {
		return nil, err
	}
	favorite, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Favorite])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &favorite, nil
}

// Insert relies on the (user_id, movie_id) unique constraint to serialize
// concurrent duplicate adds, the pre-checks in the service are only a fast
// path. A foreign key violation means the movie vanished before the insert.
func (m *FavoriteModel) Insert(ctx context.Context, userID string, movieID int) (*models.Favorite, error) {
	rows, _ := m.DB.Query(
		ctx,
		"INSERT INTO favorites (user_id, movie_id) VALUES ($1, $2) RETURNING id, user_id, movie_id, created_at",
		userID,
		movieID,
	)
	favorite, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Favorite])
	if err != nil {
		var pgxErr *pgconn.PgError
		if errors.As(err, &pgxErr) {
			switch pgxErr.Code {
			case postgres.ErrConflictCode:
				return nil, storage.ErrConflict
			case postgres.ErrFKViolationCode:
				return nil, storage.ErrNotFound
			}
		}
		return nil, err
	}
	return &favorite, nil
}

func (m *FavoriteModel) Delete(ctx context.Context, userID string, movieID int) (bool, error) {
	status, err := m.DB.Exec(
		ctx,
		"DELETE FROM favorites WHERE user_id = $1 AND movie_id = $2",
		userID,
		movieID,
	)
	if err != nil {
		return false, err
	}
	return status.RowsAffected() > 0, nil
}

func (m *FavoriteModel) ListForUser(ctx context.Context, userID string) ([]models.FavoriteWithMovie, error) {
	rows, _ := m.DB.Query(
		ctx,
		`SELECT f.id, f.user_id, f.movie_id, f.created_at,
		m.id AS m_id, m.title AS m_title, m.description AS m_description, m.genre AS m_genre,
		m.release_year AS m_release_year, m.rating AS m_rating, m.poster_url AS m_poster_url,
		m.type AS m_type, m.created_at AS m_created_at
		FROM favorites f
		INNER JOIN movies m ON m.id = f.movie_id
		WHERE f.user_id = $1`,
		userID,
	)
	type row struct {
		ID           int                `db:"id"`
		UserID       string             `db:"user_id"`
		MovieID      int                `db:"movie_id"`
		CreatedAt    time.Time          `db:"created_at"`
		MID          int                `db:"m_id"`
		MTitle       string             `db:"m_title"`
		MDescription *string            `db:"m_description"`
		MGenre       string             `db:"m_genre"`
		MReleaseYear int                `db:"m_release_year"`
		MRating      fields.MovieRating `db:"m_rating"`
		MPosterURL   *string            `db:"m_poster_url"`
		MType        models.MovieType   `db:"m_type"`
		MCreatedAt   time.Time          `db:"m_created_at"`
	}
	outputRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[row])
	if err != nil {
		return nil, err
	}
	favorites := make([]models.FavoriteWithMovie, 0, len(outputRows))
	for _, r := range outputRows {
		favorites = append(favorites, models.FavoriteWithMovie{
			Favorite: models.Favorite{
				ID:        r.ID,
				UserID:    r.UserID,
				MovieID:   r.MovieID,
				CreatedAt: r.CreatedAt,
			},
			Movie: models.Movie{
				ID:          r.MID,
				Title:       r.MTitle,
				Description: r.MDescription,
				Genre:       r.MGenre,
				ReleaseYear: r.MReleaseYear,
				Rating:      r.MRating,
				PosterURL:   r.MPosterURL,
				Type:        r.MType,
				CreatedAt:   r.MCreatedAt,
			},
		})
	}
	return favorites, nil
}
