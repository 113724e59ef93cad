package models

import (
	"context"
	"errors"
	"strings"

	"cinediscover/proj/internal/domain/fields"
	"cinediscover/proj/internal/domain/models"
	"cinediscover/proj/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const movieColumns = "id, title, description, genre, release_year, rating, poster_url, type, created_at"

type MovieModel struct {
	DB *pgxpool.Pool
}

type CreateMovieParams struct {
	Title       string
	Description *string
	Genre       string
	ReleaseYear int
	Rating      fields.MovieRating
	PosterURL   *string
	Type        models.MovieType
}

func (m *MovieModel) Get(ctx context.Context, id int) (*models.Movie, error) {
	rows, err := m.DB.Query(
		ctx,
		"SELECT "+movieColumns+" FROM movies WHERE id = $1",
		id,
	)
	if err != nil {
		return nil, err
	}
	movie, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Movie])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &movie, nil
}

func (m *MovieModel) List(ctx context.Context) ([]models.Movie, error) {
	rows, _ := m.DB.Query(ctx, "SELECT "+movieColumns+" FROM movies ORDER BY id ASC")
	movies, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Movie])
	if err != nil {
		return nil, err
	}
	return movies, nil
}

// Search matches titles containing the query as a case-insensitive substring,
// optionally restricted to one type. An empty movieType means no restriction.
func (m *MovieModel) Search(ctx context.Context, title string, movieType models.MovieType) ([]models.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies
	WHERE title ILIKE '%' || $1 || '%'
	AND ($2 = '' OR type::text = $2)
	ORDER BY title ASC`
	rows, _ := m.DB.Query(ctx, query, escapeLikePattern(title), string(movieType))
	movies, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Movie])
	if err != nil {
		return nil, err
	}
	return movies, nil
}

func (m *MovieModel) Insert(ctx context.Context, params CreateMovieParams) (*models.Movie, error) {
	rows, _ := m.DB.Query(
		ctx,
		`INSERT INTO movies (title, description, genre, release_year, rating, poster_url, type)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING `+movieColumns,
		params.Title,
		params.Description,
		params.Genre,
		params.ReleaseYear,
		float64(params.Rating),
		params.PosterURL,
		string(params.Type),
	)
	movie, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Movie])
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// escapeLikePattern neutralizes LIKE metacharacters in user input so the
// query stays a plain containment match.
func escapeLikePattern(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
