package movies

import (
	"context"
	"log/slog"

	"cinediscover/proj/internal/domain/models"
)

type MoviesStorage interface {
	List(ctx context.Context) ([]models.Movie, error)
	Search(ctx context.Context, title string, movieType models.MovieType) ([]models.Movie, error)
}

type MovieService struct {
	log     *slog.Logger
	storage MoviesStorage
}

func New(log *slog.Logger, storage MoviesStorage) *MovieService {
	return &MovieService{
		log:     log,
		storage: storage,
	}
}

func (s *MovieService) List(ctx context.Context) ([]models.Movie, error) {
	const op = "movies.MovieService.List"
	log := s.log.With("op", op)
	movies, err := s.storage.List(ctx)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	return movies, nil
}

// Search returns titles containing the query case-insensitively, restricted
// to movieType unless it is empty.
func (s *MovieService) Search(ctx context.Context, title string, movieType models.MovieType) ([]models.Movie, error) {
	const op = "movies.MovieService.Search"
	log := s.log.With("op", op, "title", title, "type", movieType)
	movies, err := s.storage.Search(ctx, title, movieType)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	return movies, nil
}
