package favorites

import (
	"context"
	"errors"
	"log/slog"

	"cinediscover/proj/internal/domain/models"
	"cinediscover/proj/internal/storage"
)

type FavoritesStorage interface {
	Get(ctx context.Context, userID string, movieID int) (*models.Favorite, error)
	Insert(ctx context.Context, userID string, movieID int) (*models.Favorite, error)
	Delete(ctx context.Context, userID string, movieID int) (bool, error)
	ListForUser(ctx context.Context, userID string) ([]models.FavoriteWithMovie, error)
}

type MoviesStorage interface {
	Get(ctx context.Context, id int) (*models.Movie, error)
}

type FavoriteService struct {
	log     *slog.Logger
	storage FavoritesStorage
	movies  MoviesStorage
}

func New(log *slog.Logger, storage FavoritesStorage, movies MoviesStorage) *FavoriteService {
	return &FavoriteService{
		log:     log,
		storage: storage,
		movies:  movies,
	}
}

// Add bookmarks a movie for a user. The existence and duplicate lookups give
// friendly errors up front; the unique constraint behind Insert stays the
// authoritative guard when two identical adds race.
func (s *FavoriteService) Add(ctx context.Context, userID string, movieID int) (*models.Favorite, error) {
	const op = "favorites.FavoriteService.Add"
	log := s.log.With("op", op, "user_id", userID, "movie_id", movieID)
	if _, err := s.movies.Get(ctx, movieID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("movie not found")
			return nil, ErrMovieNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	if _, err := s.storage.Get(ctx, userID, movieID); err == nil {
		log.Info("favorite already exists")
		return nil, ErrFavoriteExists
	} else if !errors.Is(err, storage.ErrNotFound) {
		log.Error(err.Error())
		return nil, err
	}
	favorite, err := s.storage.Insert(ctx, userID, movieID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrConflict):
			log.Info("favorite already exists")
			return nil, ErrFavoriteExists
		case errors.Is(err, storage.ErrNotFound):
			log.Info("movie deleted concurrently")
			return nil, ErrMovieNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return favorite, nil
}

// Remove deletes the favorite if present and reports whether anything was
// deleted. A missing favorite and a missing movie are the same false outcome.
func (s *FavoriteService) Remove(ctx context.Context, userID string, movieID int) (bool, error) {
	const op = "favorites.FavoriteService.Remove"
	log := s.log.With("op", op, "user_id", userID, "movie_id", movieID)
	deleted, err := s.storage.Delete(ctx, userID, movieID)
	if err != nil {
		log.Error(err.Error())
		return false, err
	}
	return deleted, nil
}

func (s *FavoriteService) ListForUser(ctx context.Context, userID string) ([]models.FavoriteWithMovie, error) {
	const op = "favorites.FavoriteService.ListForUser"
	log := s.log.With("op", op, "user_id", userID)
	favorites, err := s.storage.ListForUser(ctx, userID)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	return favorites, nil
}
