package services

import (
	"log/slog"

	"cinediscover/proj/internal/services/favorites"
	"cinediscover/proj/internal/services/movies"
	"cinediscover/proj/internal/storage/postgres"
	"cinediscover/proj/internal/storage/postgres/models"
)

type Services struct {
	Movies    *movies.MovieService
	Favorites *favorites.FavoriteService
}

func New(log *slog.Logger, storage *postgres.Storage) *Services {
	dbModels := models.New(storage)
	return &Services{
		Movies:    movies.New(log, dbModels.Movies),
		Favorites: favorites.New(log, dbModels.Favorites, dbModels.Movies),
	}
}
