package main

import (
	"log/slog"

	"cinediscover/proj/internal/config"
	"cinediscover/proj/internal/services"
	"cinediscover/proj/internal/services/favorites"
	"cinediscover/proj/internal/services/movies"

	govalidator "github.com/go-playground/validator/v10"
)

type Application struct {
	cfg       *config.Config
	log       *slog.Logger
	Http      *Http
	movies    *movies.MovieService
	favorites *favorites.FavoriteService
	validator *govalidator.Validate
}

func NewApplication(cfg *config.Config, log *slog.Logger, svcs *services.Services) *Application {
	return &Application{
		cfg:       cfg,
		log:       log,
		validator: govalidator.New(govalidator.WithRequiredStructEnabled()),
		movies:    svcs.Movies,
		favorites: svcs.Favorites,
		Http: &Http{
			log: log,
			cfg: cfg,
		},
	}
}
