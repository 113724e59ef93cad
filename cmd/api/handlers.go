package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"cinediscover/proj/internal/domain/models"
	"cinediscover/proj/internal/services/favorites"

	"github.com/go-chi/render"
)

type searchMoviesInput struct {
	Title string `schema:"title" validate:"required" errorMsg:"Search query cannot be empty"`
	Type  string `schema:"type" validate:"omitempty,oneof=movie series all"`
}

type favoriteInput struct {
	UserID  string `json:"user_id" validate:"required"`
	MovieID int    `json:"movie_id" validate:"required,gt=0"`
}

type getUserFavoritesInput struct {
	UserID string `schema:"user_id" validate:"required"`
}

func (app *Application) healthcheck(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, struct {
		Status    string    `json:"status"`
		Timestamp time.Time `json:"timestamp"`
		Debug     bool      `json:"debug"`
		Version   string    `json:"version"`
	}{
		Status:    "available",
		Timestamp: time.Now().UTC(),
		Debug:     app.cfg.Debug,
		Version:   version,
	})
}

func (app *Application) getMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := app.movies.List(r.Context())
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	if movies == nil {
		movies = []models.Movie{}
	}
	app.Http.Ok(w, r, envelop{"movies": movies}, "")
}

func (app *Application) searchMovies(w http.ResponseWriter, r *http.Request) {
	var input searchMoviesInput
	if err := app.readQuery(r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if !app.validateInput(w, r, input) {
		return
	}
	var movieType models.MovieType
	if input.Type != "" && input.Type != "all" {
		movieType = models.MovieType(input.Type)
	}
	movies, err := app.movies.Search(r.Context(), input.Title, movieType)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	if movies == nil {
		movies = []models.Movie{}
	}
	app.Http.Ok(w, r, envelop{"movies": movies}, "")
}

func (app *Application) addFavorite(w http.ResponseWriter, r *http.Request) {
	var input favoriteInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if !app.validateInput(w, r, input) {
		return
	}
	favorite, err := app.favorites.Add(r.Context(), input.UserID, input.MovieID)
	if err != nil {
		switch {
		case errors.Is(err, favorites.ErrMovieNotFound):
			app.Http.NotFound(w, r, fmt.Sprintf("movie with id %d not found", input.MovieID))
		case errors.Is(err, favorites.ErrFavoriteExists):
			app.Http.Conflict(w, r, "Movie is already in favorites")
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Created(w, r, envelop{"favorite": favorite}, "")
}

func (app *Application) removeFavorite(w http.ResponseWriter, r *http.Request) {
	var input favoriteInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if !app.validateInput(w, r, input) {
		return
	}
	deleted, err := app.favorites.Remove(r.Context(), input.UserID, input.MovieID)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"success": deleted}, "")
}

func (app *Application) getUserFavorites(w http.ResponseWriter, r *http.Request) {
	var input getUserFavoritesInput
	if err := app.readQuery(r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if !app.validateInput(w, r, input) {
		return
	}
	userFavorites, err := app.favorites.ListForUser(r.Context(), input.UserID)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	if userFavorites == nil {
		userFavorites = []models.FavoriteWithMovie{}
	}
	app.Http.Ok(w, r, envelop{"favorites": userFavorites}, "")
}
