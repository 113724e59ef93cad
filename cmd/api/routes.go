package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func (app *Application) routes() http.Handler {
	router := chi.NewRouter()
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		app.Http.NotFound(w, r, "Page not found")
	})
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(app.Recoverer)
	router.Use(app.RateLimiter)
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/healthcheck", app.healthcheck)
		// the procedures mirror the client-facing RPC surface: queries are
		// GETs with URL params, mutations are POSTs with JSON bodies
		r.Route("/rpc", func(r chi.Router) {
			r.Get("/getMovies", app.getMovies)
			r.Get("/searchMovies", app.searchMovies)
			r.Post("/addFavorite", app.addFavorite)
			r.Post("/removeFavorite", app.removeFavorite)
			r.Get("/getUserFavorites", app.getUserFavorites)
		})
	})
	c := cors.New(cors.Options{
		AllowedOrigins: app.cfg.Cors.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(router)
}
