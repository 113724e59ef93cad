package main

import (
	"context"
	"flag"
	"time"

	"cinediscover/proj/internal/config"
	"cinediscover/proj/internal/domain/fields"
	domain "cinediscover/proj/internal/domain/models"
	"cinediscover/proj/internal/lib/logger"
	"cinediscover/proj/internal/storage/postgres"
	"cinediscover/proj/internal/storage/postgres/models"

	"github.com/joho/godotenv"
)

// seed fills an empty catalog with a handful of titles. Titles are otherwise
// created by an out-of-band ingestion process, the API never writes them.
func main() {
	cfgPath := flag.String("config", "config/local.yml", "path to config file")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.MustLoad(*cfgPath)
	log := logger.SetupLogger(cfg.Debug)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	storage, err := postgres.New(ctx, cfg.DB.Dsn, cfg.DB.MaxConns, cfg.DB.MaxConnIdleTime)
	if err != nil {
		panic(err)
	}
	defer storage.Close()
	if err := postgres.Migrate(cfg.DB.Dsn); err != nil {
		panic(err)
	}

	movieModel := models.New(storage).Movies
	existing, err := movieModel.List(ctx)
	if err != nil {
		panic(err)
	}
	if len(existing) > 0 {
		log.Info("catalog already seeded", "movies", len(existing))
		return
	}
	for _, params := range catalog {
		movie, err := movieModel.Insert(ctx, params)
		if err != nil {
			panic(err)
		}
		log.Info("inserted title", "id", movie.ID, "title", movie.Title)
	}
	log.Info("catalog seeded", "movies", len(catalog))
}

func ptr(s string) *string { return &s }

var catalog = []models.CreateMovieParams{
	{
		Title:       "The Dark Knight",
		Description: ptr("Batman faces the Joker, a criminal mastermind plunging Gotham into anarchy."),
		Genre:       "Action",
		ReleaseYear: 2008,
		Rating:      fields.MovieRating(9.0),
		PosterURL:   ptr("https://image.tmdb.org/t/p/w500/qJ2tW6WMUDux911r6m7haRef0WH.jpg"),
		Type:        domain.MovieTypeMovie,
	},
	{
		Title:       "Breaking Bad",
		Description: ptr("A chemistry teacher diagnosed with cancer turns to manufacturing methamphetamine."),
		Genre:       "Drama",
		ReleaseYear: 2008,
		Rating:      fields.MovieRating(9.5),
		PosterURL:   ptr("https://image.tmdb.org/t/p/w500/ggFHVNu6YYI5L9pCfOacjizRGt.jpg"),
		Type:        domain.MovieTypeSeries,
	},
	{
		Title:       "Knight Rider",
		Description: ptr("A lone crimefighter battles the forces of evil with the help of an indestructible talking car."),
		Genre:       "Action",
		ReleaseYear: 1982,
		Rating:      fields.MovieRating(6.9),
		Type:        domain.MovieTypeSeries,
	},
	{
		Title:       "Inception",
		Description: ptr("A thief who steals corporate secrets through dream-sharing is given an inverse task."),
		Genre:       "Sci-Fi",
		ReleaseYear: 2010,
		Rating:      fields.MovieRating(8.8),
		PosterURL:   ptr("https://image.tmdb.org/t/p/w500/oYuLEt3zVCKq57qu2F8dT7NIa6f.jpg"),
		Type:        domain.MovieTypeMovie,
	},
	{
		Title:       "Stranger Things",
		Description: ptr("A young boy vanishes and a small town uncovers a mystery involving secret experiments."),
		Genre:       "Horror",
		ReleaseYear: 2016,
		Rating:      fields.MovieRating(8.7),
		PosterURL:   ptr("https://image.tmdb.org/t/p/w500/49WJfeN0moxb9IPfGn8AIqMGskD.jpg"),
		Type:        domain.MovieTypeSeries,
	},
	{
		Title:       "The Godfather",
		Description: ptr("The aging patriarch of an organized crime dynasty transfers control to his reluctant son."),
		Genre:       "Crime",
		ReleaseYear: 1972,
		Rating:      fields.MovieRating(9.2),
		Type:        domain.MovieTypeMovie,
	},
}
