package models

import (
	"cinediscover/proj/internal/domain/fields"
	"time"
)

type MovieType string

const (
	MovieTypeMovie  MovieType = "movie"
	MovieTypeSeries MovieType = "series"
)

type Movie struct {
	ID          int                `json:"id" db:"id"`                     // Unique integer ID for the movie or series
	Title       string             `json:"title" db:"title"`               // Title of the movie or series
	Description *string            `json:"description" db:"description"`   // Optional plot description
	Genre       string             `json:"genre" db:"genre"`               // Single free-form genre (i.e. Action, Drama)
	ReleaseYear int                `json:"release_year" db:"release_year"` // Year of first release
	Rating      fields.MovieRating `json:"rating" db:"rating"`             // Score in [0, 10], one decimal place
	PosterURL   *string            `json:"poster_url" db:"poster_url"`     // Optional poster image URL, never fetched server-side
	Type        MovieType          `json:"type" db:"type"`                 // Either "movie" or "series"
	CreatedAt   time.Time          `json:"created_at" db:"created_at"`     // Timestamp for when the title was added to the catalog
}

// Favorite bookmarks a title for a pseudo-session. UserID is an opaque
// client-generated string, nothing server-side ever verifies it.
type Favorite struct {
	ID        int       `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	MovieID   int       `json:"movie_id" db:"movie_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type FavoriteWithMovie struct {
	Favorite
	Movie Movie `json:"movie"`
}
