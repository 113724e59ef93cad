package favorites

import "errors"

var (
	ErrFavoriteExists = errors.New("movie is already in favorites")
	ErrMovieNotFound  = errors.New("movie not found")
)
