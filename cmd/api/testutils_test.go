package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"cinediscover/proj/internal/config"
	"cinediscover/proj/internal/domain/models"
	"cinediscover/proj/internal/services"
	"cinediscover/proj/internal/services/favorites"
	"cinediscover/proj/internal/services/movies"
	"cinediscover/proj/internal/storage"

	"github.com/stretchr/testify/require"
)

// fakeMovieStorage mirrors the SQL semantics of the movies table: insertion
// order listing, case-insensitive containment search with an optional exact
// type filter, ordered by title.
type fakeMovieStorage struct {
	movies []models.Movie
}

func (f *fakeMovieStorage) Get(_ context.Context, id int) (*models.Movie, error) {
	for _, m := range f.movies {
		if m.ID == id {
			return &m, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *fakeMovieStorage) List(_ context.Context) ([]models.Movie, error) {
	out := append([]models.Movie(nil), f.movies...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeMovieStorage) Search(_ context.Context, title string, movieType models.MovieType) ([]models.Movie, error) {
	q := strings.ToLower(title)
	var out []models.Movie
	for _, m := range f.movies {
		if !strings.Contains(strings.ToLower(m.Title), q) {
			continue
		}
		if movieType != "" && m.Type != movieType {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

// fakeFavoriteStorage enforces the same invariants as the favorites table:
// a unique (user_id, movie_id) pair and a foreign key to movies.
type fakeFavoriteStorage struct {
	movies    *fakeMovieStorage
	nextID    int
	favorites []models.Favorite
}

func (f *fakeFavoriteStorage) Get(_ context.Context, userID string, movieID int) (*models.Favorite, error) {
	for _, fav := range f.favorites {
		if fav.UserID == userID && fav.MovieID == movieID {
			return &fav, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *fakeFavoriteStorage) Insert(ctx context.Context, userID string, movieID int) (*models.Favorite, error) {
	if _, err := f.movies.Get(ctx, movieID); err != nil {
		return nil, storage.ErrNotFound
	}
	if _, err := f.Get(ctx, userID, movieID); err == nil {
		return nil, storage.ErrConflict
	}
	f.nextID++
	fav := models.Favorite{ID: f.nextID, UserID: userID, MovieID: movieID, CreatedAt: time.Now().UTC()}
	f.favorites = append(f.favorites, fav)
	return &fav, nil
}

func (f *fakeFavoriteStorage) Delete(_ context.Context, userID string, movieID int) (bool, error) {
	for i, fav := range f.favorites {
		if fav.UserID == userID && fav.MovieID == movieID {
			f.favorites = append(f.favorites[:i], f.favorites[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeFavoriteStorage) ListForUser(ctx context.Context, userID string) ([]models.FavoriteWithMovie, error) {
	var out []models.FavoriteWithMovie
	for _, fav := range f.favorites {
		if fav.UserID != userID {
			continue
		}
		movie, err := f.movies.Get(ctx, fav.MovieID)
		if err != nil {
			return nil, err
		}
		out = append(out, models.FavoriteWithMovie{Favorite: fav, Movie: *movie})
	}
	return out, nil
}

func newTestApplication(t *testing.T, catalog []models.Movie) *Application {
	t.Helper()
	cfg := &config.Config{
		Cors: config.Cors{AllowedOrigins: []string{"*"}},
	}
	return newTestApplicationWithConfig(t, cfg, catalog)
}

func newTestApplicationWithConfig(t *testing.T, cfg *config.Config, catalog []models.Movie) *Application {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	movieStorage := &fakeMovieStorage{movies: catalog}
	favoriteStorage := &fakeFavoriteStorage{movies: movieStorage}
	svcs := &services.Services{
		Movies:    movies.New(log, movieStorage),
		Favorites: favorites.New(log, favoriteStorage, movieStorage),
	}
	return NewApplication(cfg, log, svcs)
}

type testResponse struct {
	Success bool                       `json:"success"`
	Message string                     `json:"message"`
	Data    map[string]json.RawMessage `json:"data"`
}

func (r *testResponse) unmarshalData(t *testing.T, key string, dst any) {
	t.Helper()
	raw, ok := r.Data[key]
	require.True(t, ok, "response data has no key %q", key)
	require.NoError(t, json.Unmarshal(raw, dst))
}

func doRequest(t *testing.T, app *Application, method, target string, body any) (*httptest.ResponseRecorder, *testResponse) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}
	request := httptest.NewRequest(method, target, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	app.routes().ServeHTTP(recorder, request)
	var parsed testResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &parsed); err != nil {
		return recorder, nil
	}
	return recorder, &parsed
}

func ptr(s string) *string { return &s }

func testCatalog() []models.Movie {
	return []models.Movie{
		{ID: 1, Title: "The Dark Knight", Description: ptr("Batman fights the Joker"), Genre: "Action", ReleaseYear: 2008, Rating: 9.0, PosterURL: ptr("https://example.com/dark-knight.jpg"), Type: models.MovieTypeMovie, CreatedAt: time.Now().UTC()},
		{ID: 2, Title: "Breaking Bad", Description: ptr("A chemistry teacher turns to cooking meth"), Genre: "Drama", ReleaseYear: 2008, Rating: 9.5, PosterURL: ptr("https://example.com/breaking-bad.jpg"), Type: models.MovieTypeSeries, CreatedAt: time.Now().UTC()},
		{ID: 3, Title: "Knight Rider", Description: ptr("A man and his talking car fight crime"), Genre: "Action", ReleaseYear: 1982, Rating: 7.0, PosterURL: nil, Type: models.MovieTypeSeries, CreatedAt: time.Now().UTC()},
	}
}
