package client

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cinediscover/proj/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGateway serves the same envelope contract as the real API, backed by an
// in-memory favorites list. failing switches every mutation to a 500.
type fakeGateway struct {
	movies    map[int]models.Movie
	favorites []models.Favorite
	nextID    int
	failing   bool
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{movies: map[int]models.Movie{
		1: {ID: 1, Title: "The Dark Knight", Type: models.MovieTypeMovie, Rating: 9.0},
		2: {ID: 2, Title: "Breaking Bad", Type: models.MovieTypeSeries, Rating: 9.5},
	}}
}

func (g *fakeGateway) writeEnvelope(w http.ResponseWriter, status int, data map[string]any, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"success": status < 400,
		"message": msg,
		"data":    data,
	})
}

func (g *fakeGateway) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/rpc/addFavorite", func(w http.ResponseWriter, r *http.Request) {
		if g.failing {
			g.writeEnvelope(w, http.StatusInternalServerError, nil, "server error")
			return
		}
		var input struct {
			UserID  string `json:"user_id"`
			MovieID int    `json:"movie_id"`
		}
		json.NewDecoder(r.Body).Decode(&input)
		if _, ok := g.movies[input.MovieID]; !ok {
			g.writeEnvelope(w, http.StatusNotFound, nil, "movie not found")
			return
		}
		for _, f := range g.favorites {
			if f.UserID == input.UserID && f.MovieID == input.MovieID {
				g.writeEnvelope(w, http.StatusConflict, nil, "Movie is already in favorites")
				return
			}
		}
		g.nextID++
		fav := models.Favorite{ID: g.nextID, UserID: input.UserID, MovieID: input.MovieID, CreatedAt: time.Now().UTC()}
		g.favorites = append(g.favorites, fav)
		g.writeEnvelope(w, http.StatusCreated, map[string]any{"favorite": fav}, "")
	})
	mux.HandleFunc("/api/v1/rpc/removeFavorite", func(w http.ResponseWriter, r *http.Request) {
		if g.failing {
			g.writeEnvelope(w, http.StatusInternalServerError, nil, "server error")
			return
		}
		var input struct {
			UserID  string `json:"user_id"`
			MovieID int    `json:"movie_id"`
		}
		json.NewDecoder(r.Body).Decode(&input)
		for i, f := range g.favorites {
			if f.UserID == input.UserID && f.MovieID == input.MovieID {
				g.favorites = append(g.favorites[:i], g.favorites[i+1:]...)
				g.writeEnvelope(w, http.StatusOK, map[string]any{"success": true}, "")
				return
			}
		}
		g.writeEnvelope(w, http.StatusOK, map[string]any{"success": false}, "")
	})
	mux.HandleFunc("/api/v1/rpc/getUserFavorites", func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user_id")
		out := []models.FavoriteWithMovie{}
		for _, f := range g.favorites {
			if f.UserID == userID {
				out = append(out, models.FavoriteWithMovie{Favorite: f, Movie: g.movies[f.MovieID]})
			}
		}
		g.writeEnvelope(w, http.StatusOK, map[string]any{"favorites": out}, "")
	})
	return mux
}

func newTestSession(t *testing.T, serverURL, storePath string) *Session {
	t.Helper()
	store, err := OpenStore(storePath)
	require.NoError(t, err)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	session, err := NewSession(log, New(serverURL), store)
	require.NoError(t, err)
	return session
}

func TestSessionUserIDGeneratedOnce(t *testing.T) {
	server := httptest.NewServer(newFakeGateway().handler())
	defer server.Close()
	storePath := filepath.Join(t.TempDir(), "state.json")

	first := newTestSession(t, server.URL, storePath)
	assert.True(t, strings.HasPrefix(first.UserID(), "user_"))

	second := newTestSession(t, server.URL, storePath)
	assert.Equal(t, first.UserID(), second.UserID())
}

func TestToggleFavoriteUpdatesCacheAfterSuccess(t *testing.T) {
	gateway := newFakeGateway()
	server := httptest.NewServer(gateway.handler())
	defer server.Close()
	storePath := filepath.Join(t.TempDir(), "state.json")
	session := newTestSession(t, server.URL, storePath)

	favorited, err := session.ToggleFavorite(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, favorited)
	assert.True(t, session.IsFavorite(1))
	require.Len(t, gateway.favorites, 1)

	// the cache survives a restart
	reopened := newTestSession(t, server.URL, storePath)
	assert.True(t, reopened.IsFavorite(1))

	favorited, err = session.ToggleFavorite(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, favorited)
	assert.False(t, session.IsFavorite(1))
	assert.Empty(t, gateway.favorites)
}

func TestToggleFavoriteFailureLeavesCacheUntouched(t *testing.T) {
	gateway := newFakeGateway()
	server := httptest.NewServer(gateway.handler())
	defer server.Close()
	storePath := filepath.Join(t.TempDir(), "state.json")
	session := newTestSession(t, server.URL, storePath)

	gateway.failing = true
	_, err := session.ToggleFavorite(context.Background(), 1)
	require.Error(t, err)
	assert.False(t, session.IsFavorite(1))
	assert.Empty(t, session.FavoriteIDs())

	// a nonexistent movie fails with NotFound and stays out of the cache
	gateway.failing = false
	_, err = session.ToggleFavorite(context.Background(), 999)
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsNotFound())
	assert.False(t, session.IsFavorite(999))
}

func TestRefreshReconcilesCacheToServer(t *testing.T) {
	gateway := newFakeGateway()
	server := httptest.NewServer(gateway.handler())
	defer server.Close()
	storePath := filepath.Join(t.TempDir(), "state.json")
	session := newTestSession(t, server.URL, storePath)

	_, err := session.ToggleFavorite(context.Background(), 1)
	require.NoError(t, err)

	// another device favorites movie 2 for the same user
	gateway.nextID++
	gateway.favorites = append(gateway.favorites, models.Favorite{
		ID: gateway.nextID, UserID: session.UserID(), MovieID: 2, CreatedAt: time.Now().UTC(),
	})

	favorites, err := session.Refresh(context.Background())
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.ElementsMatch(t, []int{1, 2}, session.FavoriteIDs())
	assert.Equal(t, "Breaking Bad", favorites[1].Movie.Title)
}

func TestAPIErrorCarriesValidationFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "Unprocessable Entity",
			"data":    map[string]any{"errors": map[string]string{"title": "This field is required"}},
		})
	}))
	defer server.Close()

	_, err := New(server.URL).SearchMovies(context.Background(), "", "all")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "This field is required", apiErr.Fields["title"])
}
