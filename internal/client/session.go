package client

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"cinediscover/proj/internal/domain/models"

	"github.com/google/uuid"
)

// Session ties the API client to the local store. It holds the generated
// pseudo-session id and a cached list of favorited movie ids so a UI can
// render heart state without a round trip per title. The cache is not
// authoritative: it moves only after a successful server response and is
// replaced wholesale by Refresh.
type Session struct {
	log   *slog.Logger
	api   *Client
	store *LocalStore

	userID string

	mu          sync.Mutex
	favoriteIDs []int
}

func NewSession(log *slog.Logger, api *Client, store *LocalStore) (*Session, error) {
	s := &Session{log: log, api: api, store: store}
	found, err := store.Get(keyUserID, &s.userID)
	if err != nil {
		return nil, err
	}
	if !found || s.userID == "" {
		s.userID = "user_" + uuid.NewString()
		if err := store.Set(keyUserID, s.userID); err != nil {
			return nil, err
		}
		log.Debug("generated new pseudo-session", "user_id", s.userID)
	}
	if _, err := store.Get(keyFavorites, &s.favoriteIDs); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) UserID() string {
	return s.userID
}

func (s *Session) IsFavorite(movieID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.favoriteIDs, movieID)
}

// FavoriteIDs returns a copy of the cached favorited movie ids.
func (s *Session) FavoriteIDs() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.favoriteIDs)
}

// ToggleFavorite adds or removes the favorite on the server and reports
// whether the movie is favorited afterwards. The cached id list is updated
// only after the server call succeeds; on error it is left untouched.
func (s *Session) ToggleFavorite(ctx context.Context, movieID int) (favorited bool, err error) {
	const op = "client.Session.ToggleFavorite"
	log := s.log.With("op", op, "user_id", s.userID, "movie_id", movieID)
	if s.IsFavorite(movieID) {
		if _, err := s.api.RemoveFavorite(ctx, s.userID, movieID); err != nil {
			log.Error("failed to remove favorite", "error", err.Error())
			return true, err
		}
		return false, s.updateCache(func(ids []int) []int {
			return slices.DeleteFunc(ids, func(id int) bool { return id == movieID })
		})
	}
	if _, err := s.api.AddFavorite(ctx, s.userID, movieID); err != nil {
		log.Error("failed to add favorite", "error", err.Error())
		return false, err
	}
	return true, s.updateCache(func(ids []int) []int {
		return append(ids, movieID)
	})
}

// Refresh fetches the server-confirmed favorites and reconciles the cached
// id list to exactly that set.
func (s *Session) Refresh(ctx context.Context) ([]models.FavoriteWithMovie, error) {
	const op = "client.Session.Refresh"
	favorites, err := s.api.GetUserFavorites(ctx, s.userID)
	if err != nil {
		s.log.With("op", op, "user_id", s.userID).Error("failed to load favorites", "error", err.Error())
		return nil, err
	}
	ids := make([]int, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.MovieID)
	}
	if err := s.updateCache(func([]int) []int { return ids }); err != nil {
		return nil, err
	}
	return favorites, nil
}

func (s *Session) updateCache(apply func([]int) []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favoriteIDs = apply(s.favoriteIDs)
	return s.store.Set(keyFavorites, s.favoriteIDs)
}
