package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Storage keys mirror the browser localStorage keys of the web client, the
// values are plain JSON with no schema versioning.
const (
	keyUserID    = "movie_app_user_id"
	keyFavorites = "movie_favorites"
)

// LocalStore is a JSON-file key/value store standing in for browser
// localStorage. Every Set rewrites the whole file.
type LocalStore struct {
	path string

	mu     sync.Mutex
	values map[string]json.RawMessage
}

func OpenStore(path string) (*LocalStore, error) {
	s := &LocalStore{path: path, values: make(map[string]json.RawMessage)}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.values); err != nil {
			return nil, fmt.Errorf("parsing store file %s: %w", path, err)
		}
	}
	return s, nil
}

// Get reports whether the key was present and, if so, decodes it into dst.
func (s *LocalStore) Get(key string, dst any) (bool, error) {
	s.mu.Lock()
	raw, ok := s.values[key]
	s.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decoding stored key %q: %w", key, err)
	}
	return true, nil
}

func (s *LocalStore) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = raw
	return s.flush()
}

func (s *LocalStore) flush() error {
	data, err := json.Marshal(s.values)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, data, 0o600)
}
