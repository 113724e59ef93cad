// Package client is the data-access layer for CineDiscover front ends: a
// typed caller for the gateway's RPC procedures plus a locally persisted
// pseudo-session with its favorites cache.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cinediscover/proj/internal/domain/models"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// APIError is any failed call reported by the gateway. Fields carries the
// per-field messages of a validation failure.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api call failed with status %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) IsNotFound() bool { return e.StatusCode == http.StatusNotFound }
func (e *APIError) IsConflict() bool { return e.StatusCode == http.StatusConflict }

type Health struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Debug     bool      `json:"debug"`
	Version   string    `json:"version"`
}

func (c *Client) Healthcheck(ctx context.Context) (*Health, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/healthcheck", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}
	var health Health
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, err
	}
	return &health, nil
}

func (c *Client) GetMovies(ctx context.Context) ([]models.Movie, error) {
	var out struct {
		Movies []models.Movie `json:"movies"`
	}
	err := c.call(ctx, http.MethodGet, "getMovies", nil, nil, &out)
	return out.Movies, err
}

func (c *Client) SearchMovies(ctx context.Context, title, movieType string) ([]models.Movie, error) {
	query := url.Values{"title": {title}}
	if movieType != "" {
		query.Set("type", movieType)
	}
	var out struct {
		Movies []models.Movie `json:"movies"`
	}
	err := c.call(ctx, http.MethodGet, "searchMovies", query, nil, &out)
	return out.Movies, err
}

func (c *Client) AddFavorite(ctx context.Context, userID string, movieID int) (*models.Favorite, error) {
	var out struct {
		Favorite *models.Favorite `json:"favorite"`
	}
	input := map[string]any{"user_id": userID, "movie_id": movieID}
	if err := c.call(ctx, http.MethodPost, "addFavorite", nil, input, &out); err != nil {
		return nil, err
	}
	return out.Favorite, nil
}

func (c *Client) RemoveFavorite(ctx context.Context, userID string, movieID int) (bool, error) {
	var out struct {
		Success bool `json:"success"`
	}
	input := map[string]any{"user_id": userID, "movie_id": movieID}
	if err := c.call(ctx, http.MethodPost, "removeFavorite", nil, input, &out); err != nil {
		return false, err
	}
	return out.Success, nil
}

func (c *Client) GetUserFavorites(ctx context.Context, userID string) ([]models.FavoriteWithMovie, error) {
	var out struct {
		Favorites []models.FavoriteWithMovie `json:"favorites"`
	}
	err := c.call(ctx, http.MethodGet, "getUserFavorites", url.Values{"user_id": {userID}}, nil, &out)
	return out.Favorites, err
}

func (c *Client) call(ctx context.Context, method, procedure string, query url.Values, input, dst any) error {
	endpoint := c.baseURL + "/api/v1/rpc/" + procedure
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	var body *bytes.Reader
	if input != nil {
		encoded, err := json.Marshal(input)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	} else {
		body = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	if input != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", procedure, err)
	}
	defer resp.Body.Close()

	var env struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= 400 {
			return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return fmt.Errorf("decoding %s response: %w", procedure, err)
	}
	if resp.StatusCode >= 400 || !env.Success {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: env.Message}
		if len(env.Data) > 0 {
			var data struct {
				Errors map[string]string `json:"errors"`
			}
			if json.Unmarshal(env.Data, &data) == nil {
				apiErr.Fields = data.Errors
			}
		}
		return apiErr
	}
	if dst != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, dst); err != nil {
			return fmt.Errorf("decoding %s response: %w", procedure, err)
		}
	}
	return nil
}
