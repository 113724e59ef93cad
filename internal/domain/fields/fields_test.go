package fields

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovieRatingScan(t *testing.T) {
	cases := []struct {
		name     string
		src      any
		expected MovieRating
	}{
		{"text numeric", "9.0", 9.0},
		{"bytes numeric", []byte("7.5"), 7.5},
		{"float", float64(8.8), 8.8},
		{"integer", int64(10), 10},
		{"null", nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var r MovieRating
			require.NoError(t, r.Scan(tc.src))
			assert.Equal(t, tc.expected, r)
		})
	}
}

func TestMovieRatingScanErrors(t *testing.T) {
	var r MovieRating
	assert.Error(t, r.Scan("not-a-number"))
	assert.Error(t, r.Scan(true))
}

func TestMovieRatingMarshalJSON(t *testing.T) {
	cases := []struct {
		rating   MovieRating
		expected string
	}{
		{9.0, "9.0"},
		{8.5, "8.5"},
		{0, "0.0"},
		{10, "10.0"},
	}
	for _, tc := range cases {
		b, err := json.Marshal(tc.rating)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, string(b))
	}
}

func TestMovieRatingRoundTrip(t *testing.T) {
	// numeric-as-text from the driver must come back out as a JSON number
	var r MovieRating
	require.NoError(t, r.Scan("9.0"))
	payload, err := json.Marshal(struct {
		Rating MovieRating `json:"rating"`
	}{r})
	require.NoError(t, err)
	assert.JSONEq(t, `{"rating": 9.0}`, string(payload))
}
