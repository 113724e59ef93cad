package fields

import (
	"fmt"
	"strconv"
)

// MovieRating is a 0-10 score stored as numeric(3,1). The driver hands the
// column back as text, so this type owns the coercion to a float on every
// read path and always serializes as a JSON number with one decimal.
type MovieRating float64

func (r MovieRating) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(r), 'f', 1, 64)), nil
}

func (r *MovieRating) Scan(src any) error {
	switch v := src.(type) {
	case float64:
		*r = MovieRating(v)
	case int64:
		*r = MovieRating(v)
	case string:
		return r.parse(v)
	case []byte:
		return r.parse(string(v))
	case nil:
		*r = 0
	default:
		return fmt.Errorf("unsupported source type %T for MovieRating", src)
	}
	return nil
}

func (r *MovieRating) parse(s string) error {
	parsed, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("parsing movie rating %q: %w", s, err)
	}
	*r = MovieRating(parsed)
	return nil
}
