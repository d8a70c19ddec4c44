package dataset

import (
	"time"
)

// ============================================================================
// RECORD + DATASET — Immutable In-Memory Table
// ============================================================================
// A Dataset is built once by a loader and is read-only afterwards. Queries
// run against it through index access; they never see the backing slice.
// ============================================================================

// Movie is a single row of the dataset. Values are fixed at load time.
type Movie struct {
	Title   string   `json:"title"`
	Genres  []string `json:"genres,omitempty"`
	Year    int      `json:"year"`
	Rating  float64  `json:"rating"`
	Revenue float64  `json:"revenue,omitempty"`
	Oscars  int      `json:"oscars"`
}

// Text returns the value of a text field by canonical key.
// The second return is false for non-text fields.
func (m Movie) Text(key string) (string, bool) {
	if key == FieldTitle {
		return m.Title, true
	}
	return "", false
}

// Terms returns the values of a terms field by canonical key.
func (m Movie) Terms(key string) ([]string, bool) {
	if key == FieldGenres {
		return m.Genres, true
	}
	return nil, false
}

// Number returns the value of a numeric field by canonical key.
// Integer fields are widened to float64.
func (m Movie) Number(key string) (float64, bool) {
	switch key {
	case FieldYear:
		return float64(m.Year), true
	case FieldRating:
		return m.Rating, true
	case FieldRevenue:
		return m.Revenue, true
	case FieldOscars:
		return float64(m.Oscars), true
	}
	return 0, false
}

// Dataset is an ordered, immutable sequence of movies plus load metadata.
// It is safe to share across concurrent readers; there is no write path.
type Dataset struct {
	movies   []Movie
	source   string
	loadedAt time.Time
}

// New builds a Dataset from a slice of movies. The slice and each movie's
// genre list are copied, so later changes to the input are not visible.
func New(movies []Movie, source string) *Dataset {
	owned := make([]Movie, len(movies))
	for i, m := range movies {
		if len(m.Genres) > 0 {
			genres := make([]string, len(m.Genres))
			copy(genres, m.Genres)
			m.Genres = genres
		}
		owned[i] = m
	}
	return &Dataset{
		movies:   owned,
		source:   source,
		loadedAt: time.Now(),
	}
}

// Len returns the number of movies.
func (d *Dataset) Len() int { return len(d.movies) }

// Movie returns the row at index i in load order.
func (d *Dataset) Movie(i int) Movie {
	if i < 0 || i >= len(d.movies) {
		return Movie{}
	}
	return d.movies[i]
}

// Movies returns a copy of all rows in load order.
func (d *Dataset) Movies() []Movie {
	out := make([]Movie, len(d.movies))
	copy(out, d.movies)
	return out
}

// Source returns the path or name the dataset was loaded from.
func (d *Dataset) Source() string { return d.source }

// LoadedAt returns when the dataset was built.
func (d *Dataset) LoadedAt() time.Time { return d.loadedAt }
