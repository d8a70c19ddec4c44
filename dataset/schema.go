package dataset

import (
	"strings"
)

// ============================================================================
// SCHEMA — Closed Set of Typed Field Descriptors
// ============================================================================
// The movie schema is a fixed, compile-time enumeration. Source columns are
// matched against it by normalized name (or alias); anything else is skipped.
// The query layer validates every field reference against this set, so an
// unknown field is always an explicit error, never a silent zero.
// ============================================================================

// Kind classifies how a field's values are stored and compared.
type Kind int

const (
	KindText  Kind = iota // single string value
	KindTerms             // set of string values (e.g. genres)
	KindInt               // integer, exposed as float64 for aggregation
	KindFloat             // decimal
)

// Numeric reports whether the kind participates in numeric comparison
// and aggregation.
func (k Kind) Numeric() bool { return k == KindInt || k == KindFloat }

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindTerms:
		return "terms"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	}
	return "unknown"
}

// Field describes one column of the movie schema.
type Field struct {
	Key         string   // canonical key used in queries
	DisplayName string   // label for presentation layers
	Kind        Kind
	Required    bool     // load fails if the source lacks this column
	Aliases     []string // alternative source header names (normalized)
}

// Canonical field keys.
const (
	FieldTitle   = "title"
	FieldGenres  = "genres"
	FieldYear    = "year"
	FieldRating  = "rating"
	FieldRevenue = "revenue"
	FieldOscars  = "oscars"
)

// fields is the closed schema. Order matters: it is the column order used
// for presentation defaults.
var fields = []Field{
	{Key: FieldTitle, DisplayName: "Title", Kind: KindText, Required: true},
	{Key: FieldGenres, DisplayName: "Genres", Kind: KindTerms, Aliases: []string{"genre"}},
	{Key: FieldYear, DisplayName: "Year", Kind: KindInt, Required: true, Aliases: []string{"release_year"}},
	{Key: FieldRating, DisplayName: "Rating", Kind: KindFloat, Required: true, Aliases: []string{"metacritic_score", "score"}},
	{Key: FieldRevenue, DisplayName: "Revenue", Kind: KindFloat, Aliases: []string{"box_office", "gross"}},
	{Key: FieldOscars, DisplayName: "Oscars Won", Kind: KindInt, Aliases: []string{"oscars_won", "oscar_wins"}},
}

// Fields returns the full schema. The slice is a copy; callers cannot
// alter the schema.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// FieldByKey resolves a canonical key (case-insensitive).
func FieldByKey(key string) (Field, bool) {
	key = NormalizeHeader(key)
	for _, f := range fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// RequiredFields returns the keys the loader must find in a source.
func RequiredFields() []string {
	var keys []string
	for _, f := range fields {
		if f.Required {
			keys = append(keys, f.Key)
		}
	}
	return keys
}

// NormalizeHeader converts a raw source header to lookup form:
// "Metacritic Score" → "metacritic_score".
func NormalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, " ", "_")
	h = strings.ReplaceAll(h, "-", "_")
	return h
}

// resolveHeader maps a raw source column name onto a schema field,
// matching the canonical key first, then aliases.
func resolveHeader(header string) (Field, bool) {
	norm := NormalizeHeader(header)
	for _, f := range fields {
		if f.Key == norm {
			return f, true
		}
		for _, alias := range f.Aliases {
			if alias == norm {
				return f, true
			}
		}
	}
	return Field{}, false
}
