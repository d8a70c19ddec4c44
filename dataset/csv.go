package dataset

import (
	"encoding/csv"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// ============================================================================
// LOADER — Tabular Source → Dataset
// ============================================================================
// Load dispatches on file extension:
//   .csv              plain CSV
//   .csv.gz / .gz     gzip-compressed CSV
//   .db / .sqlite(3)  SQLite table (see sqlite.go)
//
// Columns are matched against the schema by normalized header name.
// Unmapped columns are silently skipped; missing required columns fail
// the load. Malformed rows (wrong field count) are skipped; a non-empty
// cell that fails to parse as its column's type fails the load.
// ============================================================================

// Load reads a tabular source into a Dataset. Any failure is a *LoadError.
func Load(path string) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return LoadSQLite(path, DefaultTable)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, newLoadError(path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, newLoadError(path, err)
		}
		defer zr.Close()
		r = zr
	}

	return ParseCSV(r, path)
}

// ParseCSV reads CSV data into a Dataset. The source string is used only
// for labeling and error reporting.
func ParseCSV(r io.Reader, source string) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, newLoadError(source, ErrEmptySource)
		}
		return nil, newLoadErrorf(source, "read header: %w", err)
	}

	// Map column index → schema field
	mapped := make([]*Field, len(headers))
	found := make(map[string]bool)
	for i, h := range headers {
		if f, ok := resolveHeader(h); ok {
			fld := f
			mapped[i] = &fld
			found[f.Key] = true
		}
	}

	for _, key := range RequiredFields() {
		if !found[key] {
			return nil, newLoadErrorf(source, "%w: %q", ErrMissingColumn, key)
		}
	}

	var movies []Movie
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			continue // skip malformed rows
		}
		if len(row) != len(headers) {
			continue
		}

		var m Movie
		for i, raw := range row {
			if mapped[i] == nil {
				continue
			}
			if err := applyCell(&m, *mapped[i], strings.TrimSpace(raw)); err != nil {
				return nil, newLoadErrorf(source, "row %d, column %q: %w", line, mapped[i].Key, err)
			}
		}
		movies = append(movies, m)
	}

	log.Printf("🎬 cinelens: loaded %d movies from %s", len(movies), source)
	return New(movies, source), nil
}

// applyCell parses a raw cell into the movie field it maps to.
// Empty cells are allowed everywhere and leave the zero value.
func applyCell(m *Movie, f Field, raw string) error {
	if raw == "" {
		return nil
	}

	switch f.Key {
	case FieldTitle:
		m.Title = raw
	case FieldGenres:
		m.Genres = splitTerms(raw)
	case FieldYear:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return badValue(raw, f)
		}
		m.Year = n
	case FieldRating:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return badValue(raw, f)
		}
		m.Rating = v
	case FieldRevenue:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return badValue(raw, f)
		}
		m.Revenue = v
	case FieldOscars:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return badValue(raw, f)
		}
		m.Oscars = n
	}
	return nil
}

func badValue(raw string, f Field) error {
	return &cellError{raw: raw, field: f}
}

// cellError carries the offending value; it unwraps to ErrBadValue so
// callers can match with errors.Is.
type cellError struct {
	raw   string
	field Field
}

func (e *cellError) Error() string {
	return ErrBadValue.Error() + " " + e.field.Kind.String() + ": " + strconv.Quote(e.raw)
}

func (e *cellError) Unwrap() error { return ErrBadValue }

// splitTerms splits a multi-value cell ("Drama; Crime" or "Drama|Crime")
// into trimmed, non-empty terms.
func splitTerms(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ';' || r == '|' || r == ','
	})
	var terms []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			terms = append(terms, p)
		}
	}
	return terms
}
