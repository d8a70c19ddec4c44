package dataset

import (
	"database/sql"
	"log"
	"os"
	"regexp"
	"strings"

	_ "modernc.org/sqlite" // pure-Go driver, no cgo
)

// ============================================================================
// SQLITE LOADER — Single-Table Source
// ============================================================================
// Reads one table into a Dataset through database/sql. Column names are
// matched against the schema the same way CSV headers are; values are
// scanned as nullable strings and go through the same cell parsing.
// ============================================================================

// DefaultTable is the table name Load uses for SQLite sources.
const DefaultTable = "movies"

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// LoadSQLite reads a table from a SQLite database file into a Dataset.
// Any failure is a *LoadError.
func LoadSQLite(path, table string) (*Dataset, error) {
	if !identRe.MatchString(table) {
		return nil, newLoadErrorf(path, "invalid table name %q", table)
	}

	// sql.Open is lazy; surface a missing file before querying.
	if _, err := os.Stat(path); err != nil {
		return nil, newLoadError(path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, newLoadError(path, err)
	}
	defer db.Close()

	rows, err := db.Query("SELECT * FROM " + table)
	if err != nil {
		return nil, newLoadErrorf(path, "query table %q: %w", table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, newLoadError(path, err)
	}

	mapped := make([]*Field, len(cols))
	found := make(map[string]bool)
	for i, c := range cols {
		if f, ok := resolveHeader(c); ok {
			fld := f
			mapped[i] = &fld
			found[f.Key] = true
		}
	}
	for _, key := range RequiredFields() {
		if !found[key] {
			return nil, newLoadErrorf(path, "%w: %q", ErrMissingColumn, key)
		}
	}

	cells := make([]sql.NullString, len(cols))
	scan := make([]any, len(cols))
	for i := range cells {
		scan[i] = &cells[i]
	}

	var movies []Movie
	n := 0
	for rows.Next() {
		if err := rows.Scan(scan...); err != nil {
			return nil, newLoadErrorf(path, "scan row %d: %w", n+1, err)
		}
		n++

		var m Movie
		for i := range cells {
			if mapped[i] == nil || !cells[i].Valid {
				continue
			}
			if err := applyCell(&m, *mapped[i], strings.TrimSpace(cells[i].String)); err != nil {
				return nil, newLoadErrorf(path, "row %d, column %q: %w", n, mapped[i].Key, err)
			}
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, newLoadError(path, err)
	}

	log.Printf("🎬 cinelens: loaded %d movies from %s (table %s)", len(movies), path, table)
	return New(movies, path), nil
}
