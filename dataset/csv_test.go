package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var moviesCSV = `Title,Genre,Year,Metacritic Score,Revenue,Oscars Won
The Godfather,Crime; Drama,1972,100,250.3,3
Casablanca,Drama|Romance,1942,100,10.4,3
Parasite,Thriller; Drama,2019,96,258.8,4
Mad Max: Fury Road,Action,2015,90,375.2,6
Moonlight,Drama,2016,99,65.3,3
`

func TestParseCSV(t *testing.T) {
	ds, err := ParseCSV(strings.NewReader(moviesCSV), "test.csv")
	require.NoError(t, err)
	require.Equal(t, 5, ds.Len())

	m := ds.Movie(0)
	assert.Equal(t, "The Godfather", m.Title)
	assert.Equal(t, []string{"Crime", "Drama"}, m.Genres)
	assert.Equal(t, 1972, m.Year)
	assert.Equal(t, 100.0, m.Rating)
	assert.Equal(t, 250.3, m.Revenue)
	assert.Equal(t, 3, m.Oscars)

	// pipe-separated genres
	assert.Equal(t, []string{"Drama", "Romance"}, ds.Movie(1).Genres)

	assert.Equal(t, "test.csv", ds.Source())
	assert.False(t, ds.LoadedAt().IsZero())
}

func TestParseCSVMissingRequiredColumn(t *testing.T) {
	// No rating column in any spelling.
	csv := "Title,Year,Oscars Won\nThe Godfather,1972,3\n"
	_, err := ParseCSV(strings.NewReader(csv), "test.csv")
	require.Error(t, err)

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "test.csv", le.Source)
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "rating")
}

func TestParseCSVBadNumericCell(t *testing.T) {
	csv := "Title,Year,Metacritic Score\nThe Godfather,nineteen-seventy-two,100\n"
	_, err := ParseCSV(strings.NewReader(csv), "test.csv")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadValue)

	var le *LoadError
	assert.ErrorAs(t, err, &le)
}

func TestParseCSVEmptyNumericCellIsZero(t *testing.T) {
	csv := "Title,Year,Metacritic Score,Oscars Won\nSome Film,1999,88,\n"
	ds, err := ParseCSV(strings.NewReader(csv), "test.csv")
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())
	assert.Equal(t, 0, ds.Movie(0).Oscars)
}

func TestParseCSVSkipsMalformedRows(t *testing.T) {
	csv := "Title,Year,Metacritic Score\nGood Film,2001,75\nshort row,2002\nAnother,2003,80\n"
	ds, err := ParseCSV(strings.NewReader(csv), "test.csv")
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, "Good Film", ds.Movie(0).Title)
	assert.Equal(t, "Another", ds.Movie(1).Title)
}

func TestParseCSVEmptySource(t *testing.T) {
	_, err := ParseCSV(strings.NewReader(""), "empty.csv")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptySource)
}

func TestParseCSVUnknownColumnsSkipped(t *testing.T) {
	csv := "Title,Director,Year,Metacritic Score\nHeat,Michael Mann,1995,76\n"
	ds, err := ParseCSV(strings.NewReader(csv), "test.csv")
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())
	assert.Equal(t, "Heat", ds.Movie(0).Title)
	assert.Equal(t, 76.0, ds.Movie(0).Rating)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.csv")
	require.NoError(t, os.WriteFile(path, []byte(moviesCSV), 0o644))

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, ds.Len())
	assert.Equal(t, path, ds.Source())
}

func TestLoadGzippedCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.csv.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte(moviesCSV))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, ds.Len())
	assert.Equal(t, "The Godfather", ds.Movie(0).Title)
}

func TestSplitTerms(t *testing.T) {
	assert.Equal(t, []string{"Crime", "Drama"}, splitTerms("Crime; Drama"))
	assert.Equal(t, []string{"Action"}, splitTerms(" Action "))
	assert.Nil(t, splitTerms(" ; "))
}
