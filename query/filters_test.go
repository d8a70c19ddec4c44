package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinelens-org/cinelens/dataset"
)

var parasite = dataset.Movie{
	Title:   "Parasite",
	Genres:  []string{"Thriller", "Drama"},
	Year:    2019,
	Rating:  96,
	Revenue: 258.8,
	Oscars:  4,
}

func TestFilterOperators(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"year eq", Filter{"year", OpEq, 2019}, true},
		{"year eq miss", Filter{"year", OpEq, 2018}, false},
		{"year ne", Filter{"year", OpNe, 2018}, true},
		{"year gt", Filter{"year", OpGt, 2018}, true},
		{"year gt equal", Filter{"year", OpGt, 2019}, false},
		{"year ge equal", Filter{"year", OpGe, 2019}, true},
		{"rating lt", Filter{"rating", OpLt, 100}, true},
		{"rating le", Filter{"rating", OpLe, 96}, true},
		{"rating lt miss", Filter{"rating", OpLt, 96}, false},
		{"numeric string value", Filter{"rating", OpGe, "90"}, true},
		{"float value", Filter{"revenue", OpGt, 258.7}, true},
		{"title eq case-insensitive", Filter{"title", OpEq, "PARASITE"}, true},
		{"title ne", Filter{"title", OpNe, "Moonlight"}, true},
		{"title contains", Filter{"title", OpContains, "para"}, true},
		{"title contains miss", Filter{"title", OpContains, "moon"}, false},
		{"genres eq any term", Filter{"genres", OpEq, "drama"}, true},
		{"genres eq miss", Filter{"genres", OpEq, "comedy"}, false},
		{"genres ne no term", Filter{"genres", OpNe, "comedy"}, true},
		{"genres ne has term", Filter{"genres", OpNe, "drama"}, false},
		{"genres contains", Filter{"genres", OpContains, "thrill"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preds, err := compile([]Filter{tt.filter})
			require.NoError(t, err)
			require.Len(t, preds, 1)
			assert.Equal(t, tt.want, preds[0].match(parasite))
		})
	}
}

func TestCompileUnknownField(t *testing.T) {
	_, err := compile([]Filter{{Field: "director", Op: OpEq, Value: "x"}})
	require.Error(t, err)

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "director", fe.Field)
}

func TestCompileInvalidCombinations(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
	}{
		{"contains on numeric", Filter{"rating", OpContains, "9"}},
		{"ordering on text", Filter{"title", OpLt, "m"}},
		{"ordering on terms", Filter{"genres", OpGe, "drama"}},
		{"non-numeric value", Filter{"year", OpEq, "twenty nineteen"}},
		{"non-string value for text", Filter{"title", OpEq, 42}},
		{"unknown operator", Filter{"year", Op("between"), 2000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := compile([]Filter{tt.filter})
			require.Error(t, err)

			var qe *QueryError
			assert.ErrorAs(t, err, &qe)
		})
	}
}

func TestParseOp(t *testing.T) {
	for raw, want := range map[string]Op{
		"eq": OpEq, "=": OpEq, "==": OpEq,
		"ne": OpNe, "!=": OpNe,
		"lt": OpLt, "<": OpLt,
		"le": OpLe, "<=": OpLe,
		"gt": OpGt, ">": OpGt,
		"ge": OpGe, ">=": OpGe,
		"contains": OpContains, "has": OpContains,
	} {
		op, err := ParseOp(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, op, raw)
	}

	_, err := ParseOp("between")
	assert.Error(t, err)
}
