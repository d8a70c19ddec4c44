package query

import (
	"sort"
	"strconv"

	"github.com/cinelens-org/cinelens/dataset"
)

// ============================================================================
// RESULT SET — Ordered View + Aggregates
// ============================================================================
// A ResultSet holds an index list into the Dataset — no row copies until
// Movies() materializes. Aggregates cover the summary widgets of a
// dashboard: row count, numeric stats, distinct values (dropdowns), and
// per-value counts (histograms).
// ============================================================================

// ResultSet is the ordered outcome of a query over a Dataset.
type ResultSet struct {
	ds      *dataset.Dataset
	indices []int
}

func newResultSet(ds *dataset.Dataset, indices []int) *ResultSet {
	return &ResultSet{ds: ds, indices: indices}
}

// Len returns the number of matching rows.
func (r *ResultSet) Len() int { return len(r.indices) }

// Count is an alias for Len, for summary widgets.
func (r *ResultSet) Count() int { return len(r.indices) }

// Movie returns the i-th matching row in result order.
func (r *ResultSet) Movie(i int) dataset.Movie {
	if i < 0 || i >= len(r.indices) {
		return dataset.Movie{}
	}
	return r.ds.Movie(r.indices[i])
}

// Movies materializes all matching rows, in result order.
func (r *ResultSet) Movies() []dataset.Movie {
	out := make([]dataset.Movie, len(r.indices))
	for i, idx := range r.indices {
		out[i] = r.ds.Movie(idx)
	}
	return out
}

// Stats summarizes a numeric field across the result.
type Stats struct {
	Count int     `json:"count"`
	Sum   float64 `json:"sum"`
	Avg   float64 `json:"avg"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// Stats computes count/sum/avg/min/max for a numeric field.
// An empty result yields zero Stats, not an error.
func (r *ResultSet) Stats(field string) (Stats, error) {
	f, ok := dataset.FieldByKey(field)
	if !ok {
		return Stats{}, &FieldError{Field: field}
	}
	if !f.Kind.Numeric() {
		return Stats{}, newQueryErrorf("field %q is not numeric", f.Key)
	}

	var s Stats
	for _, idx := range r.indices {
		v, _ := r.ds.Movie(idx).Number(f.Key)
		if s.Count == 0 || v < s.Min {
			s.Min = v
		}
		if s.Count == 0 || v > s.Max {
			s.Max = v
		}
		s.Sum += v
		s.Count++
	}
	if s.Count > 0 {
		s.Avg = s.Sum / float64(s.Count)
	}
	return s, nil
}

// Distinct returns the sorted distinct values of a field across the
// result, skipping empty cells. Numeric fields sort numerically; terms
// fields contribute each term.
func (r *ResultSet) Distinct(field string) ([]string, error) {
	f, ok := dataset.FieldByKey(field)
	if !ok {
		return nil, &FieldError{Field: field}
	}

	if f.Kind.Numeric() {
		seen := make(map[float64]bool)
		var nums []float64
		for _, idx := range r.indices {
			v, _ := r.ds.Movie(idx).Number(f.Key)
			if !seen[v] {
				seen[v] = true
				nums = append(nums, v)
			}
		}
		sort.Float64s(nums)
		out := make([]string, len(nums))
		for i, v := range nums {
			out[i] = formatNumber(v, f.Kind)
		}
		return out, nil
	}

	seen := make(map[string]bool)
	var out []string
	collect := func(v string) {
		if v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	for _, idx := range r.indices {
		m := r.ds.Movie(idx)
		if f.Kind == dataset.KindTerms {
			terms, _ := m.Terms(f.Key)
			for _, t := range terms {
				collect(t)
			}
		} else {
			v, _ := m.Text(f.Key)
			collect(v)
		}
	}
	sort.Strings(out)
	return out, nil
}

// Bucket is one bar of a per-value histogram.
type Bucket struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Buckets counts rows per distinct value of a field, ascending by key
// (numeric fields in numeric order). Terms fields count each term.
func (r *ResultSet) Buckets(field string) ([]Bucket, error) {
	f, ok := dataset.FieldByKey(field)
	if !ok {
		return nil, &FieldError{Field: field}
	}

	if f.Kind.Numeric() {
		counts := make(map[float64]int)
		for _, idx := range r.indices {
			v, _ := r.ds.Movie(idx).Number(f.Key)
			counts[v]++
		}
		keys := make([]float64, 0, len(counts))
		for k := range counts {
			keys = append(keys, k)
		}
		sort.Float64s(keys)
		out := make([]Bucket, len(keys))
		for i, k := range keys {
			out[i] = Bucket{Key: formatNumber(k, f.Kind), Count: counts[k]}
		}
		return out, nil
	}

	counts := make(map[string]int)
	bump := func(v string) {
		if v != "" {
			counts[v]++
		}
	}
	for _, idx := range r.indices {
		m := r.ds.Movie(idx)
		if f.Kind == dataset.KindTerms {
			terms, _ := m.Terms(f.Key)
			for _, t := range terms {
				bump(t)
			}
		} else {
			v, _ := m.Text(f.Key)
			bump(v)
		}
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Bucket, len(keys))
	for i, k := range keys {
		out[i] = Bucket{Key: k, Count: counts[k]}
	}
	return out, nil
}

// formatNumber renders a numeric value for labels: integers without a
// decimal point, floats with trailing zeros trimmed.
func formatNumber(v float64, k dataset.Kind) string {
	if k == dataset.KindInt {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
