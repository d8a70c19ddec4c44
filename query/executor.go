package query

import (
	"log"
	"sort"
	"strings"

	"github.com/cinelens-org/cinelens/dataset"
)

// ============================================================================
// EXECUTOR — The Query Facade
// ============================================================================
// Entry point: Run(dataset, query, opts...)
//
// Pipeline:
//   1. Compile filters against the schema (unknown field / bad value → error)
//   2. Single-pass filter → index list into the Dataset (zero copy)
//   3. Stable sort (ties preserve load order)
//   4. Limit
//   5. Wrap in ResultSet
//
// Pure read — the Dataset is never mutated.
// ============================================================================

// Run evaluates a Query against a Dataset and returns a ResultSet.
//
// Options:
//   - WithDefaultSort(field, desc) — sort applied when query has none
//   - WithMaxLimit(n) — cap on returned rows
func Run(ds *dataset.Dataset, q Query, opts ...Option) (*ResultSet, error) {
	cfg := applyOptions(opts)

	preds, err := compile(q.Filters)
	if err != nil {
		return nil, err
	}

	srt := q.Sort
	if srt == nil {
		srt = cfg.defaultSort
	}
	var sortField dataset.Field
	if srt != nil {
		f, ok := dataset.FieldByKey(srt.Field)
		if !ok {
			return nil, &FieldError{Field: srt.Field}
		}
		if f.Kind == dataset.KindTerms {
			return nil, newQueryErrorf("cannot sort by terms field %q", f.Key)
		}
		sortField = f
	}

	// 2. Single pass — a record passes if it matches ALL predicates
	n := ds.Len()
	indices := make([]int, 0, n)
	for i := 0; i < n; i++ {
		m := ds.Movie(i)
		pass := true
		for _, p := range preds {
			if !p.match(m) {
				pass = false
				break
			}
		}
		if pass {
			indices = append(indices, i)
		}
	}

	// 3. Stable sort — equal keys keep load order
	if srt != nil {
		sortIndices(ds, indices, sortField, srt.Desc)
	}

	// 4. Limit
	limit := q.Limit
	if cfg.maxLimit > 0 && (limit == NoLimit || limit > cfg.maxLimit) {
		limit = cfg.maxLimit
	}
	if limit >= 0 && len(indices) > limit {
		indices = indices[:limit]
	}

	log.Printf("🔎 cinelens: %d of %d movies match (filters=%d, limit=%d)",
		len(indices), n, len(preds), q.Limit)

	return newResultSet(ds, indices), nil
}

// sortIndices orders the index list by the given field.
func sortIndices(ds *dataset.Dataset, indices []int, f dataset.Field, desc bool) {
	if f.Kind.Numeric() {
		sort.SliceStable(indices, func(a, b int) bool {
			va, _ := ds.Movie(indices[a]).Number(f.Key)
			vb, _ := ds.Movie(indices[b]).Number(f.Key)
			if desc {
				return va > vb
			}
			return va < vb
		})
		return
	}

	sort.SliceStable(indices, func(a, b int) bool {
		va, _ := ds.Movie(indices[a]).Text(f.Key)
		vb, _ := ds.Movie(indices[b]).Text(f.Key)
		la, lb := strings.ToLower(va), strings.ToLower(vb)
		if desc {
			return la > lb
		}
		return la < lb
	})
}
