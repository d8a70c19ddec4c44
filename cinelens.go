// Package cinelens provides the data core for a movie dashboard: load a
// tabular movie dataset once at startup, then answer filter/sort/top-N
// queries with summary aggregates.
//
// Usage:
//
//	import (
//	    "github.com/cinelens-org/cinelens/dataset"
//	    "github.com/cinelens-org/cinelens/query"
//	)
//
//	ds, err := dataset.Load("movies.csv")
//	...
//	q := query.NewQuery()
//	q.Filters = []query.Filter{{Field: "rating", Op: query.OpGe, Value: 80}}
//	q.Sort = &query.Sort{Field: "rating", Desc: true}
//	q.Limit = 10
//	rs, err := query.Run(ds, q)
//
// The Dataset is immutable after load and safe to share across concurrent
// readers. Queries are pure reads returning a derived ResultSet; they
// never reach back into the source. Rendering is out of scope — a
// separate presentation layer turns ResultSets into charts and tables.
package cinelens
