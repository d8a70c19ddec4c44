package query

import (
	"fmt"
)

// ============================================================================
// QUERY TYPES — The Facade's Input Contract
// ============================================================================
// A Query describes filter predicates (AND-combined), an optional stable
// sort, and a row limit. Evaluation is a pure read over the Dataset.
// ============================================================================

// Op is a filter comparison operator.
type Op string

const (
	OpEq       Op = "eq"
	OpNe       Op = "ne"
	OpLt       Op = "lt"
	OpLe       Op = "le"
	OpGt       Op = "gt"
	OpGe       Op = "ge"
	OpContains Op = "contains"
)

// ParseOp resolves an operator name, accepting the symbolic spellings
// used on the command line ("=", "!=", "<", "<=", ">", ">=").
func ParseOp(s string) (Op, error) {
	switch s {
	case "eq", "=", "==":
		return OpEq, nil
	case "ne", "!=":
		return OpNe, nil
	case "lt", "<":
		return OpLt, nil
	case "le", "<=":
		return OpLe, nil
	case "gt", ">":
		return OpGt, nil
	case "ge", ">=":
		return OpGe, nil
	case "contains", "has":
		return OpContains, nil
	}
	return "", newQueryErrorf("unknown operator %q", s)
}

// ordering reports whether the operator is a numeric comparison.
func (o Op) ordering() bool {
	switch o {
	case OpLt, OpLe, OpGt, OpGe:
		return true
	}
	return false
}

func (o Op) valid() bool {
	switch o {
	case OpEq, OpNe, OpLt, OpLe, OpGt, OpGe, OpContains:
		return true
	}
	return false
}

// Filter is a single predicate: field, operator, value.
// Numeric fields accept int/float values or numeric strings; text fields
// accept strings. Predicates in a Query are AND-combined.
type Filter struct {
	Field string
	Op    Op
	Value any
}

func (f Filter) String() string {
	return fmt.Sprintf("%s %s %v", f.Field, f.Op, f.Value)
}

// Sort names the sort key and direction. Sorting is stable: rows with
// equal keys keep their load order.
type Sort struct {
	Field string
	Desc  bool
}

// NoLimit disables row truncation.
const NoLimit = -1

// Query is the facade's input. Limit semantics: N >= 0 truncates to at
// most N rows (0 yields an empty result, not an error); NoLimit returns
// everything. Note the zero value of Limit is 0, so construct queries
// with NewQuery unless truncation to zero rows is intended.
type Query struct {
	Filters []Filter
	Sort    *Sort
	Limit   int
}

// NewQuery returns a Query with no filters, load-order sort, and no limit.
func NewQuery() Query {
	return Query{Limit: NoLimit}
}
