package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cinelens-org/cinelens/dataset"
)

// ============================================================================
// FILTERS — Predicate Compilation and Evaluation
// ============================================================================
// Filters are validated and coerced once against the schema, then applied
// in a single pass per record. Text comparison is case-insensitive.
// ============================================================================

// predicate is a Filter compiled against a schema field.
type predicate struct {
	field dataset.Field
	op    Op
	num   float64 // numeric fields
	text  string  // text/terms fields, lowercased
}

// compile validates filters against the schema and coerces their values.
func compile(filters []Filter) ([]predicate, error) {
	preds := make([]predicate, 0, len(filters))
	for _, flt := range filters {
		f, ok := dataset.FieldByKey(flt.Field)
		if !ok {
			return nil, &FieldError{Field: flt.Field}
		}
		if !flt.Op.valid() {
			return nil, newQueryErrorf("unknown operator %q", string(flt.Op))
		}

		p := predicate{field: f, op: flt.Op}
		if f.Kind.Numeric() {
			if flt.Op == OpContains {
				return nil, newQueryErrorf("operator %s does not apply to numeric field %q", flt.Op, f.Key)
			}
			v, err := coerceNumber(flt.Value)
			if err != nil {
				return nil, newQueryErrorf("field %q: %v", f.Key, err)
			}
			p.num = v
		} else {
			if flt.Op.ordering() {
				return nil, newQueryErrorf("operator %s does not apply to %s field %q", flt.Op, f.Kind, f.Key)
			}
			s, ok := flt.Value.(string)
			if !ok {
				return nil, newQueryErrorf("field %q expects a string value, got %T", f.Key, flt.Value)
			}
			p.text = strings.ToLower(strings.TrimSpace(s))
		}
		preds = append(preds, p)
	}
	return preds, nil
}

// match evaluates the predicate against one record.
func (p predicate) match(m dataset.Movie) bool {
	switch p.field.Kind {
	case dataset.KindText:
		s, _ := m.Text(p.field.Key)
		return matchText(strings.ToLower(s), p.op, p.text)

	case dataset.KindTerms:
		terms, _ := m.Terms(p.field.Key)
		return matchTerms(terms, p.op, p.text)

	default: // numeric
		v, _ := m.Number(p.field.Key)
		return matchNumber(v, p.op, p.num)
	}
}

func matchNumber(v float64, op Op, want float64) bool {
	switch op {
	case OpEq:
		return v == want
	case OpNe:
		return v != want
	case OpLt:
		return v < want
	case OpLe:
		return v <= want
	case OpGt:
		return v > want
	case OpGe:
		return v >= want
	}
	return false
}

func matchText(v string, op Op, want string) bool {
	switch op {
	case OpEq:
		return v == want
	case OpNe:
		return v != want
	case OpContains:
		return strings.Contains(v, want)
	}
	return false
}

// matchTerms applies set semantics: eq/contains match if any term does,
// ne matches only if no term equals the value.
func matchTerms(terms []string, op Op, want string) bool {
	switch op {
	case OpEq:
		for _, t := range terms {
			if strings.ToLower(t) == want {
				return true
			}
		}
		return false
	case OpNe:
		for _, t := range terms {
			if strings.ToLower(t) == want {
				return false
			}
		}
		return true
	case OpContains:
		for _, t := range terms {
			if strings.Contains(strings.ToLower(t), want) {
				return true
			}
		}
		return false
	}
	return false
}

// coerceNumber accepts native numeric values and numeric strings.
func coerceNumber(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot parse %q as a number", n)
		}
		return f, nil
	}
	return 0, fmt.Errorf("unsupported value type %T", v)
}
