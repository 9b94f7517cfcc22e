package guard

import (
	"fmt"
	"strconv"
	"time"
)

// ValueKind tags the loggable representation of a supplied value.
type ValueKind int

const (
	// ValueSingle is one string-ified value.
	ValueSingle ValueKind = iota
	// ValueList is a sequence of string-ified values.
	ValueList
	// ValueRange is an inclusive (low, high) pair of string-ified bounds.
	ValueRange
)

// WhereValue is the lossy but loggable form of whatever typed value was
// supplied to a builder method, independent of the field's real type.
type WhereValue struct {
	Kind   ValueKind
	Single string
	List   []string
	Low    string
	High   string
}

// Single builds the loggable form of a one-value condition.
func Single(v any) WhereValue {
	return WhereValue{Kind: ValueSingle, Single: FormatValue(v)}
}

// List builds the loggable form of a membership condition.
func List[T any](vs []T) WhereValue {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = FormatValue(v)
	}
	return WhereValue{Kind: ValueList, List: out}
}

// Range builds the loggable form of an inclusive range condition. The
// bounds are kept in the order supplied; no reordering is applied.
func Range(lo, hi any) WhereValue {
	return WhereValue{Kind: ValueRange, Low: FormatValue(lo), High: FormatValue(hi)}
}

// String renders the value for logging.
func (v WhereValue) String() string {
	switch v.Kind {
	case ValueList:
		return fmt.Sprintf("%v", v.List)
	case ValueRange:
		return fmt.Sprintf("[%s, %s]", v.Low, v.High)
	default:
		return v.Single
	}
}

// WhereParam records one condition or assignment call made on a builder:
// the field it targeted, the operation, and the loggable value form.
// A builder's ordered sequence of WhereParams is its condition log.
type WhereParam struct {
	Field string
	Op    Op
	Value WhereValue
}

// String renders the entry for logging.
func (p WhereParam) String() string {
	return fmt.Sprintf("%s %s %s", p.Field, p.Op, p.Value)
}

// FormatValue converts a Go value into its loggable string representation.
// It handles the value types generated fields can carry; everything else
// falls back to fmt formatting.
func FormatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case time.Time:
		return v.Format(time.RFC3339)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
