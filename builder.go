package queryspec

import (
	"fmt"
	"strings"
	"time"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/queryspec/queryspec-go/entity"
	"github.com/queryspec/queryspec-go/filter"
	"github.com/queryspec/queryspec-go/predicate"
)

// PredicateBuilder converts a single filter criterion into an executable
// predicate. Implementations MUST NOT evaluate the predicate or mutate the
// criterion - construction only.
//
// Multiple builders can be registered on an engine; the first whose
// Supports returns true handles the criterion.
type PredicateBuilder interface {
	// Supports reports whether this builder can handle the criterion.
	Supports(c filter.Criterion) bool

	// Build constructs the predicate for the criterion.
	// Every failure is reported as a *BuildError carrying the criterion's
	// field and operation.
	Build(c filter.Criterion) (predicate.Predicate, error)
}

// DefaultPredicateBuilder covers the full operation catalog against a fixed
// entity schema. Safe for concurrent use; the schema is read-only.
type DefaultPredicateBuilder struct {
	schema *arrow.Schema
}

// NewDefaultPredicateBuilder creates the default builder over the given
// entity schema.
func NewDefaultPredicateBuilder(schema *arrow.Schema) *DefaultPredicateBuilder {
	return &DefaultPredicateBuilder{schema: schema}
}

// Supports accepts any criterion carrying an operation tag. Validation of
// the tag itself happens in Build, so that an unknown operation surfaces as
// an unsupported-operation failure rather than a missing-builder one.
func (b *DefaultPredicateBuilder) Supports(c filter.Criterion) bool {
	return c.Operation != ""
}

// Build resolves the criterion's field path, dispatches on its operation
// and applies negation. Any failure comes back as a *BuildError.
func (b *DefaultPredicateBuilder) Build(c filter.Criterion) (predicate.Predicate, error) {
	field, err := entity.ResolvePath(b.schema, c.Field)
	if err != nil {
		return nil, wrapBuildError(c, err)
	}

	col := predicate.Column{Segments: field.Segments, Type: field.Type}
	pred, err := b.createPredicate(col, c)
	if err != nil {
		return nil, wrapBuildError(c, err)
	}

	if c.Negate {
		pred = predicate.Negate(pred)
	}
	return pred, nil
}

func (b *DefaultPredicateBuilder) createPredicate(col predicate.Column, c filter.Criterion) (predicate.Predicate, error) {
	switch c.Operation {
	case filter.OpEquals:
		return &predicate.Comparison{Column: col, Op: predicate.CompareEqual, Value: c.Value}, nil

	case filter.OpNotEquals:
		return &predicate.Comparison{Column: col, Op: predicate.CompareNotEqual, Value: c.Value}, nil

	case filter.OpGreaterThan:
		return b.ordered(col, c, predicate.CompareGreaterThan)

	case filter.OpGreaterThanOrEqual:
		return b.ordered(col, c, predicate.CompareGreaterThanOrEqual)

	case filter.OpLessThan:
		return b.ordered(col, c, predicate.CompareLessThan)

	case filter.OpLessThanOrEqual:
		return b.ordered(col, c, predicate.CompareLessThanOrEqual)

	case filter.OpLike:
		// Always case-insensitive: both sides are lower-cased regardless
		// of CaseSensitive. See the filter.OpLike documentation.
		pattern := strings.ToLower("%" + stringValue(c.Value) + "%")
		return &predicate.Match{Column: col, Pattern: pattern, Lower: true}, nil

	case filter.OpILike:
		return &predicate.Match{Column: col, Pattern: "%" + stringValue(c.Value) + "%", ILike: true}, nil

	case filter.OpStartsWith:
		return matchPredicate(col, c, stringValue(c.Value)+"%"), nil

	case filter.OpEndsWith:
		return matchPredicate(col, c, "%"+stringValue(c.Value)), nil

	case filter.OpContains:
		return matchPredicate(col, c, "%"+stringValue(c.Value)+"%"), nil

	case filter.OpIn:
		return b.membership(col, c, false)

	case filter.OpNotIn:
		return b.membership(col, c, true)

	case filter.OpIsNull:
		return &predicate.Nullity{Column: col}, nil

	case filter.OpIsNotNull:
		return &predicate.Nullity{Column: col, Negated: true}, nil

	case filter.OpBetween:
		if len(c.Values) != 2 {
			return nil, &ArityError{Operation: c.Operation, Got: len(c.Values), Want: 2}
		}
		return &predicate.Range{Column: col, Lower: c.Values[0], Upper: c.Values[1]}, nil

	case filter.OpDateEquals:
		return b.dateComparison(col, c, predicate.CompareEqual)

	case filter.OpDateBefore:
		return b.dateComparison(col, c, predicate.CompareLessThan)

	case filter.OpDateAfter:
		return b.dateComparison(col, c, predicate.CompareGreaterThan)

	case filter.OpDateBetween:
		if len(c.Values) != 2 {
			return nil, &ArityError{Operation: c.Operation, Got: len(c.Values), Want: 2}
		}
		lower, err := dateValue(c.Operation, c.Values[0])
		if err != nil {
			return nil, err
		}
		upper, err := dateValue(c.Operation, c.Values[1])
		if err != nil {
			return nil, err
		}
		return &predicate.Range{Column: col, Lower: lower, Upper: upper}, nil

	default:
		return nil, &UnsupportedOperationError{Operation: c.Operation}
	}
}

// ordered builds an ordered comparison, checking that the value's type is
// orderable against the field type.
func (b *DefaultPredicateBuilder) ordered(col predicate.Column, c filter.Criterion, op predicate.CompareOp) (predicate.Predicate, error) {
	if !orderable(col.Type, c.Value) {
		return nil, &TypeMismatchError{Field: c.Field, Operation: c.Operation, Value: c.Value}
	}
	return &predicate.Comparison{Column: col, Op: op, Value: c.Value}, nil
}

// membership builds IN/NOT_IN. An empty value list is surfaced as an arity
// failure rather than rendered into invalid SQL.
func (b *DefaultPredicateBuilder) membership(col predicate.Column, c filter.Criterion, negated bool) (predicate.Predicate, error) {
	if len(c.Values) == 0 {
		return nil, &ArityError{Operation: c.Operation, Got: 0, Want: 1, AtLeast: true}
	}
	return &predicate.Membership{Column: col, Values: c.Values, Negated: negated}, nil
}

// dateComparison builds single-value date operations, dispatching on the
// runtime type of the value.
func (b *DefaultPredicateBuilder) dateComparison(col predicate.Column, c filter.Criterion, op predicate.CompareOp) (predicate.Predicate, error) {
	value, err := dateValue(c.Operation, c.Value)
	if err != nil {
		return nil, err
	}
	return &predicate.Comparison{Column: col, Op: op, Value: value}, nil
}

// matchPredicate builds STARTS_WITH/ENDS_WITH/CONTAINS, honoring the
// criterion's CaseSensitive flag.
func matchPredicate(col predicate.Column, c filter.Criterion, pattern string) predicate.Predicate {
	if c.CaseSensitive {
		return &predicate.Match{Column: col, Pattern: pattern}
	}
	return &predicate.Match{Column: col, Pattern: strings.ToLower(pattern), Lower: true}
}

// dateValue normalizes a date operand to a predicate literal. Supported
// representations: time.Time (date-time), a "2006-01-02" string (calendar
// date), an RFC 3339 string (date-time), and int/int64 epoch milliseconds.
func dateValue(op filter.Operation, v any) (any, error) {
	switch val := v.(type) {
	case time.Time:
		return val, nil
	case predicate.Date:
		return val, nil
	case string:
		if t, err := time.Parse("2006-01-02", val); err == nil {
			return predicate.DateOf(t), nil
		}
		if t, err := time.Parse(time.RFC3339, val); err == nil {
			return t, nil
		}
		return nil, &UnsupportedTypeError{Operation: op, Value: v}
	case int:
		return time.UnixMilli(int64(val)).UTC(), nil
	case int64:
		return time.UnixMilli(val).UTC(), nil
	default:
		return nil, &UnsupportedTypeError{Operation: op, Value: v}
	}
}

// stringValue renders a single-operand value for pattern composition.
func stringValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// orderable reports whether value can participate in an ordered comparison
// against a field of the given Arrow type. nil is never orderable.
func orderable(t arrow.DataType, value any) bool {
	switch value.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return isNumericType(t)
	case string:
		return isTextType(t)
	case time.Time, predicate.Date:
		return isTemporalType(t)
	default:
		return false
	}
}

func isNumericType(t arrow.DataType) bool {
	if t == nil {
		return false
	}
	switch t.ID() {
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64,
		arrow.UINT8, arrow.UINT16, arrow.UINT32, arrow.UINT64,
		arrow.FLOAT16, arrow.FLOAT32, arrow.FLOAT64,
		arrow.DECIMAL128, arrow.DECIMAL256:
		return true
	default:
		return false
	}
}

func isTextType(t arrow.DataType) bool {
	if t == nil {
		return false
	}
	switch t.ID() {
	case arrow.STRING, arrow.LARGE_STRING:
		return true
	default:
		return false
	}
}

func isTemporalType(t arrow.DataType) bool {
	if t == nil {
		return false
	}
	switch t.ID() {
	case arrow.DATE32, arrow.DATE64, arrow.TIMESTAMP, arrow.TIME32, arrow.TIME64:
		return true
	default:
		return false
	}
}
