package queryspec

import (
	"errors"
	"fmt"

	"github.com/queryspec/queryspec-go/filter"
)

// Standard errors returned by the queryspec package.
var (
	// ErrInvalidConfig indicates EngineConfig validation failed.
	ErrInvalidConfig = errors.New("invalid engine config")

	// ErrNilRequest indicates a nil specification request was passed to the engine.
	ErrNilRequest = errors.New("specification request cannot be nil")
)

// TypeMismatchError indicates a value whose type is incompatible with the
// comparability an operation requires (e.g., an ordered comparison against
// a value with no ordering relative to the field type).
type TypeMismatchError struct {
	Field     string
	Operation filter.Operation
	Value     any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("value of type %T is not comparable for %s on field %s",
		e.Value, e.Operation, e.Field)
}

// ArityError indicates a multi-value operation that received the wrong
// number of values.
type ArityError struct {
	Operation filter.Operation
	Got       int

	// Want is the exact required count, or the minimum when AtLeast is set.
	Want    int
	AtLeast bool
}

func (e *ArityError) Error() string {
	if e.AtLeast {
		return fmt.Sprintf("%s operation requires at least %d value(s), got %d",
			e.Operation, e.Want, e.Got)
	}
	return fmt.Sprintf("%s operation requires exactly %d values, got %d",
		e.Operation, e.Want, e.Got)
}

// UnsupportedTypeError indicates a date-family operation whose value is not
// one of the supported date representations (time.Time, a "2006-01-02" or
// RFC 3339 string, or int/int64 epoch milliseconds).
type UnsupportedTypeError struct {
	Operation filter.Operation
	Value     any
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported date type %T for %s operation", e.Value, e.Operation)
}

// UnsupportedOperationError indicates an operation tag the builder's
// dispatch does not recognize.
type UnsupportedOperationError struct {
	Operation filter.Operation
}

func (e *UnsupportedOperationError) Error() string {
	return "unsupported operation: " + string(e.Operation)
}

// NoBuilderFoundError indicates that no registered builder claims support
// for a criterion.
type NoBuilderFoundError struct {
	Operation filter.Operation
}

func (e *NoBuilderFoundError) Error() string {
	return "no builder found for operation: " + string(e.Operation)
}

// BuildError is the only error type that crosses the engine's public
// boundary. Every failure while building a single criterion's predicate is
// wrapped into one, carrying the field and operation for diagnostics; the
// underlying cause is available through errors.As/errors.Unwrap.
type BuildError struct {
	Field     string
	Operation filter.Operation
	Err       error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("error building specification for field %s (%s): %v",
		e.Field, e.Operation, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// wrapBuildError wraps err into a *BuildError for the given criterion,
// unless it already is one.
func wrapBuildError(c filter.Criterion, err error) error {
	var be *BuildError
	if errors.As(err, &be) {
		return err
	}
	return &BuildError{Field: c.Field, Operation: c.Operation, Err: err}
}
