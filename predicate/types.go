package predicate

import (
	"time"

	"github.com/apache/arrow-go/v18/arrow"
)

// CompareOp identifies an ordered or equality comparison.
// The constants double as the SQL operator symbols.
type CompareOp string

const (
	CompareEqual              CompareOp = "="
	CompareNotEqual           CompareOp = "<>"
	CompareLessThan           CompareOp = "<"
	CompareGreaterThan        CompareOp = ">"
	CompareLessThanOrEqual    CompareOp = "<="
	CompareGreaterThanOrEqual CompareOp = ">="
)

// ConjunctionOp identifies the logical operator of a Conjunction.
type ConjunctionOp string

const (
	ConjunctionAnd ConjunctionOp = "AND"
	ConjunctionOr  ConjunctionOp = "OR"
)

// Column references a resolved entity attribute. Segments holds the full
// navigation path from the entity root; Type is the attribute's Arrow type
// and drives literal formatting and casting during encoding.
type Column struct {
	Segments []string
	Type     arrow.DataType
}

// Predicate is an opaque, composable boolean condition over an entity.
// Predicates are constructed by builders and combined with And, Or and
// Negate; they are never evaluated here - an encoder renders them to SQL
// and the execution layer runs the result.
//
// Predicates are immutable after construction and safe to share between
// goroutines.
type Predicate interface {
	// predicateMarker prevents external implementations so encoders can
	// exhaustively type-switch over the node set.
	predicateMarker()
}

// MatchAll is the neutral predicate: it matches every record and is the
// identity element for And. Obtain it via Everything.
type MatchAll struct{}

// Comparison compares a column against a single literal value.
// A nil Value compares against SQL NULL literally ("col = NULL"); the
// resulting condition is never true, which mirrors the equality operator's
// null-as-value semantics rather than repairing them into IS NULL.
type Comparison struct {
	Column Column
	Op     CompareOp
	Value  any
}

// Match is a LIKE-family pattern condition. Pattern carries the wildcards
// already composed by the builder. When Lower is set both the column and
// the (pre-lowercased) pattern are folded with lower(). When ILike is set
// the dialect's ILIKE operator is used instead.
type Match struct {
	Column  Column
	Pattern string
	Lower   bool
	ILike   bool
}

// Membership tests whether the column's value is one of Values.
// Negated renders NOT IN.
type Membership struct {
	Column  Column
	Values  []any
	Negated bool
}

// Nullity tests the column for SQL NULL. Negated renders IS NOT NULL.
type Nullity struct {
	Column  Column
	Negated bool
}

// Range is an inclusive BETWEEN condition. Bounds keep the order the caller
// supplied; a lower bound above the upper bound matches nothing.
type Range struct {
	Column Column
	Lower  any
	Upper  any
}

// Conjunction combines child predicates with AND or OR.
type Conjunction struct {
	Op       ConjunctionOp
	Children []Predicate
}

// Not is the logical negation of its child.
type Not struct {
	Child Predicate
}

func (MatchAll) predicateMarker()     {}
func (*Comparison) predicateMarker()  {}
func (*Match) predicateMarker()       {}
func (*Membership) predicateMarker()  {}
func (*Nullity) predicateMarker()     {}
func (*Range) predicateMarker()       {}
func (*Conjunction) predicateMarker() {}
func (*Not) predicateMarker()         {}

// Everything returns the neutral match-all predicate.
func Everything() Predicate {
	return MatchAll{}
}

// And combines predicates with logical AND. MatchAll operands are dropped
// (AND identity), nested AND conjunctions are flattened into the parent,
// no operands or only MatchAll operands yield MatchAll and a single
// remaining operand is returned unwrapped. The simplifications keep
// combination with the neutral predicate behaviorally a no-op.
func And(preds ...Predicate) Predicate {
	children := make([]Predicate, 0, len(preds))
	for _, p := range preds {
		if p == nil {
			continue
		}
		if _, ok := p.(MatchAll); ok {
			continue
		}
		if c, ok := p.(*Conjunction); ok && c.Op == ConjunctionAnd {
			children = append(children, c.Children...)
			continue
		}
		children = append(children, p)
	}

	switch len(children) {
	case 0:
		return MatchAll{}
	case 1:
		return children[0]
	}
	return &Conjunction{Op: ConjunctionAnd, Children: children}
}

// Or combines predicates with logical OR. A MatchAll operand absorbs the
// whole disjunction (TRUE OR x is TRUE); a single operand is returned
// unwrapped, and nested OR conjunctions are flattened into the parent.
func Or(preds ...Predicate) Predicate {
	children := make([]Predicate, 0, len(preds))
	for _, p := range preds {
		if p == nil {
			continue
		}
		if _, ok := p.(MatchAll); ok {
			return MatchAll{}
		}
		if c, ok := p.(*Conjunction); ok && c.Op == ConjunctionOr {
			children = append(children, c.Children...)
			continue
		}
		children = append(children, p)
	}

	switch len(children) {
	case 0:
		return MatchAll{}
	case 1:
		return children[0]
	}
	return &Conjunction{Op: ConjunctionOr, Children: children}
}

// Negate returns the logical complement of p.
// Double negation unwraps to the original child.
func Negate(p Predicate) Predicate {
	if n, ok := p.(*Not); ok {
		return n.Child
	}
	return &Not{Child: p}
}

// Date is a calendar-date literal (no time component). It renders as a SQL
// DATE literal, while time.Time values render as TIMESTAMP.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf truncates t to its calendar date in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}
