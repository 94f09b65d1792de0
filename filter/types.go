package filter

// Operation identifies a filtering operation applied to a single field.
// The set is closed: parsers reject tags outside it and builders fail with
// an unsupported-operation error on anything they do not recognize.
type Operation string

const (
	// Comparison operations
	OpEquals             Operation = "EQUALS"
	OpNotEquals          Operation = "NOT_EQUALS"
	OpGreaterThan        Operation = "GREATER_THAN"
	OpGreaterThanOrEqual Operation = "GREATER_THAN_OR_EQUAL"
	OpLessThan           Operation = "LESS_THAN"
	OpLessThanOrEqual    Operation = "LESS_THAN_OR_EQUAL"

	// String matching operations.
	// OpLike always compares case-insensitively by lower-casing both sides,
	// regardless of Criterion.CaseSensitive. Use OpStartsWith, OpEndsWith or
	// OpContains when the flag must be honored.
	OpLike       Operation = "LIKE"
	OpILike      Operation = "ILIKE"
	OpStartsWith Operation = "STARTS_WITH"
	OpEndsWith   Operation = "ENDS_WITH"
	OpContains   Operation = "CONTAINS"

	// Membership operations
	OpIn    Operation = "IN"
	OpNotIn Operation = "NOT_IN"

	// Null checks
	OpIsNull    Operation = "IS_NULL"
	OpIsNotNull Operation = "IS_NOT_NULL"

	// Range operations
	OpBetween Operation = "BETWEEN"

	// Date operations
	OpDateEquals  Operation = "DATE_EQUALS"
	OpDateBefore  Operation = "DATE_BEFORE"
	OpDateAfter   Operation = "DATE_AFTER"
	OpDateBetween Operation = "DATE_BETWEEN"
)

// Operations lists every supported operation tag.
// Used by Parse to validate incoming requests.
var Operations = []Operation{
	OpEquals, OpNotEquals,
	OpGreaterThan, OpGreaterThanOrEqual, OpLessThan, OpLessThanOrEqual,
	OpLike, OpILike, OpStartsWith, OpEndsWith, OpContains,
	OpIn, OpNotIn,
	OpIsNull, OpIsNotNull,
	OpBetween,
	OpDateEquals, OpDateBefore, OpDateAfter, OpDateBetween,
}

// Valid reports whether op is one of the supported operation tags.
func (op Operation) Valid() bool {
	for _, known := range Operations {
		if op == known {
			return true
		}
	}
	return false
}

// MultiValued reports whether op reads Criterion.Values instead of
// Criterion.Value.
func (op Operation) MultiValued() bool {
	switch op {
	case OpIn, OpNotIn, OpBetween, OpDateBetween:
		return true
	default:
		return false
	}
}

// Criterion is a single filterable condition: a field navigation path, an
// operation and its operand(s).
//
// Field may navigate nested attributes with dot notation (e.g.
// "profile.address.city"); each segment resolves one level deeper from the
// entity root.
//
// Single-operand operations read Value, multi-operand operations (IN, NOT_IN,
// BETWEEN, DATE_BETWEEN) read Values, and the null checks read neither.
// BETWEEN and DATE_BETWEEN require exactly two Values: inclusive lower bound
// first, inclusive upper bound second. Bounds are never reordered; a lower
// bound above the upper bound is a caller error and simply matches nothing.
type Criterion struct {
	Field         string    `json:"field" msgpack:"field"`
	Operation     Operation `json:"operation" msgpack:"operation"`
	Value         any       `json:"value,omitempty" msgpack:"value,omitempty"`
	Values        []any     `json:"values,omitempty" msgpack:"values,omitempty"`
	CaseSensitive bool      `json:"caseSensitive,omitempty" msgpack:"case_sensitive,omitempty"`
	Negate        bool      `json:"negate,omitempty" msgpack:"negate,omitempty"`
}

// Group is an ordered collection of criteria combined by one internal
// logical operator. An empty group matches everything.
type Group struct {
	Filters []Criterion `json:"filters" msgpack:"filters"`

	// UseAndOperator selects AND (true) or OR (false) for combining Filters.
	// Independent of the combinators on the enclosing Request.
	UseAndOperator bool `json:"useAndOperator" msgpack:"use_and_operator"`
}

// NewGroup returns a Group over the given criteria with the AND combinator.
// The AND default is explicit here rather than relying on zero values.
func NewGroup(filters ...Criterion) Group {
	return Group{
		Filters:        filters,
		UseAndOperator: true,
	}
}

// Request is the top-level container handed to the engine: a flat list of
// criteria combined by one operator, plus a list of groups combined by
// another. A Request with no filters and no groups yields the match-all
// predicate.
//
// Requests are consumed once: construct (directly or via the factory
// helpers), optionally mutate with the Add methods, then hand to
// Engine.CreateSpecification. Not safe for concurrent mutation.
type Request struct {
	Filters []Criterion `json:"filters" msgpack:"filters"`

	// UseAndOperator selects AND (true) or OR (false) for combining Filters.
	UseAndOperator bool `json:"useAndOperator" msgpack:"use_and_operator"`

	FilterGroups []Group `json:"filterGroups" msgpack:"filter_groups"`

	// UseAndOperatorForGroups selects the combinator between groups. It also
	// joins the folded Filters predicate with the folded groups predicate;
	// there is no separate combinator for that join.
	UseAndOperatorForGroups bool `json:"useAndOperatorForGroups" msgpack:"use_and_operator_for_groups"`
}

// NewRequest returns an empty Request with both combinators set to AND.
// The AND defaults are explicit here rather than relying on zero values.
func NewRequest() *Request {
	return &Request{
		UseAndOperator:          true,
		UseAndOperatorForGroups: true,
	}
}

// AddFilter appends a single criterion to the request.
func (r *Request) AddFilter(c Criterion) {
	r.Filters = append(r.Filters, c)
}

// AddFilters appends all given criteria to the request, preserving order.
func (r *Request) AddFilters(criteria []Criterion) {
	r.Filters = append(r.Filters, criteria...)
}

// AddFilterGroup appends a filter group to the request.
func (r *Request) AddFilterGroup(g Group) {
	r.FilterGroups = append(r.FilterGroups, g)
}
