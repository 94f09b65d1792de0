package filter

// Factory helpers for the common request shapes. They carry no logic beyond
// setting fields and making the AND/OR defaults explicit.

// NewCriterion builds a single-operand criterion.
func NewCriterion(field string, op Operation, value any) Criterion {
	return Criterion{
		Field:     field,
		Operation: op,
		Value:     value,
	}
}

// NewMultiCriterion builds a multi-operand criterion (IN, NOT_IN, BETWEEN,
// DATE_BETWEEN).
func NewMultiCriterion(field string, op Operation, values []any) Criterion {
	return Criterion{
		Field:     field,
		Operation: op,
		Values:    values,
	}
}

// Equals builds an EQUALS criterion.
func Equals(field string, value any) Criterion {
	return NewCriterion(field, OpEquals, value)
}

// Like builds a LIKE criterion. The match is always case-insensitive; see
// the OpLike documentation.
func Like(field, value string) Criterion {
	return NewCriterion(field, OpLike, value)
}

// ILike builds an ILIKE (case-insensitive LIKE) criterion.
func ILike(field, value string) Criterion {
	return NewCriterion(field, OpILike, value)
}

// In builds an IN criterion over the given values.
func In(field string, values ...any) Criterion {
	return NewMultiCriterion(field, OpIn, values)
}

// Between builds a BETWEEN criterion with inclusive bounds.
func Between(field string, from, to any) Criterion {
	return NewMultiCriterion(field, OpBetween, []any{from, to})
}

// IsNull builds an IS_NULL criterion.
func IsNull(field string) Criterion {
	return Criterion{Field: field, Operation: OpIsNull}
}

// IsNotNull builds an IS_NOT_NULL criterion.
func IsNotNull(field string) Criterion {
	return Criterion{Field: field, Operation: OpIsNotNull}
}

// NewAndRequest builds a request combining the given criteria with AND.
func NewAndRequest(filters ...Criterion) *Request {
	r := NewRequest()
	r.Filters = filters
	return r
}

// NewOrRequest builds a request combining the given criteria with OR.
func NewOrRequest(filters ...Criterion) *Request {
	r := NewRequest()
	r.Filters = filters
	r.UseAndOperator = false
	return r
}

// NewAndGroup builds a group combining the given criteria with AND.
func NewAndGroup(filters ...Criterion) Group {
	return NewGroup(filters...)
}

// NewOrGroup builds a group combining the given criteria with OR.
func NewOrGroup(filters ...Criterion) Group {
	g := NewGroup(filters...)
	g.UseAndOperator = false
	return g
}

// NewGroupRequest builds a request holding only groups, combined with AND
// when useAndForGroups is true, OR otherwise.
func NewGroupRequest(useAndForGroups bool, groups ...Group) *Request {
	r := NewRequest()
	r.FilterGroups = groups
	r.UseAndOperatorForGroups = useAndForGroups
	return r
}
