package predicate

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
)

// DuckDBEncoder renders predicates to DuckDB SQL syntax.
type DuckDBEncoder struct {
	opts *EncoderOptions
}

// NewDuckDBEncoder creates a new DuckDB SQL encoder.
// If opts is nil, default options are used.
func NewDuckDBEncoder(opts *EncoderOptions) *DuckDBEncoder {
	if opts == nil {
		opts = &EncoderOptions{}
	}
	return &DuckDBEncoder{opts: opts}
}

// UnsupportedValueError indicates a literal value the encoder cannot render.
type UnsupportedValueError struct {
	Value any
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("predicate: cannot encode value of type %T", e.Value)
}

// EncodeWhere renders the WHERE clause body for a predicate.
// The match-all predicate renders as an empty string so callers can omit
// the WHERE clause entirely.
func (e *DuckDBEncoder) EncodeWhere(p Predicate) (string, error) {
	if p == nil {
		return "", nil
	}
	if _, ok := p.(MatchAll); ok {
		return "", nil
	}
	return e.Encode(p)
}

// Encode converts a single predicate to a SQL condition.
func (e *DuckDBEncoder) Encode(p Predicate) (string, error) {
	switch pr := p.(type) {
	case MatchAll:
		return "TRUE", nil
	case *Comparison:
		return e.encodeComparison(pr)
	case *Match:
		return e.encodeMatch(pr)
	case *Membership:
		return e.encodeMembership(pr)
	case *Nullity:
		return e.encodeNullity(pr)
	case *Range:
		return e.encodeRange(pr)
	case *Conjunction:
		return e.encodeConjunction(pr)
	case *Not:
		return e.encodeNot(pr)
	default:
		return "", fmt.Errorf("predicate: unknown predicate type %T", p)
	}
}

// encodeComparison encodes an equality or ordered comparison.
func (e *DuckDBEncoder) encodeComparison(c *Comparison) (string, error) {
	value, err := e.formatValue(c.Value)
	if err != nil {
		return "", err
	}
	return e.encodeColumn(c.Column) + " " + string(c.Op) + " " + value, nil
}

// encodeMatch encodes LIKE/ILIKE pattern conditions.
// Non-string columns are cast to VARCHAR before matching.
func (e *DuckDBEncoder) encodeMatch(m *Match) (string, error) {
	col := e.encodeColumn(m.Column)
	if !isStringType(m.Column.Type) {
		col = "CAST(" + col + " AS VARCHAR)"
	}

	if m.ILike {
		return col + " ILIKE " + quoteLiteral(m.Pattern), nil
	}
	if m.Lower {
		return "lower(" + col + ") LIKE " + quoteLiteral(m.Pattern), nil
	}
	return col + " LIKE " + quoteLiteral(m.Pattern), nil
}

// encodeMembership encodes IN/NOT IN conditions.
func (e *DuckDBEncoder) encodeMembership(m *Membership) (string, error) {
	values := make([]string, 0, len(m.Values))
	for _, v := range m.Values {
		formatted, err := e.formatValue(v)
		if err != nil {
			return "", err
		}
		values = append(values, formatted)
	}

	op := " IN "
	if m.Negated {
		op = " NOT IN "
	}

	return e.encodeColumn(m.Column) + op + "(" + strings.Join(values, ", ") + ")", nil
}

// encodeNullity encodes IS NULL / IS NOT NULL conditions.
func (e *DuckDBEncoder) encodeNullity(n *Nullity) (string, error) {
	if n.Negated {
		return e.encodeColumn(n.Column) + " IS NOT NULL", nil
	}
	return e.encodeColumn(n.Column) + " IS NULL", nil
}

// encodeRange encodes an inclusive BETWEEN condition.
func (e *DuckDBEncoder) encodeRange(r *Range) (string, error) {
	lower, err := e.formatValue(r.Lower)
	if err != nil {
		return "", err
	}
	upper, err := e.formatValue(r.Upper)
	if err != nil {
		return "", err
	}
	return e.encodeColumn(r.Column) + " BETWEEN " + lower + " AND " + upper, nil
}

// encodeConjunction encodes AND/OR conjunctions.
func (e *DuckDBEncoder) encodeConjunction(c *Conjunction) (string, error) {
	parts := make([]string, 0, len(c.Children))
	for _, child := range c.Children {
		encoded, err := e.Encode(child)
		if err != nil {
			return "", err
		}
		parts = append(parts, encoded)
	}

	if len(parts) == 0 {
		return "TRUE", nil
	}
	if len(parts) == 1 {
		return parts[0], nil
	}

	return "(" + strings.Join(parts, " "+string(c.Op)+" ") + ")", nil
}

// encodeNot encodes logical negation.
func (e *DuckDBEncoder) encodeNot(n *Not) (string, error) {
	child, err := e.Encode(n.Child)
	if err != nil {
		return "", err
	}
	return "NOT (" + child + ")", nil
}

// encodeColumn renders a column reference as quoted dotted identifiers.
// The full dotted path is the key for expression and name mapping.
func (e *DuckDBEncoder) encodeColumn(c Column) string {
	path := strings.Join(c.Segments, ".")

	// Check for expression mapping first (takes precedence)
	if e.opts.ColumnExpressions != nil {
		if expr, ok := e.opts.ColumnExpressions[path]; ok {
			return expr
		}
	}

	segments := c.Segments
	if e.opts.ColumnMapping != nil {
		if mapped, ok := e.opts.ColumnMapping[path]; ok {
			segments = strings.Split(mapped, ".")
		}
	}

	quoted := make([]string, len(segments))
	for i, seg := range segments {
		quoted[i] = quoteIdentifier(seg)
	}
	return strings.Join(quoted, ".")
}

// formatValue formats a literal as DuckDB SQL.
func (e *DuckDBEncoder) formatValue(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "NULL", nil
	case bool:
		if val {
			return "TRUE", nil
		}
		return "FALSE", nil
	case string:
		return quoteLiteral(val), nil
	case int:
		return strconv.Itoa(val), nil
	case int8:
		return strconv.FormatInt(int64(val), 10), nil
	case int16:
		return strconv.FormatInt(int64(val), 10), nil
	case int32:
		return strconv.FormatInt(int64(val), 10), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case uint:
		return strconv.FormatUint(uint64(val), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(val), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(val), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(val), 10), nil
	case uint64:
		return strconv.FormatUint(val, 10), nil
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64), nil
	case time.Time:
		return formatTimestamp(val), nil
	case Date:
		return "DATE '" + fmt.Sprintf("%04d-%02d-%02d", val.Year, int(val.Month), val.Day) + "'", nil
	case []byte:
		var sb strings.Builder
		sb.WriteString("'\\x")
		for _, b := range val {
			sb.WriteString(fmt.Sprintf("%02x", b))
		}
		sb.WriteString("'")
		return sb.String(), nil
	default:
		return "", &UnsupportedValueError{Value: v}
	}
}

// formatTimestamp formats a time.Time as a TIMESTAMP literal in UTC with
// microsecond precision when needed.
func formatTimestamp(t time.Time) string {
	t = t.UTC()
	formatted := t.Format("2006-01-02 15:04:05")
	if ns := t.Nanosecond(); ns != 0 {
		formatted = fmt.Sprintf("%s.%06d", formatted, ns/1000)
	}
	return "TIMESTAMP '" + formatted + "'"
}

// isStringType reports whether the Arrow type holds text.
func isStringType(t arrow.DataType) bool {
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
