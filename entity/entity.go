// Package entity describes queryable entities through Arrow schemas and
// resolves dot-delimited navigation paths against them.
//
// An entity's flat attributes are schema fields; nested relations are
// struct-typed fields whose children are resolved segment by segment:
//
//	schema := arrow.NewSchema([]arrow.Field{
//	    {Name: "id", Type: arrow.PrimitiveTypes.Int64},
//	    {Name: "profile", Type: arrow.StructOf(
//	        arrow.Field{Name: "firstName", Type: arrow.BinaryTypes.String},
//	    )},
//	}, nil)
//
//	f, err := entity.ResolvePath(schema, "profile.firstName")
package entity

import (
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
)

// Entity binds a name (the table or relation the execution layer queries)
// to the Arrow schema describing its attributes.
type Entity struct {
	// Name is the storage-level name (e.g., "users").
	// REQUIRED: MUST be non-empty.
	Name string

	// Schema describes the entity's attributes, with struct fields for
	// nested relations.
	// REQUIRED: MUST NOT be nil.
	Schema *arrow.Schema
}

// Field is a resolved navigation path: the ordered segments from the entity
// root and the Arrow type of the leaf attribute.
type Field struct {
	Segments []string
	Type     arrow.DataType
}

// Path returns the dotted form of the resolved path.
func (f *Field) Path() string {
	return strings.Join(f.Segments, ".")
}

// FieldResolutionError indicates a navigation path segment that does not
// exist on the type reached by the preceding segments.
type FieldResolutionError struct {
	Path    string
	Segment string
}

func (e *FieldResolutionError) Error() string {
	return "entity: cannot resolve segment " + e.Segment + " in path " + e.Path
}

// ResolvePath resolves a dot-delimited navigation path against a schema.
// Segments are resolved in order; flat attributes come from the schema's
// fields and deeper segments descend through struct types. The first
// segment that does not exist on the current type fails with
// *FieldResolutionError.
func ResolvePath(schema *arrow.Schema, path string) (*Field, error) {
	segments := strings.Split(path, ".")

	first, ok := lookupSchemaField(schema, segments[0])
	if !ok {
		return nil, &FieldResolutionError{Path: path, Segment: segments[0]}
	}

	current := first.Type
	for _, segment := range segments[1:] {
		st, ok := current.(*arrow.StructType)
		if !ok {
			return nil, &FieldResolutionError{Path: path, Segment: segment}
		}
		next, ok := st.FieldByName(segment)
		if !ok {
			return nil, &FieldResolutionError{Path: path, Segment: segment}
		}
		current = next.Type
	}

	return &Field{Segments: segments, Type: current}, nil
}

func lookupSchemaField(schema *arrow.Schema, name string) (arrow.Field, bool) {
	indices := schema.FieldIndices(name)
	if len(indices) == 0 {
		return arrow.Field{}, false
	}
	return schema.Field(indices[0]), true
}
