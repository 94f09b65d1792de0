package entity

import (
	"errors"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
)

func userSchema() *arrow.Schema {
	return arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int64},
		{Name: "status", Type: arrow.BinaryTypes.String},
		{Name: "profile", Type: arrow.StructOf(
			arrow.Field{Name: "email", Type: arrow.BinaryTypes.String},
			arrow.Field{Name: "address", Type: arrow.StructOf(
				arrow.Field{Name: "city", Type: arrow.BinaryTypes.String},
				arrow.Field{Name: "zip", Type: arrow.BinaryTypes.String},
			)},
		)},
	}, nil)
}

func TestResolvePath(t *testing.T) {
	tests := []struct {
		path     string
		wantType arrow.Type
		wantLen  int
	}{
		{"id", arrow.INT64, 1},
		{"status", arrow.STRING, 1},
		{"profile.email", arrow.STRING, 2},
		{"profile.address", arrow.STRUCT, 2},
		{"profile.address.city", arrow.STRING, 3},
	}

	schema := userSchema()
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			f, err := ResolvePath(schema, tt.path)
			if err != nil {
				t.Fatalf("ResolvePath failed: %v", err)
			}
			if f.Type.ID() != tt.wantType {
				t.Errorf("type = %s, want %s", f.Type.ID(), tt.wantType)
			}
			if len(f.Segments) != tt.wantLen {
				t.Errorf("segments = %d, want %d", len(f.Segments), tt.wantLen)
			}
			if f.Path() != tt.path {
				t.Errorf("Path() = %s, want %s", f.Path(), tt.path)
			}
		})
	}
}

func TestResolvePathErrors(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		wantSegment string
	}{
		{"unknown root attribute", "bogus", "bogus"},
		{"unknown nested attribute", "profile.bogus.city", "bogus"},
		{"descent into leaf", "status.length", "length"},
		{"unknown leaf", "profile.address.country", "country"},
	}

	schema := userSchema()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolvePath(schema, tt.path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var fre *FieldResolutionError
			if !errors.As(err, &fre) {
				t.Fatalf("expected FieldResolutionError, got %T", err)
			}
			if fre.Segment != tt.wantSegment {
				t.Errorf("segment = %s, want %s", fre.Segment, tt.wantSegment)
			}
			if fre.Path != tt.path {
				t.Errorf("path = %s, want %s", fre.Path, tt.path)
			}
		})
	}
}
