// Package predicate defines the composable boolean predicate tree produced
// by the specification engine, and encoders that render it to SQL.
//
// A Predicate is an opaque value: builders construct it, And/Or/Negate
// combine it, and an Encoder turns it into the body of a WHERE clause. No
// evaluation happens in this package - execution belongs to the storage
// layer that receives the encoded SQL.
//
// # Composition
//
// Everything() is the neutral element: And drops it, Or is absorbed by it.
// This makes folding a list of conditions into one predicate a clean
// left-to-right reduction with no special empty case:
//
//	combined := predicate.Everything()
//	for _, p := range parts {
//	    combined = predicate.And(combined, p)
//	}
//
// # Encoding
//
// DuckDBEncoder renders DuckDB syntax. Column names can be remapped or
// replaced with SQL expressions through EncoderOptions:
//
//	enc := predicate.NewDuckDBEncoder(&predicate.EncoderOptions{
//	    ColumnMapping: map[string]string{"created": "created_at"},
//	    ColumnExpressions: map[string]string{
//	        "fullName": "CONCAT(first_name, ' ', last_name)",
//	    },
//	})
//	where, err := enc.EncodeWhere(pred)
//
// Implement the Encoder interface to target other SQL dialects.
package predicate
