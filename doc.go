// Package queryspec turns declarative, serializable filter requests into
// executable SQL predicates, so search endpoints with runtime-composed
// filtering never hand-write query-building code.
//
// The pipeline has three stages with strict boundaries:
//
//  1. A filter.Request describes WHAT to match: criteria (field path,
//     operation, operands) and criterion groups with AND/OR combinators.
//  2. The Engine walks the request and produces a predicate.Predicate -
//     an opaque, composable boolean expression tree. Nothing is evaluated;
//     construction is a pure function of the request.
//  3. An execution layer (see the repository package) encodes the predicate
//     to a WHERE clause and runs it against storage.
//
// # Quick start
//
//	schema := arrow.NewSchema([]arrow.Field{
//	    {Name: "status", Type: arrow.BinaryTypes.String},
//	    {Name: "age", Type: arrow.PrimitiveTypes.Int32},
//	}, nil)
//
//	engine, err := queryspec.NewEngine(queryspec.EngineConfig{Schema: schema})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	req := filter.NewAndRequest(
//	    filter.Equals("status", "ACTIVE"),
//	    filter.Between("age", 18, 65),
//	)
//
//	pred, err := engine.CreateSpecification(req)
//	// status = 'ACTIVE' AND age BETWEEN 18 AND 65
//
// # Field navigation
//
// Criterion fields are dot-delimited navigation paths resolved against the
// entity's Arrow schema; nested relations are struct-typed fields. The path
// "profile.address.city" descends two struct hops before comparing the
// leaf. An unknown segment fails predicate construction.
//
// # Custom builders
//
// The engine holds an ordered list of PredicateBuilder implementations and
// picks the first whose Supports accepts the criterion. Registering a
// custom builder ahead of the default one overrides handling for the
// criteria it claims:
//
//	engine, err := queryspec.NewEngine(queryspec.EngineConfig{
//	    Builders: []queryspec.PredicateBuilder{
//	        &auditFieldBuilder{},
//	        queryspec.NewDefaultPredicateBuilder(schema),
//	    },
//	})
//
// # Error handling
//
// Every failure while building a criterion's predicate - unresolvable field
// path, wrong operand arity, incompatible value type, unknown operation -
// surfaces as a *BuildError carrying the field and operation. There is no
// partial recovery: a failing criterion aborts the whole CreateSpecification
// call, and the caller decides the fallback (typically an empty result set).
//
// # Concurrency
//
// Engines and builders are read-only after creation and safe for concurrent
// use. Requests are not synchronized: each request must be constructed,
// mutated and submitted by one goroutine.
package queryspec
