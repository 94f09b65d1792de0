// Package filter defines the serializable data model for dynamic filtering:
// the operation catalog, single criteria, criterion groups and the top-level
// specification request consumed by the engine.
//
// The types here are pure values with no behavior beyond construction and
// mutation helpers. They are designed for transport: a search endpoint can
// accept a Request as JSON, hand it to queryspec.Engine and run the
// resulting predicate against storage.
//
// # Building requests
//
// Factory helpers cover the common shapes:
//
//	req := filter.NewAndRequest(
//	    filter.Equals("status", "ACTIVE"),
//	    filter.Between("age", 18, 65),
//	)
//
// Grouped criteria keep their own combinator, independent of the request:
//
//	req := filter.NewGroupRequest(true,
//	    filter.NewOrGroup(
//	        filter.Like("firstName", "John"),
//	        filter.Like("lastName", "John"),
//	    ),
//	    filter.NewAndGroup(filter.Equals("isActive", true)),
//	)
//
// # Defaults
//
// Both combinators default to AND. The default lives in the constructors
// (NewRequest, NewGroup) and in JSON decoding of absent keys; a zero-value
// Request combines with OR and is almost never what callers want.
//
// # Wire formats
//
// Parse and Marshal handle JSON. For a compact binary form (msgpack with
// zstd compression) see the queryspec root package's EncodeRequest and
// DecodeRequest.
package filter
