package queryspec

import (
	"fmt"
	"log/slog"

	"github.com/queryspec/queryspec-go/filter"
	"github.com/queryspec/queryspec-go/predicate"
)

// Engine orchestrates predicate construction: it resolves each criterion to
// a predicate through the registered builders and folds criterion and group
// predicates into one combined predicate per the request's combinators.
//
// The builder list is read-only after creation; an Engine is safe for
// concurrent use as long as each request is owned by a single goroutine.
type Engine struct {
	builders []PredicateBuilder
	logger   *slog.Logger
}

// NewEngine creates a specification engine from config.
//
// Returns error if config is invalid (no schema and no builders).
//
// Example:
//
//	engine, err := queryspec.NewEngine(queryspec.EngineConfig{
//	    Schema: userSchema,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pred, err := engine.CreateSpecification(req)
func NewEngine(config EngineConfig) (*Engine, error) {
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	builders := config.Builders
	if len(builders) == 0 {
		builders = []PredicateBuilder{NewDefaultPredicateBuilder(config.Schema)}
	}

	return &Engine{
		builders: builders,
		logger:   configLogger(config),
	}, nil
}

// CreateSpecification builds the combined predicate for a request.
//
// Individual filters fold with the request's UseAndOperator, each group
// folds with its own UseAndOperator, groups fold together with
// UseAndOperatorForGroups, and the same UseAndOperatorForGroups joins the
// filters part with the groups part (there is no separate combinator for
// that join). An empty request yields the match-all predicate; the result
// is never nil.
//
// Construction is all that happens here: every criterion's predicate is
// built regardless of the others, and any failure aborts the whole call
// with a *BuildError.
func (e *Engine) CreateSpecification(request *filter.Request) (predicate.Predicate, error) {
	if request == nil {
		return nil, ErrNilRequest
	}

	e.logger.Debug("creating specification",
		"filters", len(request.Filters),
		"groups", len(request.FilterGroups),
	)

	spec := predicate.Everything()

	if len(request.Filters) > 0 {
		filtersSpec, err := e.CreateSpecificationFromFilters(request.Filters, request.UseAndOperator)
		if err != nil {
			return nil, err
		}
		spec = predicate.And(spec, filtersSpec)
	}

	if len(request.FilterGroups) > 0 {
		groupsSpec, err := e.CreateSpecificationFromGroups(request.FilterGroups, request.UseAndOperatorForGroups)
		if err != nil {
			return nil, err
		}

		if len(request.Filters) == 0 {
			spec = groupsSpec
		} else if request.UseAndOperatorForGroups {
			spec = predicate.And(spec, groupsSpec)
		} else {
			spec = predicate.Or(spec, groupsSpec)
		}
	}

	return spec, nil
}

// CreateSpecificationFromFilters folds a criterion list into one predicate,
// left to right, using AND when useAndOperator is true and OR otherwise.
// An empty list yields the match-all predicate.
func (e *Engine) CreateSpecificationFromFilters(filters []filter.Criterion, useAndOperator bool) (predicate.Predicate, error) {
	if len(filters) == 0 {
		return predicate.Everything(), nil
	}

	spec, err := e.CreateSingleSpecification(filters[0])
	if err != nil {
		return nil, err
	}

	for _, c := range filters[1:] {
		next, err := e.CreateSingleSpecification(c)
		if err != nil {
			return nil, err
		}
		if useAndOperator {
			spec = predicate.And(spec, next)
		} else {
			spec = predicate.Or(spec, next)
		}
	}

	return spec, nil
}

// CreateSpecificationFromGroups folds each group with its own internal
// combinator, then folds the per-group predicates with useAndOperator.
// An empty list yields the match-all predicate.
func (e *Engine) CreateSpecificationFromGroups(groups []filter.Group, useAndOperator bool) (predicate.Predicate, error) {
	if len(groups) == 0 {
		return predicate.Everything(), nil
	}

	spec, err := e.CreateSpecificationFromFilters(groups[0].Filters, groups[0].UseAndOperator)
	if err != nil {
		return nil, err
	}

	for _, g := range groups[1:] {
		next, err := e.CreateSpecificationFromFilters(g.Filters, g.UseAndOperator)
		if err != nil {
			return nil, err
		}
		if useAndOperator {
			spec = predicate.And(spec, next)
		} else {
			spec = predicate.Or(spec, next)
		}
	}

	return spec, nil
}

// CreateSingleSpecification builds the predicate for one criterion using
// the first registered builder that supports it.
func (e *Engine) CreateSingleSpecification(c filter.Criterion) (predicate.Predicate, error) {
	e.logger.Debug("building criterion predicate",
		"field", c.Field,
		"operation", string(c.Operation),
	)

	for _, builder := range e.builders {
		if builder.Supports(c) {
			return builder.Build(c)
		}
	}

	return nil, wrapBuildError(c, &NoBuilderFoundError{Operation: c.Operation})
}

// CreateSimpleSpecification is sugar for a single EQUALS criterion on field.
func (e *Engine) CreateSimpleSpecification(field string, value any) (predicate.Predicate, error) {
	return e.CreateSingleSpecification(filter.Equals(field, value))
}
