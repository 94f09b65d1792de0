package filter

import (
	"encoding/json"
	"fmt"
)

// Parse parses a specification request from JSON.
// Combinator fields absent from the JSON default to AND, matching
// NewRequest; explicit false values are preserved.
//
// Error conditions:
//   - Invalid JSON syntax
//   - Unknown operation tag on any criterion
//   - Empty field on any criterion (null checks included)
func Parse(data []byte) (*Request, error) {
	req := NewRequest()
	if len(data) == 0 {
		return req, nil
	}

	if err := json.Unmarshal(data, req); err != nil {
		return nil, fmt.Errorf("filter: invalid JSON: %w", err)
	}

	for i, c := range req.Filters {
		if err := validateCriterion(c); err != nil {
			return nil, fmt.Errorf("filter: invalid filter %d: %w", i, err)
		}
	}
	for gi, g := range req.FilterGroups {
		for i, c := range g.Filters {
			if err := validateCriterion(c); err != nil {
				return nil, fmt.Errorf("filter: invalid filter %d in group %d: %w", i, gi, err)
			}
		}
	}

	return req, nil
}

// Marshal serializes a request to JSON.
func Marshal(req *Request) ([]byte, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("filter: marshal request: %w", err)
	}
	return data, nil
}

// UnmarshalJSON decodes a request, defaulting both combinators to AND when
// the corresponding keys are absent.
func (r *Request) UnmarshalJSON(data []byte) error {
	// Alias drops the custom unmarshaler; pointers distinguish absent keys
	// from explicit false.
	type alias Request
	aux := struct {
		*alias
		UseAndOperator          *bool `json:"useAndOperator"`
		UseAndOperatorForGroups *bool `json:"useAndOperatorForGroups"`
	}{alias: (*alias)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	r.UseAndOperator = aux.UseAndOperator == nil || *aux.UseAndOperator
	r.UseAndOperatorForGroups = aux.UseAndOperatorForGroups == nil || *aux.UseAndOperatorForGroups
	return nil
}

// UnmarshalJSON decodes a group, defaulting the combinator to AND when the
// key is absent.
func (g *Group) UnmarshalJSON(data []byte) error {
	type alias Group
	aux := struct {
		*alias
		UseAndOperator *bool `json:"useAndOperator"`
	}{alias: (*alias)(g)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	g.UseAndOperator = aux.UseAndOperator == nil || *aux.UseAndOperator
	return nil
}

func validateCriterion(c Criterion) error {
	if c.Field == "" {
		return fmt.Errorf("missing field")
	}
	if !c.Operation.Valid() {
		return fmt.Errorf("unknown operation %q", string(c.Operation))
	}
	return nil
}
