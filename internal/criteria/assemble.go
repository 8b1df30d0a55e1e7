package criteria

import (
	appErrors "github.com/planstore/event-api/pkg/errors"
)

// Assemble pairs the raw parallel lists supplied at the transport boundary
// into an EventCriteria. A field list and its value/direction list must both
// be present or both absent, and of equal length; anything else is an
// InvalidArgument before the criteria ever reaches the validator.
//
// Returns nil when no axis was supplied at all.
func Assemble(filterFields, filterValues, sortFields, sortDirections []string, page, size *int) (*EventCriteria, error) {
	filters, err := assembleFilters(filterFields, filterValues)
	if err != nil {
		return nil, err
	}

	sorts, err := assembleSorts(sortFields, sortDirections)
	if err != nil {
		return nil, err
	}

	var pagination *Pagination
	if page != nil || size != nil {
		pagination = &Pagination{Page: page, Size: size}
	}

	if filters == nil && sorts == nil && pagination == nil {
		return nil, nil
	}

	return &EventCriteria{Filters: filters, Sorts: sorts, Pagination: pagination}, nil
}

func assembleFilters(fields, values []string) ([]Filter, error) {
	if fields == nil && values == nil {
		return nil, nil
	}
	if fields == nil || values == nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidArgument,
			"a filter field cannot exist without its value and vice versa")
	}
	if len(fields) != len(values) {
		return nil, appErrors.Clone(appErrors.ErrInvalidArgument,
			"the number of filter fields and filter values must match")
	}

	filters := make([]Filter, 0, len(fields))
	for i := range fields {
		field, err := ParseField(fields[i])
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrInvalidArgument, err.Error())
		}
		filters = append(filters, Filter{Field: field, Value: values[i]})
	}
	return filters, nil
}

func assembleSorts(fields, directions []string) ([]Sort, error) {
	if fields == nil && directions == nil {
		return nil, nil
	}
	if fields == nil || directions == nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidArgument,
			"a sort field cannot exist without its direction and vice versa")
	}
	if len(fields) != len(directions) {
		return nil, appErrors.Clone(appErrors.ErrInvalidArgument,
			"the number of sort fields and sort directions must match")
	}

	sorts := make([]Sort, 0, len(fields))
	for i := range fields {
		field, err := ParseField(fields[i])
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrInvalidArgument, err.Error())
		}
		direction, err := ParseDirection(directions[i])
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrInvalidArgument, err.Error())
		}
		sorts = append(sorts, Sort{Field: field, Direction: direction})
	}
	return sorts, nil
}
