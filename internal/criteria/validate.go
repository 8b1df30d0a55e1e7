package criteria

import (
	"fmt"
	"strings"

	appErrors "github.com/planstore/event-api/pkg/errors"
)

// Validate checks every structural and per-field rule on an assembled
// criteria and reports all violations together rather than failing on the
// first. A nil axis is "unconstrained" and always valid; a nil criteria has
// no constraints at all.
func Validate(c *EventCriteria) error {
	if c == nil {
		return nil
	}

	var violations []string

	for i, f := range c.Filters {
		if !f.Field.Known() {
			violations = append(violations, fmt.Sprintf("filter %d: a filter criterion must name a known field", i+1))
			continue
		}
		if !f.Field.Matches(f.Value) {
			violations = append(violations, fmt.Sprintf(
				"filter %d: value %q does not match the format required for field %s", i+1, f.Value, f.Field))
		}
	}

	for i, s := range c.Sorts {
		if !s.Field.Known() {
			violations = append(violations, fmt.Sprintf("sort %d: a sort criterion must name a known field", i+1))
		}
		if s.Direction != Asc && s.Direction != Desc {
			violations = append(violations, fmt.Sprintf("sort %d: a sort criterion must have a direction of ASC or DESC", i+1))
		}
	}

	if p := c.Pagination; p != nil {
		switch {
		case p.Page == nil || p.Size == nil:
			violations = append(violations, "pagination must specify both page and size")
		default:
			if *p.Page < 1 {
				violations = append(violations, "pagination page must be greater than or equal to 1")
			}
			if *p.Size < 1 {
				violations = append(violations, "pagination size must be greater than or equal to 1")
			}
		}
	}

	if len(violations) > 0 {
		return appErrors.Clone(appErrors.ErrValidation,
			"criteria validation failed: "+strings.Join(violations, "; "))
	}

	return nil
}
