package criteria

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Field identifies an event attribute that can appear in a filter or sort
// criterion. The set is closed; every field maps to a storage column, a
// value-format pattern and a value parser.
type Field string

const (
	FieldSubject Field = "SUBJECT"
	FieldPlanner Field = "PLANNER"
	FieldDate    Field = "DATE"
	FieldTime    Field = "TIME"
)

const (
	dateLayout = "02.01.2006"
	timeLayout = "15:04"
)

type fieldSpec struct {
	column  string
	pattern *regexp.Regexp
	parse   func(string) (interface{}, error)
}

var fieldSpecs = map[Field]fieldSpec{
	FieldSubject: {
		column:  "subject",
		pattern: regexp.MustCompile(`^[\s\S]{3,150}$`),
		parse:   parseText,
	},
	FieldPlanner: {
		column:  "planner_full_name",
		pattern: regexp.MustCompile(`^[\s\S]{5,150}$`),
		parse:   parseText,
	},
	FieldDate: {
		column:  "date",
		pattern: regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`),
		parse: func(raw string) (interface{}, error) {
			return time.Parse(dateLayout, raw)
		},
	},
	FieldTime: {
		column:  "time",
		pattern: regexp.MustCompile(`^\d{2}:\d{2}$`),
		parse: func(raw string) (interface{}, error) {
			return time.Parse(timeLayout, raw)
		},
	},
}

func parseText(raw string) (interface{}, error) {
	return raw, nil
}

// ParseField resolves a raw field name, case-insensitively.
func ParseField(raw string) (Field, error) {
	f := Field(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := fieldSpecs[f]; !ok {
		return "", fmt.Errorf("unknown criteria field %q", raw)
	}
	return f, nil
}

// Known reports whether the field belongs to the closed set.
func (f Field) Known() bool {
	_, ok := fieldSpecs[f]
	return ok
}

// Column returns the storage column the field maps to.
func (f Field) Column() string {
	return fieldSpecs[f].column
}

// Matches reports whether a raw filter value satisfies the field's format pattern.
func (f Field) Matches(value string) bool {
	spec, ok := fieldSpecs[f]
	if !ok {
		return false
	}
	return spec.pattern.MatchString(value)
}

// ParseValue converts a raw filter value into the typed value compared against
// the field's column: pass-through for text fields, calendar date for DATE,
// minute-precision time for TIME.
func (f Field) ParseValue(raw string) (interface{}, error) {
	spec, ok := fieldSpecs[f]
	if !ok {
		return nil, fmt.Errorf("unknown criteria field %q", string(f))
	}
	v, err := spec.parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s value %q: %w", strings.ToLower(string(f)), raw, err)
	}
	return v, nil
}

// Direction orders a sort criterion.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// ParseDirection resolves a raw sort direction, case-insensitively.
func ParseDirection(raw string) (Direction, error) {
	switch Direction(strings.ToUpper(strings.TrimSpace(raw))) {
	case Asc:
		return Asc, nil
	case Desc:
		return Desc, nil
	default:
		return "", fmt.Errorf("unknown sort direction %q", raw)
	}
}

// Filter is a single "column equals value" constraint.
type Filter struct {
	Field Field
	Value string
}

// Sort is a single ordering instruction. Entries earlier in a sort list are
// primary keys; later entries break ties.
type Sort struct {
	Field     Field
	Direction Direction
}

// Pagination is a 1-based page window. Both members must be present and >= 1
// for the window to be valid; a partially specified window is rejected by the
// validator rather than silently defaulted.
type Pagination struct {
	Page *int
	Size *int
}

// Offset returns the zero-based row skip count.
func (p *Pagination) Offset() int {
	return (*p.Page - 1) * *p.Size
}

// EventCriteria aggregates the three independent query axes. A nil slice or
// nil pagination means "no constraint on that axis".
type EventCriteria struct {
	Filters    []Filter
	Sorts      []Sort
	Pagination *Pagination
}

// Empty reports whether no axis carries a constraint.
func (c *EventCriteria) Empty() bool {
	return c == nil || (len(c.Filters) == 0 && len(c.Sorts) == 0 && c.Pagination == nil)
}
