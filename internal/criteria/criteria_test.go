package criteria

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseField(t *testing.T) {
	for raw, want := range map[string]Field{
		"SUBJECT": FieldSubject,
		"planner": FieldPlanner,
		" Date ":  FieldDate,
		"time":    FieldTime,
	} {
		field, err := ParseField(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, field)
	}

	_, err := ParseField("venue")
	assert.Error(t, err)
	_, err = ParseField("")
	assert.Error(t, err)
}

func TestParseDirection(t *testing.T) {
	dir, err := ParseDirection("asc")
	require.NoError(t, err)
	assert.Equal(t, Asc, dir)

	dir, err = ParseDirection("DESC")
	require.NoError(t, err)
	assert.Equal(t, Desc, dir)

	_, err = ParseDirection("sideways")
	assert.Error(t, err)
}

func TestFieldColumns(t *testing.T) {
	assert.Equal(t, "subject", FieldSubject.Column())
	assert.Equal(t, "planner_full_name", FieldPlanner.Column())
	assert.Equal(t, "date", FieldDate.Column())
	assert.Equal(t, "time", FieldTime.Column())
}

func TestFieldMatches(t *testing.T) {
	assert.True(t, FieldSubject.Matches("Standup"))
	assert.False(t, FieldSubject.Matches("ab"), "below minimum length")

	assert.True(t, FieldPlanner.Matches("John Doe"))
	assert.False(t, FieldPlanner.Matches("Jon"), "below minimum length")

	assert.True(t, FieldDate.Matches("24.05.2023"))
	assert.False(t, FieldDate.Matches("24-05-2023"))
	assert.False(t, FieldDate.Matches("24x05y2023"), "separator must be a literal dot")

	assert.True(t, FieldTime.Matches("09:30"))
	assert.False(t, FieldTime.Matches("9:30"))
	assert.False(t, FieldTime.Matches("09:30:15"))
}

func TestFieldParseValue(t *testing.T) {
	v, err := FieldSubject.ParseValue("Standup")
	require.NoError(t, err)
	assert.Equal(t, "Standup", v)

	v, err = FieldDate.ParseValue("24.05.2023")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.May, 24, 0, 0, 0, 0, time.UTC), v)

	v, err = FieldTime.ParseValue("09:30")
	require.NoError(t, err)
	parsed, ok := v.(time.Time)
	require.True(t, ok)
	assert.Equal(t, 9, parsed.Hour())
	assert.Equal(t, 30, parsed.Minute())

	_, err = FieldDate.ParseValue("99.99.9999")
	assert.Error(t, err)
}

func TestPaginationOffset(t *testing.T) {
	page, size := 3, 10
	p := &Pagination{Page: &page, Size: &size}
	assert.Equal(t, 20, p.Offset())

	first := 1
	p = &Pagination{Page: &first, Size: &size}
	assert.Equal(t, 0, p.Offset())
}

func TestEventCriteriaEmpty(t *testing.T) {
	var c *EventCriteria
	assert.True(t, c.Empty())
	assert.True(t, (&EventCriteria{}).Empty())
	assert.False(t, (&EventCriteria{Filters: []Filter{{Field: FieldSubject, Value: "abc"}}}).Empty())
}
