package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planstore/event-api/internal/criteria"
	"github.com/planstore/event-api/internal/models"
)

func newEventRepoMock(t *testing.T) (*EventRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewEventRepository(sqlx.NewDb(db, "sqlmock")), mock, func() { db.Close() }
}

func eventRows(events ...models.Event) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "subject", "description", "planner_full_name", "date", "time", "venue"})
	for _, e := range events {
		rows.AddRow(e.ID, e.Subject, e.Description, e.PlannerFullName, e.Date, e.Time, e.Venue)
	}
	return rows
}

func sampleEvent(id int64, subject string) models.Event {
	return models.Event{
		ID:              id,
		Subject:         subject,
		PlannerFullName: "John Doe",
		Date:            time.Date(2030, time.May, 24, 0, 0, 0, 0, time.UTC),
		Time:            time.Date(0, time.January, 1, 9, 30, 0, 0, time.UTC),
		Venue:           "Main Hall",
	}
}

func intPtr(v int) *int { return &v }

func TestEventRepositoryCreateAssignsID(t *testing.T) {
	repo, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	event := sampleEvent(0, "Planning")
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO events (subject, description, planner_full_name, date, time, venue)")).
		WithArgs(event.Subject, event.Description, event.PlannerFullName, event.Date, "09:30:00", event.Venue).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	require.NoError(t, repo.Create(context.Background(), &event))
	assert.Equal(t, int64(7), event.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryFindByID(t *testing.T) {
	repo, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	stored := sampleEvent(3, "Planning")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, subject, description, planner_full_name, date, time, venue FROM events WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnRows(eventRows(stored))

	event, err := repo.FindByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, stored, *event)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, subject, description, planner_full_name, date, time, venue FROM events WHERE id = $1")).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.FindByID(context.Background(), 99)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryUpdate(t *testing.T) {
	repo, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	event := sampleEvent(3, "Planning")
	mock.ExpectExec("UPDATE events SET").
		WithArgs(event.ID, event.Subject, event.Description, event.PlannerFullName, event.Date, "09:30:00", event.Venue).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), &event))

	mock.ExpectExec("UPDATE events SET").
		WithArgs(event.ID, event.Subject, event.Description, event.PlannerFullName, event.Date, "09:30:00", event.Venue).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Update(context.Background(), &event), sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryDelete(t *testing.T) {
	repo, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM events WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), 3))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM events WHERE id = $1")).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), 99), sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryListAll(t *testing.T) {
	repo, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, subject, description, planner_full_name, date, time, venue FROM events ORDER BY id ASC")).
		WillReturnRows(eventRows(sampleEvent(1, "A"), sampleEvent(2, "B")))

	events, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, events, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryQueryFilters(t *testing.T) {
	repo, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	c := &criteria.EventCriteria{Filters: []criteria.Filter{
		{Field: criteria.FieldSubject, Value: "Planning"},
		{Field: criteria.FieldDate, Value: "24.05.2030"},
		{Field: criteria.FieldTime, Value: "09:30"},
	}}

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, subject, description, planner_full_name, date, time, venue FROM events "+
			"WHERE subject = $1 AND date = $2 AND time = $3 ORDER BY id ASC")).
		WithArgs("Planning", time.Date(2030, time.May, 24, 0, 0, 0, 0, time.UTC), "09:30:00").
		WillReturnRows(eventRows(sampleEvent(1, "Planning")))

	events, err := repo.Query(context.Background(), c)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Planning", events[0].Subject)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryQuerySortOrder(t *testing.T) {
	repo, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	c := &criteria.EventCriteria{Sorts: []criteria.Sort{
		{Field: criteria.FieldDate, Direction: criteria.Desc},
		{Field: criteria.FieldSubject, Direction: criteria.Asc},
	}}

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, subject, description, planner_full_name, date, time, venue FROM events "+
			"ORDER BY date DESC, subject ASC, id ASC")).
		WillReturnRows(eventRows())

	_, err := repo.Query(context.Background(), c)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryQueryPaginationArithmetic(t *testing.T) {
	repo, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	c := &criteria.EventCriteria{Pagination: &criteria.Pagination{Page: intPtr(2), Size: intPtr(2)}}

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, subject, description, planner_full_name, date, time, venue FROM events "+
			"ORDER BY id ASC LIMIT 2 OFFSET 2")).
		WillReturnRows(eventRows(sampleEvent(3, "C"), sampleEvent(4, "D")))

	events, err := repo.Query(context.Background(), c)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, int64(3), events[0].ID)
	assert.Equal(t, int64(4), events[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryQueryPastLastPageIsEmpty(t *testing.T) {
	repo, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	c := &criteria.EventCriteria{Pagination: &criteria.Pagination{Page: intPtr(4), Size: intPtr(2)}}

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY id ASC LIMIT 2 OFFSET 6")).
		WillReturnRows(eventRows())

	events, err := repo.Query(context.Background(), c)
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryCountUsesFiltersOnly(t *testing.T) {
	repo, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	c := &criteria.EventCriteria{
		Filters:    []criteria.Filter{{Field: criteria.FieldSubject, Value: "Planning"}},
		Sorts:      []criteria.Sort{{Field: criteria.FieldDate, Direction: criteria.Desc}},
		Pagination: &criteria.Pagination{Page: intPtr(2), Size: intPtr(2)},
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM events WHERE subject = $1")).
		WithArgs("Planning").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	total, err := repo.Count(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryQueryRejectsUnparsableFilter(t *testing.T) {
	repo, _, cleanup := newEventRepoMock(t)
	defer cleanup()

	c := &criteria.EventCriteria{Filters: []criteria.Filter{
		{Field: criteria.FieldDate, Value: "31.02.2030"},
	}}

	_, err := repo.Query(context.Background(), c)
	assert.Error(t, err)
}
