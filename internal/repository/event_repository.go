package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/planstore/event-api/internal/criteria"
	"github.com/planstore/event-api/internal/models"
)

// timeColumnLayout is the text form bound against the time column; Postgres
// casts it to TIME without ambiguity.
const timeColumnLayout = "15:04:05"

var eventColumns = []string{"id", "subject", "description", "planner_full_name", "date", "time", "venue"}

// EventRepository manages persistence for event records.
type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository constructs an EventRepository.
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts an unsaved event and fills in the assigned identifier.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	const query = `INSERT INTO events (subject, description, planner_full_name, date, time, venue)
        VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	row := r.db.QueryRowContext(ctx, query,
		event.Subject,
		event.Description,
		event.PlannerFullName,
		event.Date,
		event.Time.Format(timeColumnLayout),
		event.Venue,
	)
	if err := row.Scan(&event.ID); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// FindByID fetches an event by ID. Absence surfaces as sql.ErrNoRows.
func (r *EventRepository) FindByID(ctx context.Context, id int64) (*models.Event, error) {
	const query = `SELECT id, subject, description, planner_full_name, date, time, venue
        FROM events WHERE id = $1`
	var event models.Event
	if err := r.db.GetContext(ctx, &event, query, id); err != nil {
		return nil, err
	}
	return &event, nil
}

// Update replaces every stored field of an existing event.
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	const query = `UPDATE events SET subject = $2, description = $3, planner_full_name = $4,
        date = $5, time = $6, venue = $7 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query,
		event.ID,
		event.Subject,
		event.Description,
		event.PlannerFullName,
		event.Date,
		event.Time.Format(timeColumnLayout),
		event.Venue,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes an event by ID.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListAll returns every stored event in identifier order.
func (r *EventRepository) ListAll(ctx context.Context) ([]models.Event, error) {
	const query = `SELECT id, subject, description, planner_full_name, date, time, venue
        FROM events ORDER BY id ASC`
	events := []models.Event{}
	if err := r.db.SelectContext(ctx, &events, query); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// Query translates a validated criteria into one SELECT: equality filters
// AND-combined, sort keys applied in list order, offset/limit applied last.
// The identifier is always the final sort key so that equal rows keep a
// deterministic order across pages.
func (r *EventRepository) Query(ctx context.Context, c *criteria.EventCriteria) ([]models.Event, error) {
	builder, err := applyFilters(sq.Select(eventColumns...).From("events").PlaceholderFormat(sq.Dollar), c.Filters)
	if err != nil {
		return nil, err
	}

	for _, s := range c.Sorts {
		builder = builder.OrderBy(fmt.Sprintf("%s %s", s.Field.Column(), s.Direction))
	}
	builder = builder.OrderBy("id ASC")

	if p := c.Pagination; p != nil {
		builder = builder.Offset(uint64(p.Offset())).Limit(uint64(*p.Size))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build event query: %w", err)
	}

	events := []models.Event{}
	if err := r.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	return events, nil
}

// Count returns how many rows the criteria's filters match, ignoring its
// sort and pagination axes.
func (r *EventRepository) Count(ctx context.Context, c *criteria.EventCriteria) (int, error) {
	builder, err := applyFilters(sq.Select("COUNT(*)").From("events").PlaceholderFormat(sq.Dollar), c.Filters)
	if err != nil {
		return 0, err
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build event count query: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return total, nil
}

func applyFilters(builder sq.SelectBuilder, filters []criteria.Filter) (sq.SelectBuilder, error) {
	for _, f := range filters {
		value, err := bindValue(f)
		if err != nil {
			return builder, err
		}
		builder = builder.Where(sq.Eq{f.Field.Column(): value})
	}
	return builder, nil
}

// bindValue parses a filter value per its field and converts it into the
// representation bound against the column.
func bindValue(f criteria.Filter) (interface{}, error) {
	value, err := f.Field.ParseValue(f.Value)
	if err != nil {
		return nil, err
	}
	if f.Field == criteria.FieldTime {
		if tod, ok := value.(time.Time); ok {
			return tod.Format(timeColumnLayout), nil
		}
	}
	return value, nil
}
