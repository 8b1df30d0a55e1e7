package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/planstore/event-api/internal/criteria"
	"github.com/planstore/event-api/internal/dto"
	"github.com/planstore/event-api/internal/models"
	appErrors "github.com/planstore/event-api/pkg/errors"
)

type eventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id int64) (*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]models.Event, error)
	Query(ctx context.Context, c *criteria.EventCriteria) ([]models.Event, error)
	Count(ctx context.Context, c *criteria.EventCriteria) (int, error)
}

// EventService handles event use-cases: CRUD plus criteria-driven listing.
type EventService struct {
	repo      eventRepository
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
	now       func() time.Time
}

// NewEventService constructs the event service. metrics may be nil.
func NewEventService(repo eventRepository, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService) *EventService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventService{repo: repo, validator: validate, logger: logger, metrics: metrics, now: time.Now}
}

// Create registers a new event. Events planned for a date before the current
// date are rejected.
func (s *EventService) Create(ctx context.Context, req dto.EventRequest) (*models.Event, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload")
	}

	event, err := req.ToModel()
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidArgument, err.Error())
	}
	if event.Saved() {
		return nil, appErrors.Clone(appErrors.ErrInvalidArgument, "an event submitted for creation must not carry an identifier")
	}

	if event.Date.Before(s.today()) {
		return nil, appErrors.Clone(appErrors.ErrBusinessRule,
			fmt.Sprintf("an event cannot be planned for %s, a date before the current date", req.Date))
	}

	start := time.Now()
	err = s.repo.Create(ctx, event)
	s.metrics.ObserveDBQuery("event_create", time.Since(start))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create event")
	}

	s.logger.Info("event created", zap.Int64("id", event.ID), zap.String("subject", event.Subject))
	return event, nil
}

// Get returns an event by id.
func (s *EventService) Get(ctx context.Context, id int64) (*models.Event, error) {
	if id < 1 {
		return nil, appErrors.Clone(appErrors.ErrInvalidArgument, "event id must be a positive integer")
	}

	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("event with id = %d does not exist", id))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load event")
	}
	return event, nil
}

// Update fully replaces the stored fields of an existing event.
func (s *EventService) Update(ctx context.Context, id int64, req dto.EventRequest) (*models.Event, error) {
	if id < 1 {
		return nil, appErrors.Clone(appErrors.ErrInvalidArgument, "event id must be a positive integer")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload")
	}

	event, err := req.ToModel()
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidArgument, err.Error())
	}
	event.ID = id

	if err := s.repo.Update(ctx, event); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("event with id = %d does not exist", id))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update event")
	}

	s.logger.Info("event updated", zap.Int64("id", id))
	return event, nil
}

// Delete removes an event by id.
func (s *EventService) Delete(ctx context.Context, id int64) error {
	if id < 1 {
		return appErrors.Clone(appErrors.ErrInvalidArgument, "event id must be a positive integer")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("event with id = %d does not exist", id))
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete event")
	}

	s.logger.Info("event deleted", zap.Int64("id", id))
	return nil
}

// List returns events matching the supplied criteria. A nil or empty criteria
// lists everything; a constrained criteria is validated before it executes.
// Pagination metadata is reported only when the criteria paginates.
func (s *EventService) List(ctx context.Context, c *criteria.EventCriteria) ([]models.Event, *models.Pagination, error) {
	if c.Empty() {
		start := time.Now()
		events, err := s.repo.ListAll(ctx)
		s.metrics.ObserveDBQuery("event_list_all", time.Since(start))
		if err != nil {
			return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list events")
		}
		return events, nil, nil
	}

	if err := criteria.Validate(c); err != nil {
		return nil, nil, err
	}

	start := time.Now()
	events, err := s.repo.Query(ctx, c)
	s.metrics.ObserveDBQuery("event_query", time.Since(start))
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to query events")
	}

	var pagination *models.Pagination
	if c.Pagination != nil {
		start = time.Now()
		total, err := s.repo.Count(ctx, c)
		s.metrics.ObserveDBQuery("event_count", time.Since(start))
		if err != nil {
			return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count events")
		}
		pagination = &models.Pagination{Page: *c.Pagination.Page, PageSize: *c.Pagination.Size, TotalCount: total}
	}
	return events, pagination, nil
}

// today truncates the service clock to a calendar date.
func (s *EventService) today() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
