package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/planstore/event-api/internal/criteria"
	"github.com/planstore/event-api/internal/dto"
	"github.com/planstore/event-api/internal/models"
	appErrors "github.com/planstore/event-api/pkg/errors"
	"github.com/planstore/event-api/pkg/response"
)

type eventService interface {
	Create(ctx context.Context, req dto.EventRequest) (*models.Event, error)
	Get(ctx context.Context, id int64) (*models.Event, error)
	Update(ctx context.Context, id int64, req dto.EventRequest) (*models.Event, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, c *criteria.EventCriteria) ([]models.Event, *models.Pagination, error)
}

// EventHandler wires the event service to HTTP routes.
type EventHandler struct {
	service eventService
}

// NewEventHandler constructs an EventHandler.
func NewEventHandler(service eventService) *EventHandler {
	return &EventHandler{service: service}
}

// Register mounts the event routes on a router group.
func (h *EventHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/events", h.Create)
	rg.GET("/events", h.List)
	rg.GET("/events/:id", h.Get)
	rg.PUT("/events/:id", h.Update)
	rg.DELETE("/events/:id", h.Delete)
}

// Create godoc
// @Summary Register a new event
// @Tags Events
// @Accept json
// @Produce json
// @Param event body dto.EventRequest true "Event payload"
// @Success 201 {object} response.Envelope
// @Router /events [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrInvalidArgument, "invalid request body"))
		return
	}

	event, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.FromModel(event))
}

// Get godoc
// @Summary Get an event by id
// @Tags Events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} response.Envelope
// @Router /events/{id} [get]
func (h *EventHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	event, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.FromModel(event), nil)
}

// Update godoc
// @Summary Replace an existing event
// @Tags Events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param event body dto.EventRequest true "Event payload"
// @Success 200 {object} response.Envelope
// @Router /events/{id} [put]
func (h *EventHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrInvalidArgument, "invalid request body"))
		return
	}

	event, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.FromModel(event), nil)
}

// Delete godoc
// @Summary Delete an event by id
// @Tags Events
// @Param id path int true "Event ID"
// @Success 204
// @Router /events/{id} [delete]
func (h *EventHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// List godoc
// @Summary List events by criteria
// @Tags Events
// @Produce json
// @Param filter_field query []string false "Filter fields (SUBJECT, PLANNER, DATE, TIME), paired with filter_value"
// @Param filter_value query []string false "Filter values, paired with filter_field"
// @Param sort_field query []string false "Sort fields, paired with sort_direction"
// @Param sort_direction query []string false "Sort directions (ASC, DESC), paired with sort_field"
// @Param page query int false "1-based page number"
// @Param size query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /events [get]
func (h *EventHandler) List(c *gin.Context) {
	eventCriteria, err := assembleCriteria(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	events, pagination, err := h.service.List(c.Request.Context(), eventCriteria)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.FromModels(events), pagination)
}

func assembleCriteria(c *gin.Context) (*criteria.EventCriteria, error) {
	page, err := queryInt(c, "page")
	if err != nil {
		return nil, err
	}
	size, err := queryInt(c, "size")
	if err != nil {
		return nil, err
	}

	return criteria.Assemble(
		queryList(c, "filter_field", "filterField"),
		queryList(c, "filter_value", "filterValue"),
		queryList(c, "sort_field", "sortField"),
		queryList(c, "sort_direction", "sortDirection"),
		page, size,
	)
}

// queryList returns nil when the parameter was not supplied at all, so the
// assembly step can tell an absent axis from an empty one.
func queryList(c *gin.Context, preferred, fallback string) []string {
	if values, ok := c.GetQueryArray(preferred); ok {
		return values
	}
	if values, ok := c.GetQueryArray(fallback); ok {
		return values
	}
	return nil
}

func queryInt(c *gin.Context, name string) (*int, error) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidArgument, name+" must be an integer")
	}
	return &value, nil
}

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, appErrors.Clone(appErrors.ErrInvalidArgument, "event id must be a positive integer")
	}
	return id, nil
}
