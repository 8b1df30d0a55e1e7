package dto

import (
	"fmt"
	"time"

	"github.com/planstore/event-api/internal/models"
)

// Dates cross the API boundary as dd.MM.yyyy text, times as HH:mm.
const (
	DateLayout = "02.01.2006"
	TimeLayout = "15:04"
)

// EventRequest is the wire payload for creating or replacing an event.
type EventRequest struct {
	Subject         string  `json:"subject" validate:"required,min=3,max=150"`
	Description     *string `json:"description,omitempty" validate:"omitempty,min=10,max=500"`
	PlannerFullName string  `json:"planner_full_name" validate:"required,min=5,max=150"`
	Date            string  `json:"date" validate:"required,datetime=02.01.2006"`
	Time            string  `json:"time" validate:"required,datetime=15:04"`
	Venue           string  `json:"venue" validate:"required,min=3,max=130"`
}

// EventResponse is the wire shape of a persisted event.
type EventResponse struct {
	ID              int64   `json:"id"`
	Subject         string  `json:"subject"`
	Description     *string `json:"description,omitempty"`
	PlannerFullName string  `json:"planner_full_name"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	Venue           string  `json:"venue"`
}

// ToModel converts the request into an unsaved Event, parsing the boundary
// date/time text into typed values.
func (r EventRequest) ToModel() (*models.Event, error) {
	date, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		return nil, fmt.Errorf("parse date %q: %w", r.Date, err)
	}
	tod, err := time.Parse(TimeLayout, r.Time)
	if err != nil {
		return nil, fmt.Errorf("parse time %q: %w", r.Time, err)
	}

	return &models.Event{
		Subject:         r.Subject,
		Description:     r.Description,
		PlannerFullName: r.PlannerFullName,
		Date:            date,
		Time:            tod,
		Venue:           r.Venue,
	}, nil
}

// FromModel renders a persisted event in the boundary formats.
func FromModel(e *models.Event) EventResponse {
	return EventResponse{
		ID:              e.ID,
		Subject:         e.Subject,
		Description:     e.Description,
		PlannerFullName: e.PlannerFullName,
		Date:            e.Date.Format(DateLayout),
		Time:            e.Time.Format(TimeLayout),
		Venue:           e.Venue,
	}
}

// FromModels renders a list of persisted events.
func FromModels(events []models.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for i := range events {
		out = append(out, FromModel(&events[i]))
	}
	return out
}
