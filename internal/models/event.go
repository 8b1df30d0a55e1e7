package models

import "time"

// Event represents a scheduled appointment stored in the events table.
// An unsaved event carries a zero ID; the store assigns the identifier on
// creation and it never changes afterwards.
type Event struct {
	ID              int64     `db:"id" json:"id"`
	Subject         string    `db:"subject" json:"subject"`
	Description     *string   `db:"description" json:"description,omitempty"`
	PlannerFullName string    `db:"planner_full_name" json:"planner_full_name"`
	Date            time.Time `db:"date" json:"date"`
	Time            time.Time `db:"time" json:"time"`
	Venue           string    `db:"venue" json:"venue"`
}

// Saved reports whether the event has been persisted.
func (e *Event) Saved() bool {
	return e.ID != 0
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
