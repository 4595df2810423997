package domain

import "time"

// Schedule priority values.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Schedule is a calendar entry. EndDate may equal StartDate.
type Schedule struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	IsAllDay    bool      `json:"isAllDay,omitempty"`
	Category    string    `json:"category"`
	Priority    string    `json:"priority,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ScheduleInput is the payload for creating a schedule entry.
type ScheduleInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	IsAllDay    bool      `json:"isAllDay,omitempty"`
	Category    string    `json:"category"`
	Priority    string    `json:"priority,omitempty"`
}

// SchedulePatch lists the fields an update is allowed to change.
type SchedulePatch struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	IsAllDay    *bool      `json:"isAllDay,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
}
