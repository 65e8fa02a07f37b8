package model

import "time"

// TaskItem is the task entity produced by the importer and owned by the store.
//
// DueDate and ScheduledStart are mutually exclusive outcomes of a single
// import line: a resolved time-of-day lands in ScheduledStart, a date-only
// resolution lands in DueDate, never both.
type TaskItem struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Note            string     `json:"note"`
	CreatedAt       time.Time  `json:"createdAt"`
	DueDate         *time.Time `json:"dueDate,omitempty"`
	ScheduledStart  *time.Time `json:"scheduledStart,omitempty"`
	DurationMinutes *int       `json:"durationMinutes,omitempty"`
	IsCompleted     bool       `json:"isCompleted"`
	Tags            []string   `json:"tags"`
}
