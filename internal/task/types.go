package task

import (
	"time"

	"github.com/nikhil-s1nha/productivity/internal/model"
)

// ImportInput is the input for free-text task import.
type ImportInput struct {
	RawText string // Raw multi-line notes typed by the user
}

// ImportOutput is the result of a free-text import.
type ImportOutput struct {
	Tasks     []model.TaskItem
	TaskCount int
}

// CreateTaskInput is the input for creating a task directly.
type CreateTaskInput struct {
	Title           string
	Note            string
	DueDate         *time.Time
	ScheduledStart  *time.Time
	DurationMinutes *int
	Tags            []string
}

// CreateTaskOutput is the result of creating a task.
type CreateTaskOutput struct {
	Task model.TaskItem
}

// ListTasksOutput is the current task collection, newest first.
type ListTasksOutput struct {
	Tasks []model.TaskItem
	Total int
}

// DetailTaskOutput is a single task looked up by id.
type DetailTaskOutput struct {
	Task model.TaskItem
}

// UpdateTaskInput replaces the stored task with the matching id.
// ID and CreatedAt of the stored task are preserved.
type UpdateTaskInput struct {
	Task model.TaskItem
}

// UpdateTaskOutput is the result of an update.
type UpdateTaskOutput struct {
	Task model.TaskItem
}

// ToggleTaskOutput is the result of flipping a task's completion flag.
// Toggled is false when the id was absent (silent miss, not an error).
type ToggleTaskOutput struct {
	Task    model.TaskItem
	Toggled bool
}

// DeleteTasksInput is the input for bulk deletion.
type DeleteTasksInput struct {
	IDs []string
}

// DeleteTasksOutput reports how many tasks were removed.
type DeleteTasksOutput struct {
	Deleted int
}
