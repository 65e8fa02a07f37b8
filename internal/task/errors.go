package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput   = errors.New("import text is empty")
	ErrEmptyTitle   = errors.New("task title is empty")
	ErrTaskNotFound = errors.New("task not found")
	ErrNoIDs        = errors.New("no task ids given")
)
