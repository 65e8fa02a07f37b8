package repository

import (
	"context"

	"github.com/nikhil-s1nha/productivity/internal/model"
)

// Repository is the interface for task collection storage. Every
// mutation rewrites the backing document in full before returning.
type Repository interface {
	// InsertTask prepends the task to the collection and persists.
	InsertTask(ctx context.Context, item model.TaskItem) error

	// ListTasks returns the collection in store order (newest first).
	ListTasks(ctx context.Context) ([]model.TaskItem, error)

	// GetTask returns the task with the given id; found is false when
	// the id is absent.
	GetTask(ctx context.Context, id string) (item model.TaskItem, found bool, err error)

	// ReplaceTask swaps the stored task with the same id and persists;
	// replaced is false when the id is absent.
	ReplaceTask(ctx context.Context, item model.TaskItem) (replaced bool, err error)

	// DeleteTasks removes every task whose id is in ids and persists.
	DeleteTasks(ctx context.Context, ids []string) (deleted int, err error)
}
