package task

import "context"

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Import runs the line parser over every non-blank line of raw text
	// and persists one task per line. Each add is an independent
	// persisted mutation, not a batch transaction.
	Import(ctx context.Context, input ImportInput) (ImportOutput, error)

	// CRUD surface consumed by UI layers.
	Create(ctx context.Context, input CreateTaskInput) (CreateTaskOutput, error)
	List(ctx context.Context) (ListTasksOutput, error)
	Detail(ctx context.Context, id string) (DetailTaskOutput, error)
	Update(ctx context.Context, input UpdateTaskInput) (UpdateTaskOutput, error)
	Toggle(ctx context.Context, id string) (ToggleTaskOutput, error)
	Delete(ctx context.Context, input DeleteTasksInput) (DeleteTasksOutput, error)

	// Subscribe registers a listener notified synchronously after each
	// successful mutation.
	Subscribe(fn func())
}
