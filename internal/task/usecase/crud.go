package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nikhil-s1nha/productivity/internal/model"
	"github.com/nikhil-s1nha/productivity/internal/task"
)

// Create adds a task directly, bypassing the importer.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.CreateTaskOutput{}, task.ErrEmptyTitle
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	item := model.TaskItem{
		ID:              uuid.NewString(),
		Title:           title,
		Note:            input.Note,
		CreatedAt:       time.Now(),
		DueDate:         input.DueDate,
		ScheduledStart:  input.ScheduledStart,
		DurationMinutes: input.DurationMinutes,
		Tags:            tags,
	}

	if err := uc.repo.InsertTask(ctx, item); err != nil {
		uc.l.Errorf(ctx, "uc.Create InsertTask: %v", err)
		return task.CreateTaskOutput{}, err
	}
	uc.notify()

	return task.CreateTaskOutput{Task: item}, nil
}

// List returns the task collection in store order, newest first.
func (uc *implUseCase) List(ctx context.Context) (task.ListTasksOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListTasksOutput{}, err
	}
	return task.ListTasksOutput{Tasks: tasks, Total: len(tasks)}, nil
}

// Detail retrieves a single task by id. Returns ErrTaskNotFound when
// the id is absent.
func (uc *implUseCase) Detail(ctx context.Context, id string) (task.DetailTaskOutput, error) {
	item, found, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetTask: %v", err)
		return task.DetailTaskOutput{}, err
	}
	if !found {
		return task.DetailTaskOutput{}, task.ErrTaskNotFound
	}
	return task.DetailTaskOutput{Task: item}, nil
}

// Update replaces the stored task with the matching id. ID and
// CreatedAt never change once assigned.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	existing, found, err := uc.repo.GetTask(ctx, input.Task.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	if !found {
		return task.UpdateTaskOutput{}, task.ErrTaskNotFound
	}

	item := input.Task
	item.ID = existing.ID
	item.CreatedAt = existing.CreatedAt
	if item.Tags == nil {
		item.Tags = []string{}
	}

	if _, err := uc.repo.ReplaceTask(ctx, item); err != nil {
		uc.l.Errorf(ctx, "uc.Update ReplaceTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	uc.notify()

	return task.UpdateTaskOutput{Task: item}, nil
}

// Toggle flips the completion flag of the matching task. An absent id
// is a silent miss, not an error.
func (uc *implUseCase) Toggle(ctx context.Context, id string) (task.ToggleTaskOutput, error) {
	item, found, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Toggle GetTask: %v", err)
		return task.ToggleTaskOutput{}, err
	}
	if !found {
		uc.l.Debugf(ctx, "uc.Toggle: id %s absent, silent miss", id)
		return task.ToggleTaskOutput{}, nil
	}

	item.IsCompleted = !item.IsCompleted
	if _, err := uc.repo.ReplaceTask(ctx, item); err != nil {
		uc.l.Errorf(ctx, "uc.Toggle ReplaceTask: %v", err)
		return task.ToggleTaskOutput{}, err
	}
	uc.notify()

	return task.ToggleTaskOutput{Task: item, Toggled: true}, nil
}

// Delete removes every task whose id matches.
func (uc *implUseCase) Delete(ctx context.Context, input task.DeleteTasksInput) (task.DeleteTasksOutput, error) {
	if len(input.IDs) == 0 {
		return task.DeleteTasksOutput{}, task.ErrNoIDs
	}

	deleted, err := uc.repo.DeleteTasks(ctx, input.IDs)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTasks: %v", err)
		return task.DeleteTasksOutput{}, err
	}

	if deleted > 0 {
		uc.notify()
	}
	return task.DeleteTasksOutput{Deleted: deleted}, nil
}
