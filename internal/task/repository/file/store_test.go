package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nikhil-s1nha/productivity/internal/model"
	pkgLog "github.com/nikhil-s1nha/productivity/pkg/log"
)

func newTask(id, title string) model.TaskItem {
	return model.TaskItem{
		ID:        id,
		Title:     title,
		CreatedAt: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		Tags:      []string{},
	}
}

func TestInsertPrependsNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo, err := New(t.TempDir(), pkgLog.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, id := range []string{"a", "b", "c"} {
		if err := repo.InsertTask(ctx, newTask(id, "task "+id)); err != nil {
			t.Fatalf("InsertTask(%s): %v", id, err)
		}
	}

	tasks, err := repo.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("got %d tasks, want 3", len(tasks))
	}
	for i, want := range []string{"c", "b", "a"} {
		if tasks[i].ID != want {
			t.Errorf("tasks[%d].ID = %q, want %q", i, tasks[i].ID, want)
		}
	}
}

func TestPersistAndReload(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	repo, err := New(dir, pkgLog.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	due := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)
	task := newTask("t1", "essay")
	task.DueDate = &due
	task.Tags = []string{"History"}
	if err := repo.InsertTask(ctx, task); err != nil {
		t.Fatalf("InsertTask: %v", err)
	}

	// A fresh repository over the same directory must see the task.
	reloaded, err := New(dir, pkgLog.NewNop())
	if err != nil {
		t.Fatalf("New (reload): %v", err)
	}
	got, found, err := reloaded.GetTask(ctx, "t1")
	if err != nil || !found {
		t.Fatalf("GetTask after reload: found=%v err=%v", found, err)
	}
	if got.Title != "essay" {
		t.Errorf("Title = %q, want %q", got.Title, "essay")
	}
	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Errorf("DueDate = %v, want %v", got.DueDate, due)
	}
	if len(got.Tags) != 1 || got.Tags[0] != "History" {
		t.Errorf("Tags = %v, want [History]", got.Tags)
	}
}

func TestGetTaskMissing(t *testing.T) {
	ctx := context.Background()
	repo, err := New(t.TempDir(), pkgLog.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, found, err := repo.GetTask(ctx, "nope")
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if found {
		t.Errorf("found unexpected task")
	}
}

func TestReplaceTask(t *testing.T) {
	ctx := context.Background()
	repo, err := New(t.TempDir(), pkgLog.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := repo.InsertTask(ctx, newTask("t1", "before")); err != nil {
		t.Fatalf("InsertTask: %v", err)
	}

	updated := newTask("t1", "after")
	updated.IsCompleted = true
	replaced, err := repo.ReplaceTask(ctx, updated)
	if err != nil {
		t.Fatalf("ReplaceTask: %v", err)
	}
	if !replaced {
		t.Fatalf("replaced = false, want true")
	}

	got, _, _ := repo.GetTask(ctx, "t1")
	if got.Title != "after" || !got.IsCompleted {
		t.Errorf("got %+v, want updated task", got)
	}

	replaced, err = repo.ReplaceTask(ctx, newTask("missing", "x"))
	if err != nil {
		t.Fatalf("ReplaceTask (missing): %v", err)
	}
	if replaced {
		t.Errorf("replaced a task that does not exist")
	}
}

func TestDeleteTasks(t *testing.T) {
	ctx := context.Background()
	repo, err := New(t.TempDir(), pkgLog.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, id := range []string{"a", "b", "c"} {
		if err := repo.InsertTask(ctx, newTask(id, "task "+id)); err != nil {
			t.Fatalf("InsertTask(%s): %v", id, err)
		}
	}

	deleted, err := repo.DeleteTasks(ctx, []string{"a", "c", "ghost"})
	if err != nil {
		t.Fatalf("DeleteTasks: %v", err)
	}
	if deleted != 2 {
		t.Errorf("deleted = %d, want 2", deleted)
	}

	tasks, _ := repo.ListTasks(ctx)
	if len(tasks) != 1 || tasks[0].ID != "b" {
		t.Errorf("remaining = %v, want only b", tasks)
	}
}

func TestCorruptDocumentStartsEmpty(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, tasksFilename), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	repo, err := New(dir, pkgLog.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tasks, err := repo.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("got %d tasks from corrupt document, want 0", len(tasks))
	}
}
