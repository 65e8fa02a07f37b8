package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/nikhil-s1nha/productivity/internal/model"
	"github.com/nikhil-s1nha/productivity/internal/task/repository"
	pkgLog "github.com/nikhil-s1nha/productivity/pkg/log"
)

const tasksFilename = "tasks.json"

// implRepository stores the task collection in a single JSON document
// rewritten in full on every mutation. A mutex serializes the one
// logical writer behind the concurrent HTTP layer.
type implRepository struct {
	mu    sync.Mutex
	path  string
	tasks []model.TaskItem
	l     pkgLog.Logger
}

// New creates a file-backed task repository rooted at dataDir. A
// missing or unreadable document is not an error: the collection
// simply starts empty.
func New(dataDir string, l pkgLog.Logger) (repository.Repository, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	r := &implRepository{
		path: filepath.Join(dataDir, tasksFilename),
		l:    l,
	}
	r.load()
	return r, nil
}

func (r *implRepository) load() {
	ctx := context.Background()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.l.Warnf(ctx, "task store: failed to read %s, starting empty: %v", r.path, err)
		}
		return
	}

	var tasks []model.TaskItem
	if err := json.Unmarshal(data, &tasks); err != nil {
		r.l.Warnf(ctx, "task store: failed to decode %s, starting empty: %v", r.path, err)
		return
	}
	r.tasks = tasks
}

// persist rewrites the whole document atomically (write temp, rename).
// A write failure keeps the mutation in memory and is surfaced as a
// warning, never as a fatal error.
func (r *implRepository) persist(ctx context.Context) {
	data, err := json.MarshalIndent(r.tasks, "", "  ")
	if err != nil {
		r.l.Warnf(ctx, "task store: failed to encode tasks: %v", err)
		return
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		r.l.Warnf(ctx, "task store: failed to write %s, keeping in-memory state: %v", tmp, err)
		return
	}
	if err := os.Rename(tmp, r.path); err != nil {
		r.l.Warnf(ctx, "task store: failed to replace %s, keeping in-memory state: %v", r.path, err)
		_ = os.Remove(tmp)
	}
}

func (r *implRepository) InsertTask(ctx context.Context, item model.TaskItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks = append([]model.TaskItem{item}, r.tasks...)
	r.persist(ctx)
	return nil
}

func (r *implRepository) ListTasks(ctx context.Context) ([]model.TaskItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.TaskItem, len(r.tasks))
	copy(out, r.tasks)
	return out, nil
}

func (r *implRepository) GetTask(ctx context.Context, id string) (model.TaskItem, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.tasks {
		if t.ID == id {
			return t, true, nil
		}
	}
	return model.TaskItem{}, false, nil
}

func (r *implRepository) ReplaceTask(ctx context.Context, item model.TaskItem) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.tasks {
		if t.ID == item.ID {
			r.tasks[i] = item
			r.persist(ctx)
			return true, nil
		}
	}
	return false, nil
}

func (r *implRepository) DeleteTasks(ctx context.Context, ids []string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	kept := r.tasks[:0:0]
	for _, t := range r.tasks {
		if _, ok := drop[t.ID]; !ok {
			kept = append(kept, t)
		}
	}

	deleted := len(r.tasks) - len(kept)
	if deleted > 0 {
		r.tasks = kept
		r.persist(ctx)
	}
	return deleted, nil
}
