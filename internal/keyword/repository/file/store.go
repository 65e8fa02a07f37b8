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

	"github.com/nikhil-s1nha/productivity/internal/keyword/repository"
	pkgLog "github.com/nikhil-s1nha/productivity/pkg/log"
)

const keywordsFilename = "keywords.json"

// implRepository stores the keyword map as a flat JSON object,
// rewritten in full on every mutation.
type implRepository struct {
	mu       sync.Mutex
	path     string
	keywords map[string]string
	l        pkgLog.Logger
}

// New creates a file-backed keyword repository rooted at dataDir. A
// missing or unreadable document means an empty map.
func New(dataDir string, l pkgLog.Logger) (repository.Repository, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	r := &implRepository{
		path:     filepath.Join(dataDir, keywordsFilename),
		keywords: make(map[string]string),
		l:        l,
	}
	r.load()
	return r, nil
}

func (r *implRepository) load() {
	ctx := context.Background()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.l.Warnf(ctx, "keyword store: failed to read %s, starting empty: %v", r.path, err)
		}
		return
	}

	var keywords map[string]string
	if err := json.Unmarshal(data, &keywords); err != nil {
		r.l.Warnf(ctx, "keyword store: failed to decode %s, starting empty: %v", r.path, err)
		return
	}
	if keywords != nil {
		r.keywords = keywords
	}
}

func (r *implRepository) persist(ctx context.Context) {
	data, err := json.MarshalIndent(r.keywords, "", "  ")
	if err != nil {
		r.l.Warnf(ctx, "keyword store: failed to encode keywords: %v", err)
		return
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		r.l.Warnf(ctx, "keyword store: failed to write %s, keeping in-memory state: %v", tmp, err)
		return
	}
	if err := os.Rename(tmp, r.path); err != nil {
		r.l.Warnf(ctx, "keyword store: failed to replace %s, keeping in-memory state: %v", r.path, err)
		_ = os.Remove(tmp)
	}
}

func (r *implRepository) Snapshot(ctx context.Context) (map[string]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]string, len(r.keywords))
	for k, v := range r.keywords {
		out[k] = v
	}
	return out, nil
}

func (r *implRepository) Set(ctx context.Context, key, category string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.keywords[key] = category
	r.persist(ctx)
	return nil
}

func (r *implRepository) Remove(ctx context.Context, key string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.keywords[key]; !ok {
		return false, nil
	}
	delete(r.keywords, key)
	r.persist(ctx)
	return true, nil
}
