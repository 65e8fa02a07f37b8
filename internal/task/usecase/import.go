package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/nikhil-s1nha/productivity/internal/model"
	"github.com/nikhil-s1nha/productivity/internal/parser"
	"github.com/nikhil-s1nha/productivity/internal/task"
)

// Import runs the line parser over every non-blank line of raw text
// and persists one task per line. Each produced task is an independent
// persisted mutation: a failure mid-import leaves earlier lines
// committed.
func (uc *implUseCase) Import(ctx context.Context, input task.ImportInput) (task.ImportOutput, error) {
	if strings.TrimSpace(input.RawText) == "" {
		return task.ImportOutput{}, task.ErrEmptyInput
	}

	// Read-only snapshot so the parser stays pure while the live map
	// keeps mutating.
	keywords, err := uc.keywords.Snapshot(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Import keyword snapshot failed, importing without categories: %v", err)
		keywords = map[string]string{}
	}

	now := time.Now()
	created := make([]model.TaskItem, 0)

	for _, line := range parser.Lines(input.RawText) {
		item, ok := uc.parser.Parse(line, keywords, now)
		if !ok {
			continue
		}

		if err := uc.repo.InsertTask(ctx, item); err != nil {
			uc.l.Errorf(ctx, "uc.Import InsertTask %q: %v", item.Title, err)
			continue
		}
		uc.notify()

		uc.tryCreateCalendarEvent(ctx, item)

		created = append(created, item)
	}

	uc.l.Infof(ctx, "uc.Import: created %d tasks from %d bytes of input", len(created), len(input.RawText))

	return task.ImportOutput{
		Tasks:     created,
		TaskCount: len(created),
	}, nil
}
