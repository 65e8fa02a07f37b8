package usecase

import (
	"context"
	"time"

	"github.com/nikhil-s1nha/productivity/internal/model"
	"github.com/nikhil-s1nha/productivity/pkg/gcalendar"
)

// tryCreateCalendarEvent exports an imported task with a concrete
// start time as a calendar event. Failure is logged and non-fatal: the
// store is the source of truth, the calendar a best-effort mirror.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, item model.TaskItem) {
	if uc.calendar == nil || item.ScheduledStart == nil {
		return
	}

	minutes := 60
	if item.DurationMinutes != nil && *item.DurationMinutes > 0 {
		minutes = *item.DurationMinutes
	}

	start := *item.ScheduledStart
	_, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     item.Title,
		Description: item.Note,
		StartTime:   start,
		EndTime:     start.Add(time.Duration(minutes) * time.Minute),
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Import: calendar event for %q failed (non-fatal): %v", item.Title, err)
	}
}
