package datemath

import (
	"fmt"
	"strings"
	"time"
)

// Resolver turns relative day and clock tokens into absolute time.Time
// values against a fixed calendar location.
type Resolver struct {
	location *time.Location
}

// NewResolver creates a resolver for the given IANA timezone string,
// e.g. "America/New_York". An empty string means the system local zone.
func NewResolver(timezone string) (*Resolver, error) {
	if timezone == "" {
		return &Resolver{location: time.Local}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc}, nil
}

// Location returns the resolver's calendar location.
func (r *Resolver) Location() *time.Location {
	return r.location
}

// StartOfDay returns midnight at the start of the given day in the
// resolver's location.
func (r *Resolver) StartOfDay(t time.Time) time.Time {
	t = t.In(r.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.location)
}

// Today returns midnight of the base day.
func (r *Resolver) Today(base time.Time) time.Time {
	return r.StartOfDay(base)
}

// Tomorrow returns midnight of the day after base.
func (r *Resolver) Tomorrow(base time.Time) time.Time {
	return r.StartOfDay(base.AddDate(0, 0, 1))
}

// Yesterday returns midnight of the day before base.
func (r *Resolver) Yesterday(base time.Time) time.Time {
	return r.StartOfDay(base.AddDate(0, 0, -1))
}

// NextWeekday returns midnight of the next occurrence of the target
// weekday strictly after base. If base already falls on the target
// weekday, the result is one week out.
func (r *Resolver) NextWeekday(base time.Time, target time.Weekday) time.Time {
	base = base.In(r.location)
	daysUntil := int(target-base.Weekday()+7) % 7
	if daysUntil == 0 {
		daysUntil = 7
	}
	return r.StartOfDay(base.AddDate(0, 0, daysUntil))
}

// WeekAfterWeekday resolves "next <weekday>" phrasing: the first calendar
// match of the target weekday on or after base plus seven days.
func (r *Resolver) WeekAfterWeekday(base time.Time, target time.Weekday) time.Time {
	shifted := base.In(r.location).AddDate(0, 0, 7)
	daysUntil := int(target-shifted.Weekday()+7) % 7
	return r.StartOfDay(shifted.AddDate(0, 0, daysUntil))
}

// At places a wall-clock time onto the calendar day of the given date.
func (r *Resolver) At(day time.Time, hour, minute int) time.Time {
	day = day.In(r.location)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, r.location)
}

// ResolveHour normalizes a 12-hour clock hour using its meridiem marker.
// With an explicit marker: 12am maps to 0, 12pm stays 12, other pm hours
// add 12. Without a marker the token defaults to PM — the quick-entry
// convention that bare small hours mean afternoon/evening — so hours 1-7
// shift to 13-19 while 8 and later are taken literally.
func ResolveHour(hour int, meridiem string) int {
	switch strings.ToLower(meridiem) {
	case "am", "a":
		if hour == 12 {
			return 0
		}
		return hour
	case "pm", "p":
		if hour == 12 {
			return 12
		}
		if hour < 12 {
			return hour + 12
		}
		return hour
	default:
		if hour >= 1 && hour <= 7 {
			return hour + 12
		}
		return hour
	}
}
