package parser_test

import (
	"testing"
	"time"

	"github.com/nikhil-s1nha/productivity/internal/parser"
	"github.com/nikhil-s1nha/productivity/pkg/datemath"
)

// now is a fixed Tuesday used as the parse reference instant.
var now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestParser(t *testing.T) *parser.Parser {
	t.Helper()
	dates, err := datemath.NewResolver("UTC")
	if err != nil {
		t.Fatalf("failed to create resolver: %v", err)
	}
	return parser.New(dates)
}

func utc(day, hour, minute int) *time.Time {
	ts := time.Date(2026, 3, day, hour, minute, 0, 0, time.UTC)
	return &ts
}

func intPtr(n int) *int { return &n }

func TestParse(t *testing.T) {
	p := newTestParser(t)
	keywords := map[string]string{"noori": "History"}

	tests := []struct {
		name         string
		line         string
		wantTitle    string
		wantTags     []string
		wantDue      *time.Time
		wantStart    *time.Time
		wantDuration *int
	}{
		{
			name:         "Inline tag and bracket duration",
			line:         "Finish essay #school [45m]",
			wantTitle:    "Finish essay",
			wantTags:     []string{"school"},
			wantDuration: intPtr(45),
		},
		{
			name:      "Relative day with clock time",
			line:      "Call dentist tomorrow 3pm",
			wantTitle: "Call dentist",
			wantTags:  []string{},
			wantStart: utc(11, 15, 0),
		},
		{
			name:         "Meeting with time range",
			line:         "rocketry meeting 10-11:30",
			wantTitle:    "rocketry",
			wantTags:     []string{"meeting", "meeting:rocketry"},
			wantStart:    utc(10, 10, 0),
			wantDuration: intPtr(90),
		},
		{
			name:      "Keyword category with bare weekday",
			line:      "noori essay due friday",
			wantTitle: "essay due",
			wantTags:  []string{"History"},
			wantDue:   utc(13, 0, 0),
		},
		{
			name:      "Plain line stays untouched",
			line:      "buy milk",
			wantTitle: "buy milk",
			wantTags:  []string{},
		},
		{
			name:         "Meeting abbreviation with next weekday",
			line:         "team mtg next monday",
			wantTitle:    "team",
			wantTags:     []string{"meeting", "meeting:team"},
			wantDue:      utc(23, 0, 0),
			wantDuration: intPtr(60),
		},
		{
			name:         "Bare range defaults evening hours",
			line:         "dinner 6-7",
			wantTitle:    "dinner",
			wantTags:     []string{},
			wantStart:    utc(10, 18, 0),
			wantDuration: intPtr(60),
		},
		{
			name:         "Bracket duration wins over range length",
			line:         "standup meeting 9am-9:30am [15m]",
			wantTitle:    "standup",
			wantTags:     []string{"meeting", "meeting:standup"},
			wantStart:    utc(10, 9, 0),
			wantDuration: intPtr(15),
		},
		{
			name:      "Two weekdays resolve in weekday order",
			line:      "review friday monday",
			wantTitle: "review friday",
			wantTags:  []string{},
			wantDue:   utc(16, 0, 0),
		},
		{
			name:      "Multiple inline tags all consumed",
			line:      "#work #urgent prep slides",
			wantTitle: "prep slides",
			wantTags:  []string{"work", "urgent"},
		},
		{
			name:      "Category tag comes before inline tag",
			line:      "noori reading #school",
			wantTitle: "reading",
			wantTags:  []string{"History", "school"},
		},
		{
			name:      "Explicit 12am resolves to midnight",
			line:      "flight 12am",
			wantTitle: "flight",
			wantTags:  []string{},
			wantStart: utc(10, 0, 0),
		},
		{
			name:      "Literal morning hour stays AM",
			line:      "flight 10am saturday",
			wantTitle: "flight",
			wantTags:  []string{},
			wantStart: utc(14, 10, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, ok := p.Parse(tt.line, keywords, now)
			if !ok {
				t.Fatalf("Parse(%q) produced no task", tt.line)
			}

			if item.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", item.Title, tt.wantTitle)
			}
			assertTags(t, item.Tags, tt.wantTags)
			assertTime(t, "DueDate", item.DueDate, tt.wantDue)
			assertTime(t, "ScheduledStart", item.ScheduledStart, tt.wantStart)
			assertInt(t, "DurationMinutes", item.DurationMinutes, tt.wantDuration)

			if item.DueDate != nil && item.ScheduledStart != nil {
				t.Errorf("both DueDate and ScheduledStart set; they are mutually exclusive")
			}
			if item.ID == "" {
				t.Errorf("ID not assigned")
			}
			if !item.CreatedAt.Equal(now) {
				t.Errorf("CreatedAt = %v, want %v", item.CreatedAt, now)
			}
			if item.IsCompleted {
				t.Errorf("new task must start incomplete")
			}
		})
	}
}

func TestParseBlankLine(t *testing.T) {
	p := newTestParser(t)

	for _, line := range []string{"", "   ", "\t"} {
		if _, ok := p.Parse(line, nil, now); ok {
			t.Errorf("Parse(%q) produced a task, want none", line)
		}
	}
}

// Consumed tokens never survive into the title: reparsing a produced
// title must not extract anything new.
func TestParseStripIsComplete(t *testing.T) {
	p := newTestParser(t)
	keywords := map[string]string{"noori": "History"}

	lines := []string{
		"Finish essay #school [45m]",
		"Call dentist tomorrow 3pm",
		"rocketry meeting 10-11:30",
		"noori essay due friday",
	}

	for _, line := range lines {
		first, ok := p.Parse(line, keywords, now)
		if !ok {
			t.Fatalf("Parse(%q) produced no task", line)
		}
		second, ok := p.Parse(first.Title, keywords, now)
		if !ok {
			t.Fatalf("reparse of %q produced no task", first.Title)
		}

		if second.Title != first.Title {
			t.Errorf("reparse changed title %q -> %q", first.Title, second.Title)
		}
		if len(second.Tags) != 0 {
			t.Errorf("reparse of %q extracted tags %v", first.Title, second.Tags)
		}
		if second.DueDate != nil || second.ScheduledStart != nil || second.DurationMinutes != nil {
			t.Errorf("reparse of %q resolved date/time fields", first.Title)
		}
	}
}

func TestParseNoKeywords(t *testing.T) {
	p := newTestParser(t)

	item, ok := p.Parse("noori essay", nil, now)
	if !ok {
		t.Fatalf("Parse produced no task")
	}
	if item.Title != "noori essay" {
		t.Errorf("Title = %q, want %q", item.Title, "noori essay")
	}
	if len(item.Tags) != 0 {
		t.Errorf("Tags = %v, want none", item.Tags)
	}
}

func TestLines(t *testing.T) {
	text := "buy milk\n\n  call mom  \n\t\nship release\n"

	got := parser.Lines(text)
	want := []string{"buy milk", "call mom", "ship release"}

	if len(got) != len(want) {
		t.Fatalf("Lines() returned %d lines, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Lines()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func assertTags(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("Tags = %v, want %v", got, want)
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Tags = %v, want %v", got, want)
			return
		}
	}
}

func assertTime(t *testing.T, field string, got, want *time.Time) {
	t.Helper()
	switch {
	case want == nil && got != nil:
		t.Errorf("%s = %v, want nil", field, got)
	case want != nil && got == nil:
		t.Errorf("%s = nil, want %v", field, want)
	case want != nil && !got.Equal(*want):
		t.Errorf("%s = %v, want %v", field, got, want)
	}
}

func assertInt(t *testing.T, field string, got, want *int) {
	t.Helper()
	switch {
	case want == nil && got != nil:
		t.Errorf("%s = %d, want nil", field, *got)
	case want != nil && got == nil:
		t.Errorf("%s = nil, want %d", field, *want)
	case want != nil && *got != *want:
		t.Errorf("%s = %d, want %d", field, *got, *want)
	}
}
