package datemath_test

import (
	"testing"
	"time"

	"github.com/nikhil-s1nha/productivity/pkg/datemath"
)

func TestNewResolver(t *testing.T) {
	_, err := datemath.NewResolver("America/New_York")
	if err != nil {
		t.Fatalf("unexpected error creating valid resolver: %v", err)
	}

	_, err = datemath.NewResolver("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}

	_, err = datemath.NewResolver("")
	if err != nil {
		t.Fatalf("empty timezone should mean local zone, got error: %v", err)
	}
}

func TestRelativeDays(t *testing.T) {
	r, _ := datemath.NewResolver("UTC")
	base := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC) // Tuesday
	startOfBase := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		got  time.Time
		want time.Time
	}{
		{"Today", r.Today(base), startOfBase},
		{"Tomorrow", r.Tomorrow(base), startOfBase.AddDate(0, 0, 1)},
		{"Yesterday", r.Yesterday(base), startOfBase.AddDate(0, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestNextWeekday(t *testing.T) {
	r, _ := datemath.NewResolver("UTC")
	base := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC) // Tuesday
	startOfBase := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		target time.Weekday
		want   time.Time
	}{
		{"Friday from Tuesday", time.Friday, startOfBase.AddDate(0, 0, 3)},
		{"Monday from Tuesday", time.Monday, startOfBase.AddDate(0, 0, 6)},
		// Today's weekday never counts: a full week out instead.
		{"Tuesday from Tuesday", time.Tuesday, startOfBase.AddDate(0, 0, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.NextWeekday(base, tt.target)
			if !got.Equal(tt.want) {
				t.Errorf("NextWeekday() got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWeekAfterWeekday(t *testing.T) {
	r, _ := datemath.NewResolver("UTC")
	base := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC) // Tuesday
	startOfBase := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		target time.Weekday
		want   time.Time
	}{
		// First match on/after base+7d (Tuesday 2026-03-17).
		{"Next Tuesday", time.Tuesday, startOfBase.AddDate(0, 0, 7)},
		{"Next Monday", time.Monday, startOfBase.AddDate(0, 0, 13)},
		{"Next Friday", time.Friday, startOfBase.AddDate(0, 0, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.WeekAfterWeekday(base, tt.target)
			if !got.Equal(tt.want) {
				t.Errorf("WeekAfterWeekday() got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAt(t *testing.T) {
	r, _ := datemath.NewResolver("UTC")
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	got := r.At(day, 15, 45)
	want := time.Date(2026, 3, 10, 15, 45, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("At() got %v, want %v", got, want)
	}
}

func TestResolveHour(t *testing.T) {
	tests := []struct {
		name     string
		hour     int
		meridiem string
		want     int
	}{
		{"Explicit am", 9, "am", 9},
		{"Explicit a", 7, "a", 7},
		{"12am is midnight", 12, "am", 0},
		{"Explicit pm", 3, "pm", 15},
		{"Explicit p", 11, "p", 23},
		{"12pm stays noon", 12, "pm", 12},
		{"Bare small hour defaults to PM", 3, "", 15},
		{"Bare 7 defaults to PM", 7, "", 19},
		{"Bare 8 stays literal", 8, "", 8},
		{"Bare 10 stays literal", 10, "", 10},
		{"Bare 12 stays noon", 12, "", 12},
		{"Bare 22 stays literal", 22, "", 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := datemath.ResolveHour(tt.hour, tt.meridiem)
			if got != tt.want {
				t.Errorf("ResolveHour(%d, %q) = %d, want %d", tt.hour, tt.meridiem, got, tt.want)
			}
		})
	}
}
