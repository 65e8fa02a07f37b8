package parser

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nikhil-s1nha/productivity/internal/model"
	"github.com/nikhil-s1nha/productivity/pkg/datemath"
)

// Parser converts one line of free text into a TaskItem. It holds no
// mutable state: parsing is a pure function of (line, keywords, now).
type Parser struct {
	dates *datemath.Resolver
}

// New creates a parser resolving dates against the given resolver's
// calendar location.
func New(dates *datemath.Resolver) *Parser {
	return &Parser{dates: dates}
}

// stages is the fixed extractor order. There is no backtracking: once
// a stage consumes and strips a span, later stages never see it.
var stages = []stage{
	extractTags,
	extractDuration,
	resolveDate,
	detectMeeting,
	resolveTimeRange,
	resolveClock,
	extractKeywords,
}

// Parse runs the extractor pipeline over a single line. The keywords
// map is a read-only snapshot of the keyword-to-category mapping.
// Blank and whitespace-only lines yield no task; any other line yields
// exactly one.
func (p *Parser) Parse(line string, keywords map[string]string, now time.Time) (model.TaskItem, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return model.TaskItem{}, false
	}

	d := &draft{
		title:    line,
		now:      now,
		keywords: keywords,
	}
	for _, apply := range stages {
		apply(p, d)
	}

	return p.build(d), true
}

// build assembles the final TaskItem from the resolved draft.
func (p *Parser) build(d *draft) model.TaskItem {
	// Meeting business rule: meetings are always timeboxed; fall back
	// to the default when nothing resolved a duration.
	if d.isMeeting && !d.hasDuration {
		d.duration = DefaultMeetingMinutes
		d.hasDuration = true
	}

	tags := make([]string, 0, len(d.catTags)+len(d.tags))
	tags = append(tags, d.catTags...)
	tags = append(tags, d.tags...)

	item := model.TaskItem{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(d.title),
		CreatedAt: d.now,
		Tags:      tags,
	}

	// A resolved time-of-day always lands in ScheduledStart; a
	// date-only resolution lands in DueDate. Never both.
	if d.hasStart {
		start := d.start
		item.ScheduledStart = &start
	} else if d.hasDay {
		day := d.day
		item.DueDate = &day
	}

	if d.hasDuration {
		minutes := d.duration
		item.DurationMinutes = &minutes
	}

	return item
}

// Lines splits raw multi-line import text into trimmed, non-empty
// lines — the unit of task production.
func Lines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
