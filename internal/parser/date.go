package parser

import (
	"regexp"
	"time"
)

// Literal relative-day tokens, checked before any weekday matching.
var (
	todayRe     = regexp.MustCompile(`(?i)\btoday\b`)
	tomorrowRe  = regexp.MustCompile(`(?i)\b(?:tomorrow|tmrw|tmr)\b`)
	yesterdayRe = regexp.MustCompile(`(?i)\byesterday\b`)
)

// weekdayEntry pairs a canonical weekday with its accepted spellings.
// Longer spellings come first so the alternation never leaves a
// dangling suffix ("tuesday" must not match as "tue" + "sday").
type weekdayEntry struct {
	day  time.Weekday
	bare *regexp.Regexp
	next *regexp.Regexp
}

// weekdayTable is iterated Sunday through Saturday. Matching is
// first-match-wins across this table iteration order, not
// leftmost-in-string: with two weekday names on one line, the one
// earlier in the table wins regardless of position.
var weekdayTable = buildWeekdayTable()

func buildWeekdayTable() []weekdayEntry {
	spellings := []struct {
		day   time.Weekday
		forms string
	}{
		{time.Sunday, `sunday|sun`},
		{time.Monday, `monday|mon`},
		{time.Tuesday, `tuesday|tues|tue`},
		{time.Wednesday, `wednesday|weds|wed`},
		{time.Thursday, `thursday|thurs|thur|thu`},
		{time.Friday, `friday|fri`},
		{time.Saturday, `saturday|sat`},
	}

	table := make([]weekdayEntry, 0, len(spellings))
	for _, s := range spellings {
		table = append(table, weekdayEntry{
			day:  s.day,
			bare: regexp.MustCompile(`(?i)\b(?:` + s.forms + `)\b`),
			next: regexp.MustCompile(`(?i)\bnext\s+(?:` + s.forms + `)\b`),
		})
	}
	return table
}

// resolveDate consumes at most one relative-date span and resolves it
// to local midnight of the target day.
//
// Order of checks: literal today/tomorrow/yesterday tokens, then
// "next <weekday>" phrases, then bare weekday names. A bare weekday
// resolves strictly after now (today never counts); "next <weekday>"
// resolves to the first match on or after now plus seven days.
func resolveDate(p *Parser, d *draft) {
	type literal struct {
		re *regexp.Regexp
		fn func(time.Time) time.Time
	}
	literals := []literal{
		{todayRe, p.dates.Today},
		{tomorrowRe, p.dates.Tomorrow},
		{yesterdayRe, p.dates.Yesterday},
	}
	for _, l := range literals {
		if loc := l.re.FindStringIndex(d.title); loc != nil {
			d.day = l.fn(d.now)
			d.hasDay = true
			d.stripSpan(loc[0], loc[1])
			return
		}
	}

	for _, entry := range weekdayTable {
		if loc := entry.next.FindStringIndex(d.title); loc != nil {
			d.day = p.dates.WeekAfterWeekday(d.now, entry.day)
			d.hasDay = true
			d.stripSpan(loc[0], loc[1])
			return
		}
	}

	for _, entry := range weekdayTable {
		if loc := entry.bare.FindStringIndex(d.title); loc != nil {
			d.day = p.dates.NextWeekday(d.now, entry.day)
			d.hasDay = true
			d.stripSpan(loc[0], loc[1])
			return
		}
	}
}
