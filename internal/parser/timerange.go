package parser

import (
	"regexp"
	"strconv"

	"github.com/nikhil-s1nha/productivity/pkg/datemath"
)

// rangeRe matches a clock range like 10-11:30, 9am-10am or 6:15p-7p.
var rangeRe = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?(am|pm|a|p)?\s*-\s*(\d{1,2})(?::(\d{2}))?(am|pm|a|p)?\b`)

// resolveTimeRange consumes the first clock range in the title and
// turns it into a concrete start instant plus a duration. Both
// endpoints resolve against the day established by the date stage, or
// today when none was. End before start clamps the duration to zero.
func resolveTimeRange(p *Parser, d *draft) {
	m := rangeRe.FindStringSubmatch(d.title)
	if m == nil {
		return
	}
	loc := rangeRe.FindStringIndex(d.title)

	startHour, err := clockHour(m[1], m[3])
	if err != nil {
		return
	}
	endHour, err := clockHour(m[4], m[6])
	if err != nil {
		return
	}
	startMin := clockMinute(m[2])
	endMin := clockMinute(m[5])

	day := d.day
	if !d.hasDay {
		day = p.dates.Today(d.now)
	}

	start := p.dates.At(day, startHour, startMin)
	end := p.dates.At(day, endHour, endMin)

	minutes := int(end.Sub(start).Minutes())
	if minutes < 0 {
		minutes = 0
	}

	d.start = start
	d.hasStart = true
	if !d.hasDuration {
		d.duration = minutes
		d.hasDuration = true
	}
	d.stripSpan(loc[0], loc[1])
}

// clockHour converts a matched hour digit group plus optional meridiem
// into a 24-hour value. Hours outside 1-23 are rejected as malformed.
func clockHour(digits, meridiem string) (int, error) {
	h, err := strconv.Atoi(digits)
	if err != nil {
		return 0, err
	}
	if h < 1 || h > 23 {
		return 0, strconv.ErrRange
	}
	return datemath.ResolveHour(h, meridiem), nil
}

// clockMinute converts an optional minutes digit group, defaulting to 0.
func clockMinute(digits string) int {
	if digits == "" {
		return 0
	}
	m, err := strconv.Atoi(digits)
	if err != nil || m > 59 {
		return 0
	}
	return m
}
