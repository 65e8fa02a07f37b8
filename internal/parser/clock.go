package parser

import "regexp"

// clockRe matches a single clock token: bare hour, optional minutes,
// optional meridiem, e.g. 3pm, 10:45, 7:15a.
var clockRe = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?(am|pm|a|p)?\b`)

// resolveClock consumes the first single clock token when no time range
// already produced a start instant. The resolved time applies to the
// day selected by the date stage, or today when none was.
func resolveClock(p *Parser, d *draft) {
	if d.hasStart {
		return
	}

	m := clockRe.FindStringSubmatch(d.title)
	if m == nil {
		return
	}
	loc := clockRe.FindStringIndex(d.title)

	hour, err := clockHour(m[1], m[3])
	if err != nil {
		return
	}
	minute := clockMinute(m[2])

	day := d.day
	if !d.hasDay {
		day = p.dates.Today(d.now)
	}

	d.start = p.dates.At(day, hour, minute)
	d.hasStart = true
	d.stripSpan(loc[0], loc[1])
}
