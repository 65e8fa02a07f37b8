package parser

import (
	"regexp"
	"strconv"
)

var durationRe = regexp.MustCompile(`\[(\d+)([mh])\]`)

// extractDuration consumes the first bracketed duration token, e.g.
// [25m] or [1h]. Extra duration tokens on the same line stay in the
// title untouched.
func extractDuration(p *Parser, d *draft) {
	loc := durationRe.FindStringSubmatchIndex(d.title)
	if loc == nil {
		return
	}

	amount, err := strconv.Atoi(d.title[loc[2]:loc[3]])
	if err != nil {
		return
	}
	if d.title[loc[4]:loc[5]] == "h" {
		amount *= 60
	}

	d.duration = amount
	d.hasDuration = true
	d.stripSpan(loc[0], loc[1])
}
