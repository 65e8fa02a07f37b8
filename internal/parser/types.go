package parser

import (
	"strings"
	"time"
)

// draft is the mutable partial record threaded through the extractor
// stages. Each stage consumes tokens from title and fills in fields;
// later stages never see a consumed span.
type draft struct {
	title string

	tags    []string // inline #tags plus meeting tags, append order
	catTags []string // keyword category tags, prepended at assembly

	isMeeting bool

	duration    int
	hasDuration bool

	day    time.Time // resolved calendar day, local midnight
	hasDay bool

	start    time.Time // resolved concrete instant
	hasStart bool

	now      time.Time
	keywords map[string]string
}

// stage is one extractor in the fixed pipeline order.
type stage func(p *Parser, d *draft)

// stripSpan removes the span [start,end) from the title and collapses
// the surrounding whitespace.
func (d *draft) stripSpan(start, end int) {
	d.title = collapse(d.title[:start] + " " + d.title[end:])
}

// collapse trims and squeezes runs of whitespace to single spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
