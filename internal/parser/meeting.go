package parser

import (
	"regexp"
	"strings"
)

// meetingRe matches the standalone word "meeting" or "mtg", optionally
// capturing the single word immediately before it as the meeting type.
var meetingRe = regexp.MustCompile(`(?i)(?:([a-z0-9'&_-]+)\s+)?\b(meeting|mtg)\b`)

// detectMeeting classifies the line as a meeting when it contains the
// standalone word "meeting" or "mtg". The literal word is stripped; a
// captured preceding word becomes the meeting type. Tags "meeting" and
// "meeting:<type>" are appended.
func detectMeeting(p *Parser, d *draft) {
	loc := meetingRe.FindStringSubmatchIndex(d.title)
	if loc == nil {
		return
	}

	d.isMeeting = true
	d.tags = append(d.tags, "meeting")

	if loc[2] >= 0 {
		meetingType := strings.ToLower(d.title[loc[2]:loc[3]])
		d.tags = append(d.tags, "meeting:"+meetingType)
	}

	// Strip only the literal meeting word; the type word stays in the title.
	d.stripSpan(loc[4], loc[5])
}
