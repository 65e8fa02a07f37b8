package parser

// DefaultMeetingMinutes is the timebox applied to a detected meeting
// when the line resolves no explicit duration or time range.
const DefaultMeetingMinutes = 60
