package parser

import "regexp"

var tagRe = regexp.MustCompile(`#([A-Za-z0-9_-]+)`)

// extractTags pulls every inline #tag token out of the title, in
// left-to-right order. Unlike the other extractors this one consumes
// all occurrences, not just the first.
func extractTags(p *Parser, d *draft) {
	matches := tagRe.FindAllStringSubmatch(d.title, -1)
	if len(matches) == 0 {
		d.title = collapse(d.title)
		return
	}
	for _, m := range matches {
		d.tags = append(d.tags, m[1])
	}
	d.title = collapse(tagRe.ReplaceAllString(d.title, " "))
}
