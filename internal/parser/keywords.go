package parser

import "strings"

// extractKeywords looks up every remaining word (lowercased) in the
// keyword snapshot. Each hit contributes its category as a front tag,
// preserving encounter order among hits, and the word is dropped from
// the title. Non-matching words keep their original order.
func extractKeywords(p *Parser, d *draft) {
	if len(d.keywords) == 0 {
		d.title = collapse(d.title)
		return
	}

	words := strings.Fields(d.title)
	kept := make([]string, 0, len(words))
	for _, word := range words {
		if category, ok := d.keywords[strings.ToLower(word)]; ok {
			d.catTags = append(d.catTags, category)
			continue
		}
		kept = append(kept, word)
	}
	d.title = strings.Join(kept, " ")
}
