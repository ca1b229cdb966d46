package annotate

import (
	"fmt"
	"strings"
)

// AddKeywordLinks scans every page's lines and appends a URI link
// annotation over each line that contains one of the rule phrases. The
// clickable rectangle is the whole line's bounding box, not the matched
// substring's. Each line is evaluated independently; no state carries
// across lines or pages. Returns the number of links inserted.
func AddKeywordLinks(doc Document, rules []LinkRule, style LinkStyle) (int, error) {
	inserted := 0
	for pageNr := 1; pageNr <= doc.PageCount(); pageNr++ {
		lines, err := doc.LinesForPage(pageNr)
		if err != nil {
			return inserted, fmt.Errorf("page %d: %w", pageNr, err)
		}
		for line := range lines {
			text := line.Text()
			for _, rule := range rules {
				if !strings.Contains(text, rule.Phrase) {
					continue
				}
				if err := doc.AddLink(pageNr, line.Box, rule.URL, style); err != nil {
					return inserted, fmt.Errorf("page %d: link %q: %w", pageNr, rule.Phrase, err)
				}
				inserted++
				// First matching rule wins; links never stack on a line.
				break
			}
		}
	}
	return inserted, nil
}
