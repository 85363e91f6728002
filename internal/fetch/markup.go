package fetch

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripMarkup returns the visible text of an HTML fragment, keeping line breaks.
// Input without tags is returned with whitespace normalized per line.
func StripMarkup(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return cleanWhitespace(fragment)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return cleanWhitespace(fragment)
	}
	doc.Find("script, style, noscript").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("p, li, div, h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	return cleanWhitespace(doc.Text())
}

// cleanWhitespace trims each line and collapses inner runs of spaces.
// Blank lines are dropped.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
