package truncate

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/randalmurphal/markupkit/units"
)

// StripTags removes tags, comments and doctype declarations from markup.
// Text is kept exactly as written, entity references included. Tags inside
// raw text elements such as title, textarea or noscript are removed too.
func StripTags(markup string) string {
	z := html.NewTokenizer(strings.NewReader(markup))

	var sb strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return sb.String()
		case html.StartTagToken:
			z.NextIsNotRawText()
		case html.TextToken:
			sb.Write(z.Raw())
		}
	}
}

// VisibleLength returns the length of markup's trimmed text in counter units.
// A nil counter selects units.Default().
func VisibleLength(markup string, counter units.Counter) int {
	if counter == nil {
		counter = units.Default()
	}
	return counter.Count(visibleText(markup))
}

// fits reports whether markup's visible text has at most length units.
func fits(markup string, length int, counter units.Counter) bool {
	return counter.FitsInLimit(visibleText(markup), length)
}

func visibleText(markup string) string {
	return strings.Trim(StripTags(markup), trimSet)
}
