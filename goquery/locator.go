package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// fallbackSelectors are tried in order when a page has no article element.
// The first selector that matches an element with non-empty trimmed text
// wins. The selectors cover the semantic main region followed by
// conventional content-container class and id names.
var fallbackSelectors = []string{
	"main",
	".content",
	".post-content",
	".entry-content",
	"#content",
	".main-content",
	"body",
}

// Locate selects the DOM subtree holding the page's primary content.
// It is total: every parsed document yields a selection, in the worst case
// the document body.
//
// Priority order:
//  1. A single article element, or the article with the most trimmed text
//     when several exist (first in document order wins ties).
//  2. The first fallback selector whose match has non-empty trimmed text.
//  3. The document body, unconditionally.
func Locate(doc *goquery.Document) *goquery.Selection {
	articles := doc.Find("article")
	if articles.Length() == 1 {
		return articles.First()
	}
	if articles.Length() > 1 {
		return largestByText(articles)
	}

	for _, selector := range fallbackSelectors {
		match := doc.Find(selector).First()
		if match.Length() > 0 && strings.TrimSpace(match.Text()) != "" {
			return match
		}
	}

	return doc.Find("body").First()
}

// largestByText returns the element with the greatest trimmed text length.
// A strict comparison keeps the first-encountered element on ties.
func largestByText(matches *goquery.Selection) *goquery.Selection {
	best := matches.First()
	bestLen := len(strings.TrimSpace(best.Text()))

	matches.Each(func(_ int, sel *goquery.Selection) {
		if l := len(strings.TrimSpace(sel.Text())); l > bestLen {
			best = sel
			bestLen = l
		}
	})

	return best
}
