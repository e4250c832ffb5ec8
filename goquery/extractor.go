// Package goquery implements content extraction using CSS selectors.
// It locates the primary content region of a page with a fixed priority
// chain and strips navigational and decorative markup from it.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagecollect"
)

// Ensure Extractor implements pagecollect.Extractor at compile time.
var _ pagecollect.Extractor = (*Extractor)(nil)

// Extractor extracts a page's title and cleaned content region.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses raw HTML, selects the content region via Locate, removes
// noise via Strip, and returns the cleaned region as HTML together with the
// page's declared title (pagecollect.DefaultTitle when absent).
func (e *Extractor) Extract(html string) (*pagecollect.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pagecollect.Errorf(pagecollect.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = pagecollect.DefaultTitle
	}

	content := Locate(doc)
	Strip(content)

	contentHTML, err := goquery.OuterHtml(content)
	if err != nil {
		return nil, pagecollect.Errorf(pagecollect.EINTERNAL, "failed to serialize content: %v", err)
	}

	return &pagecollect.ExtractResult{
		Title:       title,
		ContentHTML: contentHTML,
	}, nil
}
