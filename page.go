package pagecollect

import "errors"

// Status is the outcome of processing a single page.
type Status string

// Status values for PageResult and CollectedEntry.
const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// DefaultTitle is used when a page declares no title.
const DefaultTitle = "Untitled"

// ErrorTitle is used for pages that failed to fetch or convert.
const ErrorTitle = "Error"

// NoContentMarker is recorded as the content of pages whose located
// content region converts to empty markdown.
const NoContentMarker = "No content could be extracted."

// PageResult holds the outcome of extracting a single page.
// It is created once per URL and never mutated afterwards.
type PageResult struct {
	// Title is the page's declared title, trimmed. DefaultTitle when the
	// page declares none, ErrorTitle when Status is StatusError.
	Title string

	// URL is the resolved absolute URL the page was fetched from.
	URL string

	// Content is the converted markdown body. For failed pages it holds a
	// human-readable message embedding the failure cause.
	Content string

	// Status reports whether extraction succeeded.
	Status Status
}

// ErrorResult builds the PageResult recorded for a page that failed. The
// content embeds the failure cause so the written document explains itself.
func ErrorResult(url string, err error) PageResult {
	msg := err.Error()
	var e *Error
	if errors.As(err, &e) {
		msg = e.Message
	}
	return PageResult{
		Title:   ErrorTitle,
		URL:     url,
		Content: "Error: " + msg,
		Status:  StatusError,
	}
}

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title from the document head, trimmed.
	// DefaultTitle when absent or empty.
	Title string

	// ContentHTML is the located content region as HTML with noise
	// (nav, header, footer, site chrome) removed.
	ContentHTML string
}

// Extractor locates a page's primary content region and strips noise from it.
type Extractor interface {
	// Extract processes raw HTML and returns the cleaned main content.
	// It is total with respect to content location: every parseable page
	// yields a region, in the worst case the document body.
	Extract(html string) (*ExtractResult, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown. The input should be
	// clean HTML (e.g., from an Extractor). Conversion is deterministic:
	// identical input yields identical output.
	Convert(html string) (string, error)
}
