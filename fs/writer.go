// Package fs provides file-based persistence for collected pages.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/pagecollect"
)

// TimeFormat is the timestamp format used in document headers.
const TimeFormat = "2006-01-02 15:04:05"

// DocumentFilename builds the file name for a collected page. The 1-based
// index is zero-padded to three digits so files sort in processing order and
// stay unique even when sanitized titles collide.
func DocumentFilename(index int, title string) string {
	return fmt.Sprintf("%03d_%s.md", index, pagecollect.SanitizeFilename(title))
}

// FormatDocument renders a document as markdown: a header block with title,
// URL, status and collection timestamp, a separator, then the content.
func FormatDocument(doc *pagecollect.Document) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(doc.Title)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "**URL:** %s\n", doc.URL)
	fmt.Fprintf(&b, "**Status:** %s\n", doc.Status)
	fmt.Fprintf(&b, "**Collected:** %s\n", doc.CollectedAt.Format(TimeFormat))
	b.WriteString("\n---\n\n")
	b.WriteString(doc.Content)
	b.WriteString("\n")
	return b.String()
}

// Ensure Writer implements pagecollect.DocumentWriter at compile time.
var _ pagecollect.DocumentWriter = (*Writer)(nil)

// Writer writes collected pages as markdown files to a directory.
type Writer struct {
	outputDir string
}

// NewWriter creates a new Writer that writes to the given output directory.
func NewWriter(outputDir string) *Writer {
	return &Writer{outputDir: outputDir}
}

// WriteDocument writes a document to disk and returns its path.
// The output directory is created if absent.
func (w *Writer) WriteDocument(ctx context.Context, doc *pagecollect.Document) (string, error) {
	if err := doc.Validate(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(w.outputDir, DocumentFilename(doc.Index, doc.Title))
	if err := os.WriteFile(path, []byte(FormatDocument(doc)), 0644); err != nil {
		return "", err
	}

	return path, nil
}
