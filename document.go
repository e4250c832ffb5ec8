package pagecollect

import (
	"context"
	"time"
)

// Document represents one collected page ready to be persisted.
type Document struct {
	// Index is the 1-based position of the page in the job's URL list.
	// It becomes the zero-padded prefix of the output file name, which
	// keeps files uniquely named and ordered even when titles collide.
	Index int

	Title       string
	URL         string
	Status      Status
	Content     string
	CollectedAt time.Time
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Index < 1 {
		return Errorf(EINVALID, "document index must be positive")
	}
	if d.URL == "" {
		return Errorf(EINVALID, "document URL required")
	}
	return nil
}

// DocumentWriter persists documents. Implementations return the path the
// document was written to.
type DocumentWriter interface {
	WriteDocument(ctx context.Context, doc *Document) (filepath string, err error)
}

// CollectedEntry is the durable record of one processed page, ordered by
// processing sequence.
type CollectedEntry struct {
	URL      string `json:"url"`
	Title    string `json:"title"`
	Status   Status `json:"status"`
	FilePath string `json:"filepath"`
}

// RunSummary aggregates the outcome of a whole collection run.
// It is written once, at the end of the run, and never mutated afterwards.
type RunSummary struct {
	TotalPages     int              `json:"total_pages"`
	SuccessCount   int              `json:"success_count"`
	ErrorCount     int              `json:"error_count"`
	CollectionTime time.Time        `json:"collection_time"`
	Results        []CollectedEntry `json:"results"`
}

// SummaryWriter persists a run summary.
type SummaryWriter interface {
	WriteSummary(ctx context.Context, summary *RunSummary) error
}
