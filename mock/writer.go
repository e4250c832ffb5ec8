package mock

import (
	"context"

	"github.com/fwojciec/pagecollect"
)

var _ pagecollect.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of pagecollect.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentFn func(ctx context.Context, doc *pagecollect.Document) (string, error)
}

func (w *DocumentWriter) WriteDocument(ctx context.Context, doc *pagecollect.Document) (string, error) {
	return w.WriteDocumentFn(ctx, doc)
}

var _ pagecollect.SummaryWriter = (*SummaryWriter)(nil)

// SummaryWriter is a mock implementation of pagecollect.SummaryWriter.
type SummaryWriter struct {
	WriteSummaryFn func(ctx context.Context, summary *pagecollect.RunSummary) error
}

func (w *SummaryWriter) WriteSummary(ctx context.Context, summary *pagecollect.RunSummary) error {
	return w.WriteSummaryFn(ctx, summary)
}
