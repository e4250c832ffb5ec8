package mock

import "github.com/fwojciec/pagecollect"

var _ pagecollect.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagecollect.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*pagecollect.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*pagecollect.ExtractResult, error) {
	return e.ExtractFn(html)
}
