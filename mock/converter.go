package mock

import "github.com/fwojciec/pagecollect"

var _ pagecollect.Converter = (*Converter)(nil)

// Converter is a mock implementation of pagecollect.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
