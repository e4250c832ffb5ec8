// Package collect provides the sequential page collection loop.
// It drives one URL at a time through fetch, extraction and conversion,
// persists one document per page, and paces requests so the remote server
// sees at most one request per configured delay.
package collect

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/pagecollect"
	"golang.org/x/time/rate"
)

// ProgressEvent reports the outcome of one processed page.
type ProgressEvent struct {
	Index  int // 1-based position in the job's URL list
	Total  int
	URL    string
	Title  string
	Path   string
	Status pagecollect.Status
}

// ProgressFunc is a callback for reporting collection progress.
type ProgressFunc func(event ProgressEvent)

// Collector orchestrates a collection run. Pages are processed strictly in
// input order with no concurrent fetches; the inter-request delay is the
// sole backpressure mechanism against the remote server.
type Collector struct {
	Fetcher   pagecollect.Fetcher
	Extractor pagecollect.Extractor
	Converter pagecollect.Converter
	Documents pagecollect.DocumentWriter

	// RetryDelays configures fetch retry backoff. Nil selects
	// DefaultRetryDelays; an empty slice disables retries.
	RetryDelays []time.Duration

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Collect processes every URL of the job in order and returns one entry per
// URL. Per-page failures are recorded as error entries and never abort the
// loop; only an invalid job or a document write failure does. On a write
// failure the entries collected so far are returned alongside the error.
func (c *Collector) Collect(ctx context.Context, job *pagecollect.Job, progress ProgressFunc) ([]pagecollect.CollectedEntry, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}

	base, err := url.Parse(job.BaseURL)
	if err != nil {
		return nil, pagecollect.Errorf(pagecollect.EINVALID, "invalid base URL %q: %v", job.BaseURL, err)
	}

	// Burst 1 keeps the first request immediate and spaces every following
	// request by at least the job delay. A zero delay disables pacing.
	pacer := rate.NewLimiter(rate.Every(job.Delay), 1)

	now := c.Now
	if now == nil {
		now = time.Now
	}

	entries := make([]pagecollect.CollectedEntry, 0, len(job.URLs))
	for i, raw := range job.URLs {
		if err := pacer.Wait(ctx); err != nil {
			return entries, err
		}

		pageURL := resolveURL(base, raw)
		result := c.extractPage(ctx, pageURL)

		doc := &pagecollect.Document{
			Index:       i + 1,
			Title:       result.Title,
			URL:         result.URL,
			Status:      result.Status,
			Content:     result.Content,
			CollectedAt: now(),
		}

		path, err := c.Documents.WriteDocument(ctx, doc)
		if err != nil {
			return entries, err
		}

		entries = append(entries, pagecollect.CollectedEntry{
			URL:      result.URL,
			Title:    result.Title,
			Status:   result.Status,
			FilePath: path,
		})

		if progress != nil {
			progress(ProgressEvent{
				Index:  i + 1,
				Total:  len(job.URLs),
				URL:    result.URL,
				Title:  result.Title,
				Path:   path,
				Status: result.Status,
			})
		}
	}

	return entries, nil
}

// extractPage runs one URL through fetch, extract and convert. It never
// returns an error: any failure becomes a PageResult with StatusError and a
// message embedding the cause.
func (c *Collector) extractPage(ctx context.Context, pageURL string) pagecollect.PageResult {
	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	html, err := FetchWithRetryDelays(ctx, pageURL, c.Fetcher.Fetch, delays)
	if err != nil {
		return pagecollect.ErrorResult(pageURL, err)
	}

	extracted, err := c.Extractor.Extract(html)
	if err != nil {
		return pagecollect.ErrorResult(pageURL, err)
	}

	markdown, err := c.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return pagecollect.ErrorResult(pageURL, err)
	}

	if strings.TrimSpace(markdown) == "" {
		markdown = pagecollect.NoContentMarker
	}

	return pagecollect.PageResult{
		Title:   extracted.Title,
		URL:     pageURL,
		Content: markdown,
		Status:  pagecollect.StatusSuccess,
	}
}

// resolveURL resolves raw against the job's base URL when it lacks a scheme.
// Unparseable URLs pass through unchanged; the fetch surfaces the problem as
// a per-page error.
func resolveURL(base *url.URL, raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return raw
	}
	if u.IsAbs() {
		return u.String()
	}
	return base.ResolveReference(u).String()
}
