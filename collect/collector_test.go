package collect_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fwojciec/pagecollect"
	"github.com/fwojciec/pagecollect/collect"
	"github.com/fwojciec/pagecollect/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// passthroughCollector returns a collector whose extractor and converter
// echo the fetched HTML and whose writer records documents in *docs.
func passthroughCollector(fetch func(ctx context.Context, url string) (string, error), docs *[]*pagecollect.Document) *collect.Collector {
	return &collect.Collector{
		Fetcher: &mock.Fetcher{FetchFn: fetch},
		Extractor: &mock.Extractor{ExtractFn: func(html string) (*pagecollect.ExtractResult, error) {
			return &pagecollect.ExtractResult{Title: "Page", ContentHTML: html}, nil
		}},
		Converter: &mock.Converter{ConvertFn: func(html string) (string, error) {
			return html, nil
		}},
		Documents: &mock.DocumentWriter{WriteDocumentFn: func(ctx context.Context, doc *pagecollect.Document) (string, error) {
			if docs != nil {
				*docs = append(*docs, doc)
			}
			return fmt.Sprintf("out/%03d_%s.md", doc.Index, pagecollect.SanitizeFilename(doc.Title)), nil
		}},
		RetryDelays: []time.Duration{},
	}
}

func TestCollector_Collect(t *testing.T) {
	t.Parallel()

	t.Run("returns one entry per URL in input order", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		c := passthroughCollector(func(ctx context.Context, url string) (string, error) {
			fetched = append(fetched, url)
			return "<p>ok</p>", nil
		}, nil)

		job := &pagecollect.Job{
			BaseURL: "https://example.com",
			URLs:    []string{"/a", "/b", "/c"},
		}

		entries, err := c.Collect(context.Background(), job, nil)

		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, []string{
			"https://example.com/a",
			"https://example.com/b",
			"https://example.com/c",
		}, fetched)
		assert.Equal(t, "https://example.com/a", entries[0].URL)
		assert.Equal(t, "https://example.com/c", entries[2].URL)
		for _, e := range entries {
			assert.Equal(t, pagecollect.StatusSuccess, e.Status)
		}
	})

	t.Run("absolute URLs are not resolved against the base", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		c := passthroughCollector(func(ctx context.Context, url string) (string, error) {
			fetched = append(fetched, url)
			return "<p>ok</p>", nil
		}, nil)

		job := &pagecollect.Job{
			BaseURL: "https://example.com",
			URLs:    []string{"https://other.example.org/page"},
		}

		_, err := c.Collect(context.Background(), job, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://other.example.org/page"}, fetched)
	})

	t.Run("fetch failure becomes an error entry and does not halt the run", func(t *testing.T) {
		t.Parallel()

		c := passthroughCollector(func(ctx context.Context, url string) (string, error) {
			if url == "https://example.com/bad" {
				return "", pagecollect.Errorf(pagecollect.EUNAVAILABLE, "HTTP 500 for %s", url)
			}
			return "<p>ok</p>", nil
		}, nil)

		job := &pagecollect.Job{
			BaseURL: "https://example.com",
			URLs:    []string{"/good", "/bad", "/also-good"},
		}

		entries, err := c.Collect(context.Background(), job, nil)

		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, pagecollect.StatusSuccess, entries[0].Status)
		assert.Equal(t, pagecollect.StatusError, entries[1].Status)
		assert.Equal(t, pagecollect.ErrorTitle, entries[1].Title)
		assert.Equal(t, pagecollect.StatusSuccess, entries[2].Status)
	})

	t.Run("error entry content embeds the failure cause", func(t *testing.T) {
		t.Parallel()

		var docs []*pagecollect.Document
		c := passthroughCollector(func(ctx context.Context, url string) (string, error) {
			return "", pagecollect.Errorf(pagecollect.EUNAVAILABLE, "connection refused")
		}, &docs)

		job := &pagecollect.Job{
			BaseURL: "https://example.com",
			URLs:    []string{"/down"},
		}

		_, err := c.Collect(context.Background(), job, nil)

		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, pagecollect.StatusError, docs[0].Status)
		assert.NotEmpty(t, docs[0].Content)
		assert.Contains(t, docs[0].Content, "connection refused")
	})

	t.Run("empty converted content is recorded with a marker", func(t *testing.T) {
		t.Parallel()

		var docs []*pagecollect.Document
		c := passthroughCollector(func(ctx context.Context, url string) (string, error) {
			return "   \n  ", nil
		}, &docs)

		job := &pagecollect.Job{
			BaseURL: "https://example.com",
			URLs:    []string{"/empty"},
		}

		entries, err := c.Collect(context.Background(), job, nil)

		require.NoError(t, err)
		assert.Equal(t, pagecollect.StatusSuccess, entries[0].Status)
		require.Len(t, docs, 1)
		assert.Equal(t, pagecollect.NoContentMarker, docs[0].Content)
	})

	t.Run("documents carry the 1-based index", func(t *testing.T) {
		t.Parallel()

		var docs []*pagecollect.Document
		c := passthroughCollector(func(ctx context.Context, url string) (string, error) {
			return "<p>ok</p>", nil
		}, &docs)

		job := &pagecollect.Job{
			BaseURL: "https://example.com",
			URLs:    []string{"/a", "/b"},
		}

		_, err := c.Collect(context.Background(), job, nil)

		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, 1, docs[0].Index)
		assert.Equal(t, 2, docs[1].Index)
	})

	t.Run("invalid job aborts before any fetch", func(t *testing.T) {
		t.Parallel()

		fetched := 0
		c := passthroughCollector(func(ctx context.Context, url string) (string, error) {
			fetched++
			return "", nil
		}, nil)

		_, err := c.Collect(context.Background(), &pagecollect.Job{}, nil)

		assert.Equal(t, pagecollect.EINVALID, pagecollect.ErrorCode(err))
		assert.Zero(t, fetched)
	})

	t.Run("document write failure aborts the run", func(t *testing.T) {
		t.Parallel()

		c := passthroughCollector(func(ctx context.Context, url string) (string, error) {
			return "<p>ok</p>", nil
		}, nil)
		writes := 0
		c.Documents = &mock.DocumentWriter{WriteDocumentFn: func(ctx context.Context, doc *pagecollect.Document) (string, error) {
			writes++
			if writes == 2 {
				return "", pagecollect.Errorf(pagecollect.EINTERNAL, "disk full")
			}
			return "out/file.md", nil
		}}

		job := &pagecollect.Job{
			BaseURL: "https://example.com",
			URLs:    []string{"/a", "/b", "/c"},
		}

		entries, err := c.Collect(context.Background(), job, nil)

		require.Error(t, err)
		assert.Len(t, entries, 1)
		assert.Equal(t, 2, writes)
	})

	t.Run("reports progress per page", func(t *testing.T) {
		t.Parallel()

		c := passthroughCollector(func(ctx context.Context, url string) (string, error) {
			return "<p>ok</p>", nil
		}, nil)

		job := &pagecollect.Job{
			BaseURL: "https://example.com",
			URLs:    []string{"/a", "/b"},
		}

		var events []collect.ProgressEvent
		_, err := c.Collect(context.Background(), job, func(e collect.ProgressEvent) {
			events = append(events, e)
		})

		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, 1, events[0].Index)
		assert.Equal(t, 2, events[0].Total)
		assert.Equal(t, "https://example.com/a", events[0].URL)
		assert.NotEmpty(t, events[0].Path)
		assert.Equal(t, 2, events[1].Index)
	})

	t.Run("zero delay adds no extraneous wait", func(t *testing.T) {
		t.Parallel()

		c := passthroughCollector(func(ctx context.Context, url string) (string, error) {
			return "<p>ok</p>", nil
		}, nil)

		job := &pagecollect.Job{
			BaseURL: "https://example.com",
			URLs:    []string{"/a", "/b"},
		}

		start := time.Now()
		_, err := c.Collect(context.Background(), job, nil)
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 500*time.Millisecond)
	})

	t.Run("delay spaces successive fetches", func(t *testing.T) {
		t.Parallel()

		var fetchTimes []time.Time
		c := passthroughCollector(func(ctx context.Context, url string) (string, error) {
			fetchTimes = append(fetchTimes, time.Now())
			return "<p>ok</p>", nil
		}, nil)

		job := &pagecollect.Job{
			BaseURL: "https://example.com",
			URLs:    []string{"/a", "/b", "/c"},
			Delay:   50 * time.Millisecond,
		}

		start := time.Now()
		_, err := c.Collect(context.Background(), job, nil)

		require.NoError(t, err)
		require.Len(t, fetchTimes, 3)
		// First fetch is not delayed; the two gaps each honor the delay.
		assert.Less(t, fetchTimes[0].Sub(start), 25*time.Millisecond)
		assert.GreaterOrEqual(t, fetchTimes[1].Sub(fetchTimes[0]), 45*time.Millisecond)
		assert.GreaterOrEqual(t, fetchTimes[2].Sub(fetchTimes[1]), 45*time.Millisecond)
	})

	t.Run("canceled context stops the run", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		c := passthroughCollector(func(fctx context.Context, url string) (string, error) {
			cancel()
			return "<p>ok</p>", nil
		}, nil)

		job := &pagecollect.Job{
			BaseURL: "https://example.com",
			URLs:    []string{"/a", "/b"},
			Delay:   time.Hour,
		}

		entries, err := c.Collect(ctx, job, nil)

		require.Error(t, err)
		assert.Len(t, entries, 1)
	})
}
