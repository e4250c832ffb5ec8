package pagecollect_test

import (
	"testing"
	"time"

	"github.com/fwojciec/pagecollect"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	t.Run("counts outcomes by status", func(t *testing.T) {
		t.Parallel()

		entries := []pagecollect.CollectedEntry{
			{URL: "https://example.com/a", Status: pagecollect.StatusSuccess},
			{URL: "https://example.com/b", Status: pagecollect.StatusError},
			{URL: "https://example.com/c", Status: pagecollect.StatusSuccess},
		}
		at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

		summary := pagecollect.Summarize(entries, at)

		assert.Equal(t, 3, summary.TotalPages)
		assert.Equal(t, 2, summary.SuccessCount)
		assert.Equal(t, 1, summary.ErrorCount)
		assert.Equal(t, summary.TotalPages, summary.SuccessCount+summary.ErrorCount)
		assert.Equal(t, at, summary.CollectionTime)
		assert.Equal(t, entries, summary.Results)
	})

	t.Run("empty entry list", func(t *testing.T) {
		t.Parallel()

		summary := pagecollect.Summarize(nil, time.Now())

		assert.Zero(t, summary.TotalPages)
		assert.Zero(t, summary.SuccessCount)
		assert.Zero(t, summary.ErrorCount)
		assert.Empty(t, summary.Results)
	})
}
