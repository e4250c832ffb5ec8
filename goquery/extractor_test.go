package goquery_test

import (
	"testing"

	"github.com/fwojciec/pagecollect"
	"github.com/fwojciec/pagecollect/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements pagecollect.Extractor at compile time.
var _ pagecollect.Extractor = (*goquery.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title and cleaned article content", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>  Getting Started  </title></head>
<body>
<header>site header</header>
<article>
	<h1>Getting Started</h1>
	<nav>in-article menu</nav>
	<p>Install the tool with <a href="/install">these instructions</a>.</p>
</article>
<footer>site footer</footer>
</body>
</html>`

		ex := goquery.NewExtractor()
		result, err := ex.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Getting Started", result.Title)
		assert.Contains(t, result.ContentHTML, "<h1>Getting Started</h1>")
		assert.Contains(t, result.ContentHTML, `<a href="/install">`)
		assert.NotContains(t, result.ContentHTML, "in-article menu")
		assert.NotContains(t, result.ContentHTML, "site header")
		assert.NotContains(t, result.ContentHTML, "site footer")
	})

	t.Run("defaults missing title", func(t *testing.T) {
		t.Parallel()

		ex := goquery.NewExtractor()
		result, err := ex.Extract(`<html><body><article><p>text</p></article></body></html>`)

		require.NoError(t, err)
		assert.Equal(t, pagecollect.DefaultTitle, result.Title)
	})

	t.Run("defaults whitespace-only title", func(t *testing.T) {
		t.Parallel()

		ex := goquery.NewExtractor()
		result, err := ex.Extract(`<html><head><title>   </title></head><body><p>x</p></body></html>`)

		require.NoError(t, err)
		assert.Equal(t, pagecollect.DefaultTitle, result.Title)
	})

	t.Run("strips chrome classes from fallback regions", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Docs</title></head><body>
<main>
	<div class="md-sidebar">navigation tree</div>
	<p>Documentation body.</p>
</main>
</body></html>`

		ex := goquery.NewExtractor()
		result, err := ex.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Documentation body.")
		assert.NotContains(t, result.ContentHTML, "navigation tree")
	})

	t.Run("empty page yields the body region", func(t *testing.T) {
		t.Parallel()

		ex := goquery.NewExtractor()
		result, err := ex.Extract("")

		require.NoError(t, err)
		assert.Equal(t, pagecollect.DefaultTitle, result.Title)
		assert.Contains(t, result.ContentHTML, "<body>")
	})
}
