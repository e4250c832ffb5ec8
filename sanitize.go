package pagecollect

import "regexp"

// MaxFilenameTitleLen bounds the sanitized title portion of a file name.
const MaxFilenameTitleLen = 100

var (
	// Characters allowed in file names: ASCII alphanumerics, underscore,
	// hyphen, whitespace (collapsed below), and the Hangul syllable range.
	unsafeFilenameChars = regexp.MustCompile(`[^0-9A-Za-z_\s\x{AC00}-\x{D7A3}-]`)
	whitespaceRuns      = regexp.MustCompile(`\s+`)
)

// SanitizeFilename maps an arbitrary title to a safe, bounded-length file
// name component. It removes unsafe characters, collapses whitespace runs to
// a single underscore, and truncates to MaxFilenameTitleLen runes.
// SanitizeFilename is pure and idempotent.
func SanitizeFilename(title string) string {
	clean := unsafeFilenameChars.ReplaceAllString(title, "")
	clean = whitespaceRuns.ReplaceAllString(clean, "_")

	runes := []rune(clean)
	if len(runes) > MaxFilenameTitleLen {
		runes = runes[:MaxFilenameTitleLen]
	}
	return string(runes)
}
