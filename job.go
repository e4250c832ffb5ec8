package pagecollect

import "time"

// DefaultDelay is the inter-request delay used when a job does not set one.
const DefaultDelay = 1 * time.Second

// DefaultOutputDir is the output directory used when a job does not set one.
const DefaultOutputDir = "output"

// Job describes one collection run: which pages to archive and how.
type Job struct {
	// BaseURL is used to resolve relative page URLs.
	BaseURL string

	// URLs are the pages to collect, in order. The order determines the
	// numeric prefix of each output file.
	URLs []string

	// Delay is the minimum spacing between successive fetches.
	Delay time.Duration

	// OutputDir is the directory documents and the summary are written to.
	// It is created if absent.
	OutputDir string
}

// Validate returns an error if the job contains invalid fields.
func (j *Job) Validate() error {
	if j.BaseURL == "" {
		return Errorf(EINVALID, "job base URL required")
	}
	if len(j.URLs) == 0 {
		return Errorf(EINVALID, "job requires at least one URL")
	}
	if j.Delay < 0 {
		return Errorf(EINVALID, "job delay must not be negative")
	}
	return nil
}
