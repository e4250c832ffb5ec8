package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/pagecollect"
)

// SummaryFilename is the name of the run manifest inside the output directory.
const SummaryFilename = "collection_summary.json"

// Ensure SummaryWriter implements pagecollect.SummaryWriter at compile time.
var _ pagecollect.SummaryWriter = (*SummaryWriter)(nil)

// SummaryWriter persists a run summary as a JSON manifest.
type SummaryWriter struct {
	outputDir string
}

// NewSummaryWriter creates a new SummaryWriter writing to the given directory.
func NewSummaryWriter(outputDir string) *SummaryWriter {
	return &SummaryWriter{outputDir: outputDir}
}

// WriteSummary writes the summary to {outputDir}/collection_summary.json.
func (w *SummaryWriter) WriteSummary(ctx context.Context, summary *pagecollect.RunSummary) error {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	return os.WriteFile(filepath.Join(w.outputDir, SummaryFilename), data, 0644)
}
