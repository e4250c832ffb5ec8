package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagecollect"
	"github.com/fwojciec/pagecollect/collect"
	"github.com/fwojciec/pagecollect/fs"
	"github.com/fwojciec/pagecollect/goquery"
	"github.com/fwojciec/pagecollect/htmltomarkdown"
	pchttp "github.com/fwojciec/pagecollect/http"
	pcslog "github.com/fwojciec/pagecollect/slog"
	"github.com/google/uuid"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagecollect"),
		kong.Description("Archive web pages as markdown files"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	job, err := cli.buildJob(stdin, stdout)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	logger = logger.With("run_id", uuid.NewString())

	fetcher := pcslog.NewLoggingFetcher(pchttp.NewFetcher(pchttp.WithTimeout(cli.Timeout)), logger)
	defer fetcher.Close()

	retryDelays := collect.DefaultRetryDelays()
	if cli.Retries >= 0 && cli.Retries < len(retryDelays) {
		retryDelays = retryDelays[:cli.Retries]
	}

	collector := &collect.Collector{
		Fetcher:     fetcher,
		Extractor:   goquery.NewExtractor(),
		Converter:   htmltomarkdown.NewConverter(),
		Documents:   fs.NewWriter(job.OutputDir),
		RetryDelays: retryDelays,
	}

	fmt.Fprintf(stdout, "Collecting %d pages into %s\n", len(job.URLs), job.OutputDir)

	progress := func(e collect.ProgressEvent) {
		marker := ""
		if e.Status == pagecollect.StatusError {
			marker = " (error)"
		}
		fmt.Fprintf(stdout, "[%d/%d] %s -> %s%s\n", e.Index, e.Total, e.Title, e.Path, marker)
	}

	entries, err := collector.Collect(ctx, job, progress)
	if err != nil {
		return err
	}

	summary := pagecollect.Summarize(entries, time.Now())
	if err := fs.NewSummaryWriter(job.OutputDir).WriteSummary(ctx, summary); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	fmt.Fprintf(stdout, "Done: %d succeeded, %d failed\n", summary.SuccessCount, summary.ErrorCount)
	return nil
}
