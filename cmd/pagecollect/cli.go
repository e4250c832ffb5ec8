package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fwojciec/pagecollect"
	"github.com/fwojciec/pagecollect/yaml"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config      string        `short:"c" help:"Path to a YAML job file (base_url, urls, delay, output_dir)."`
	Interactive bool          `short:"i" help:"Read page URLs from stdin, one per line, ending with a blank line."`
	Delay       time.Duration `short:"d" default:"1s" help:"Minimum spacing between successive fetches."`
	Output      string        `short:"o" default:"output" help:"Output directory for documents and the run summary."`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per page."`
	Retries     int           `short:"r" default:"3" help:"Fetch retry attempts per page."`
	Verbose     bool          `short:"v" help:"Log fetch details to stderr."`
	BaseURL     string        `arg:"" optional:"" help:"Base URL for resolving relative page URLs."`
	URLs        []string      `arg:"" optional:"" help:"Page URLs to collect (absolute or relative)."`
}

// buildJob converges the three input modes (job file, arguments, interactive
// entry) into one validated job.
func (cli *CLI) buildJob(stdin io.Reader, stdout io.Writer) (*pagecollect.Job, error) {
	if cli.Config != "" {
		return yaml.LoadJob(cli.Config)
	}

	job := &pagecollect.Job{
		BaseURL:   cli.BaseURL,
		URLs:      cli.URLs,
		Delay:     cli.Delay,
		OutputDir: cli.Output,
	}

	if cli.Interactive {
		if err := readJobInteractively(job, stdin, stdout); err != nil {
			return nil, err
		}
	}

	if err := job.Validate(); err != nil {
		return nil, err
	}
	return job, nil
}

// readJobInteractively prompts for the base URL when missing and reads page
// URLs from stdin, one per line, until a blank line or EOF.
func readJobInteractively(job *pagecollect.Job, stdin io.Reader, stdout io.Writer) error {
	scanner := bufio.NewScanner(stdin)

	if job.BaseURL == "" {
		fmt.Fprint(stdout, "Base URL: ")
		if !scanner.Scan() {
			return pagecollect.Errorf(pagecollect.EINVALID, "no base URL entered")
		}
		job.BaseURL = strings.TrimSpace(scanner.Text())
	}

	fmt.Fprintln(stdout, "Page URLs, one per line (blank line to finish):")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}
		job.URLs = append(job.URLs, line)
	}

	return scanner.Err()
}
