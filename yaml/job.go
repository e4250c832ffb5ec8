// Package yaml constructs collection jobs from YAML job files.
package yaml

import (
	"os"
	"time"

	"github.com/fwojciec/pagecollect"
	"gopkg.in/yaml.v3"
)

// jobFile is the on-disk shape of a job file. Delay is a Go duration string
// ("1s", "500ms"); it defaults to pagecollect.DefaultDelay when omitted.
type jobFile struct {
	BaseURL   string   `yaml:"base_url"`
	URLs      []string `yaml:"urls"`
	Delay     string   `yaml:"delay"`
	OutputDir string   `yaml:"output_dir"`
}

// LoadJob reads and parses a YAML job file, applies defaults for omitted
// fields, and validates the result.
func LoadJob(path string) (*pagecollect.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pagecollect.Errorf(pagecollect.ENOTFOUND, "read job file %s: %v", path, err)
	}
	return ParseJob(data)
}

// ParseJob parses YAML job file contents.
func ParseJob(data []byte) (*pagecollect.Job, error) {
	var f jobFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, pagecollect.Errorf(pagecollect.EINVALID, "parse job file: %v", err)
	}

	job := &pagecollect.Job{
		BaseURL:   f.BaseURL,
		URLs:      f.URLs,
		Delay:     pagecollect.DefaultDelay,
		OutputDir: f.OutputDir,
	}
	if f.Delay != "" {
		d, err := time.ParseDuration(f.Delay)
		if err != nil {
			return nil, pagecollect.Errorf(pagecollect.EINVALID, "parse delay %q: %v", f.Delay, err)
		}
		job.Delay = d
	}
	if job.OutputDir == "" {
		job.OutputDir = pagecollect.DefaultOutputDir
	}

	if err := job.Validate(); err != nil {
		return nil, err
	}
	return job, nil
}
