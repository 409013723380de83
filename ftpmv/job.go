package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Job is one transfer in a job file. Empty fields take the file's defaults.
type Job struct {
	Name            string `yaml:"name"`
	Connection      string `yaml:"connection"`
	Source          string `yaml:"source"`
	Destination     string `yaml:"destination"`
	DestinationPath string `yaml:"destination_path"`
	Move            *bool  `yaml:"move"`
	Protocol        string `yaml:"protocol"`
}

// JobFile is the layout of a --job file:
//
//	defaults:
//	  connection: partner_ftp
//	  destination: gs://landing
//	jobs:
//	  - source: outgoing/report_*
//	    destination_path: partner/reports
//	    move: true
//	  - name: invoices
//	    source: invoices/inv_2024*
//	    destination: s3://finance-landing/partner
type JobFile struct {
	Defaults Job   `yaml:"defaults"`
	Jobs     []Job `yaml:"jobs"`
}

// LoadJobs reads path and returns its jobs with defaults applied.
func LoadJobs(path string) ([]Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job file %s: %w", path, err)
	}
	jobs, err := ParseJobs(data)
	if err != nil {
		return nil, fmt.Errorf("parse job file %s: %w", path, err)
	}
	return jobs, nil
}

// ParseJobs parses a job file. Every job must end up with a connection, a source and a destination.
func ParseJobs(data []byte) ([]Job, error) {
	var f JobFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if len(f.Jobs) == 0 {
		return nil, errors.New("no jobs defined")
	}

	jobs := make([]Job, len(f.Jobs))
	var errs []error
	for i, j := range f.Jobs {
		j = j.withDefaults(f.Defaults)
		if j.Name == "" {
			j.Name = fmt.Sprintf("job-%d", i+1)
		}
		if err := j.validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", j.Name, err))
		}
		jobs[i] = j
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (j Job) withDefaults(d Job) Job {
	if j.Connection == "" {
		j.Connection = d.Connection
	}
	if j.Source == "" {
		j.Source = d.Source
	}
	if j.Destination == "" {
		j.Destination = d.Destination
	}
	if j.DestinationPath == "" {
		j.DestinationPath = d.DestinationPath
	}
	if j.Move == nil {
		j.Move = d.Move
	}
	if j.Protocol == "" {
		j.Protocol = d.Protocol
	}
	return j
}

func (j Job) validate() error {
	var missing []string
	if j.Connection == "" {
		missing = append(missing, "connection")
	}
	if j.Source == "" {
		missing = append(missing, "source")
	}
	if j.Destination == "" {
		missing = append(missing, "destination")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing %s", strings.Join(missing, ", "))
	}
	return nil
}

// MoveObject reports whether the job deletes its sources.
func (j Job) MoveObject() bool {
	return j.Move != nil && *j.Move
}

// splitDestination splits a destination such as "gs://landing/partner/in" into the bucket uri "gs://landing" and
// the key prefix "partner/in". A destination without a scheme keeps none.
func splitDestination(dest string) (bucketURI, prefix string) {
	scheme := ""
	rest := dest
	if i := strings.Index(dest, "://"); i >= 0 {
		scheme, rest = dest[:i+3], dest[i+3:]
	}
	rest = strings.TrimLeft(rest, "/")
	bucket, prefix, _ := strings.Cut(rest, "/")
	return scheme + bucket, prefix
}
