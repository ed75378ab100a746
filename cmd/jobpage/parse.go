package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/jobpage"
	"github.com/fwojciec/jobpage/htmltomarkdown"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	var snapshot string
	var err error
	if c.URL != "" {
		snapshot, err = deps.Fetcher.Fetch(deps.Ctx, c.URL)
	} else {
		snapshot, err = readInput(deps, c.Input)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobpage.ErrorMessage(err))
		return err
	}

	job, err := editJob(deps, buildJob(deps, snapshot), c.Edit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobpage.ErrorMessage(err))
		return err
	}

	out, err := c.format(deps, job)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobpage.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, out)
	return nil
}

func (c *ParseCmd) format(deps *Dependencies, job *jobpage.Job) (string, error) {
	switch c.Format {
	case "html":
		return renderJob(deps, job)
	case "jsonld":
		return jobpage.MarshalJobPosting(jobpage.PageJobPosting(job, deps.Config.SalaryUnit))
	case "markdown":
		page, err := renderJob(deps, job)
		if err != nil {
			return "", err
		}
		body, err := deps.Converter.Convert(page)
		if err != nil {
			return "", err
		}
		return htmltomarkdown.FormatJob(job, body), nil
	default:
		b, err := json.MarshalIndent(job, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

// readInput reads a snapshot file, or stdin when name is "-".
func readInput(deps *Dependencies, name string) (string, error) {
	if name == "-" || name == "" {
		b, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(name)
	if os.IsNotExist(err) {
		return "", jobpage.Errorf(jobpage.ENOTFOUND, "snapshot %q not found", name)
	} else if err != nil {
		return "", fmt.Errorf("failed to read snapshot: %w", err)
	}
	return string(b), nil
}

// buildJob extracts and builds a job from snapshot markup. A snapshot with
// no recognizable fields still yields a job with defaulted fields.
func buildJob(deps *Dependencies, snapshot string) *jobpage.Job {
	raw := deps.Extractor.Extract(snapshot)
	if raw.IsEmpty() {
		fmt.Fprintln(deps.Stderr, "warning: no job fields found in snapshot")
	}
	return deps.Builder.Build(raw)
}

// editJob applies the manual edits in the JSON file at path to job. An empty
// path returns job unchanged. An edit that does not decode, or whose JSON-LD
// text does not parse, returns EINVALID.
func editJob(deps *Dependencies, job *jobpage.Job, path string) (*jobpage.Job, error) {
	if path == "" {
		return job, nil
	}
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, jobpage.Errorf(jobpage.ENOTFOUND, "edit file %q not found", path)
	} else if err != nil {
		return nil, fmt.Errorf("failed to read edit file: %w", err)
	}

	var upd jobpage.JobUpdate
	if err := json.Unmarshal(b, &upd); err != nil {
		return nil, jobpage.Errorf(jobpage.EINVALID, "invalid edit file: %v", err)
	}
	return deps.Builder.Update(job, upd)
}

func renderJob(deps *Dependencies, job *jobpage.Job) (string, error) {
	return deps.Renderer.RenderJobPage(job, jobpage.RenderOptions{
		Domain:      deps.Config.Domain,
		PublishedAt: deps.Now(),
		SalaryUnit:  deps.Config.SalaryUnit,
	})
}
