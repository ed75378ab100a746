package main

import (
	"fmt"

	"github.com/fwojciec/jobpage"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := jobpage.JobFilter{Limit: c.Limit}
	if c.Company != "" {
		filter.Company = &c.Company
	}

	jobs, err := deps.Jobs.FindJobs(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobpage.ErrorMessage(err))
		return err
	}

	if len(jobs) == 0 {
		fmt.Fprintln(deps.Stdout, "No jobs found. Use 'jobpage publish --save' to store one.")
		return nil
	}

	for _, j := range jobs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", j.ID, j.Slug, j.PageTitle)
	}

	return nil
}
