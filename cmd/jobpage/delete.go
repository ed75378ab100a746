package main

import (
	"fmt"

	"github.com/fwojciec/jobpage"
)

// Run executes the delete command. Published pages are left in place.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return jobpage.Errorf(jobpage.EINVALID, "use --force to confirm deletion")
	}

	job, err := deps.Jobs.FindJobBySlug(deps.Ctx, c.Slug)
	if jobpage.ErrorCode(err) == jobpage.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: job %q not found. Use 'jobpage list' to see stored jobs.\n", c.Slug)
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobpage.ErrorMessage(err))
		return err
	}

	if err := deps.Jobs.DeleteJob(deps.Ctx, job.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobpage.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted job %q\n", job.Slug)
	return nil
}
