package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/jobpage"
)

// Run executes the publish command.
func (c *PublishCmd) Run(deps *Dependencies) error {
	snapshot, err := readInput(deps, c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobpage.ErrorMessage(err))
		return err
	}

	job, err := editJob(deps, buildJob(deps, snapshot), c.Edit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobpage.ErrorMessage(err))
		return err
	}

	err = deps.Publisher.PublishJob(deps.Ctx, job, deps.Config.Target())

	result := jobpage.NewPublishResult(err)
	b, _ := json.Marshal(result)
	fmt.Fprintln(deps.Stdout, string(b))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", result.Error)
		return err
	}

	if c.Save {
		if err := deps.Jobs.CreateJob(deps.Ctx, job); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", jobpage.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintf(deps.Stderr, "Published %s\n", job.FileName())
	return nil
}
