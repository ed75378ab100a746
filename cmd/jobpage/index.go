package main

import (
	"fmt"

	"github.com/fwojciec/jobpage"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	if err := deps.Publisher.RegenerateIndex(deps.Ctx, deps.Config.Target()); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobpage.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, "Index regenerated")
	return nil
}
