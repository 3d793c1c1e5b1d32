package main

import (
	"fmt"

	"github.com/paperext/paperext"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Papers.DeletePaper(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", paperext.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted paper %s\n", c.ID)
	return nil
}
