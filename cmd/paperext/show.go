package main

import (
	"fmt"

	"github.com/paperext/paperext"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	paper, err := deps.Papers.FindPaperByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", paperext.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "ID:        %s\n", paper.ID)
	fmt.Fprintf(deps.Stdout, "File:      %s\n", paper.Filename)
	fmt.Fprintf(deps.Stdout, "Title:     %s\n", paper.Title)
	fmt.Fprintf(deps.Stdout, "Pages:     %d\n", paper.Pages)
	fmt.Fprintf(deps.Stdout, "Extracted: %s\n", paper.ExtractedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(deps.Stdout)
	fmt.Fprintln(deps.Stdout, paper.Text)

	return nil
}
