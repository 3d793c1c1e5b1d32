package main

import (
	"fmt"

	"github.com/paperext/paperext"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	papers, err := deps.Papers.FindPapers(deps.Ctx, paperext.PaperFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", paperext.ErrorMessage(err))
		return err
	}

	if len(papers) == 0 {
		fmt.Fprintln(deps.Stdout, "No papers found. Use 'paperext extract --save' or the HTTP API to add one.")
		return nil
	}

	for _, p := range papers {
		title := p.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n",
			p.ID, p.ExtractedAt.Format("2006-01-02"), p.Filename, title)
	}

	return nil
}
