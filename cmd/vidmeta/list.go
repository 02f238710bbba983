package main

import (
	"fmt"

	"github.com/fwojciec/vidmeta"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := vidmeta.RecordFilter{Limit: c.Limit}
	if c.VideoID != "" {
		filter.VideoID = &c.VideoID
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vidmeta.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'vidmeta extract --save' to create one.")
		return nil
	}

	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", r.Record.ID, r.SourceURL, r.Record.Title)
	}

	return nil
}
