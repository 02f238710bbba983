package main

import (
	"fmt"

	"github.com/fwojciec/vidmeta"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return vidmeta.Errorf(vidmeta.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Records.DeleteRecordByURL(deps.Ctx, c.URL); err != nil {
		if vidmeta.ErrorCode(err) == vidmeta.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: no record for %q. Use 'vidmeta list' to see cached records.\n", c.URL)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", vidmeta.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted record for %q\n", c.URL)
	return nil
}
