package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/serpjson"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := serpjson.SnapshotFilter{Limit: c.Limit}
	if c.Source != "" {
		filter.SourcePath = &c.Source
	}

	snaps, err := deps.Snapshots.FindSnapshots(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", serpjson.ErrorMessage(err))
		return err
	}

	if len(snaps) == 0 {
		fmt.Fprintln(deps.Stdout, "No snapshots found. Use 'serpjson convert --archive' to create one.")
		return nil
	}

	for _, s := range snaps {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n",
			s.ID, s.ParsedAt.Format(time.RFC3339), s.SourcePath, s.Title)
	}

	return nil
}
