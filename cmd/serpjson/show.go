package main

import (
	"fmt"

	"github.com/fwojciec/serpjson"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	snap, err := deps.Snapshots.FindSnapshotByID(deps.Ctx, c.ID)
	if serpjson.ErrorCode(err) == serpjson.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: snapshot %q not found. Use 'serpjson history' to see archived snapshots.\n", c.ID)
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", serpjson.ErrorMessage(err))
		return err
	}

	b, err := serpjson.MarshalRecord(snap.Record, !c.Compact)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", serpjson.ErrorMessage(err))
		return err
	}

	_, err = deps.Stdout.Write(b)
	return err
}
