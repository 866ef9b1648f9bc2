package main

import (
	"fmt"

	"github.com/fwojciec/serpjson"
	"github.com/fwojciec/serpjson/batch"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	if c.Output == "" && len(c.Files) > 1 {
		fmt.Fprintf(deps.Stderr, "error: use --output to convert more than one file\n")
		return serpjson.Errorf(serpjson.EINVALID, "use --output to convert more than one file")
	}
	if c.Archive && deps.Snapshots == nil {
		fmt.Fprintf(deps.Stderr, "error: snapshot archive unavailable\n")
		return serpjson.Errorf(serpjson.EINTERNAL, "snapshot archive unavailable")
	}

	runner := &batch.Runner{
		Read:        deps.Read,
		Extractor:   deps.Extractor,
		Concurrency: c.Concurrency,
		Indent:      c.Pretty,
	}
	if c.Clean {
		runner.Cleaner = deps.Cleaner
	}
	if c.Output != "" {
		runner.Outputs = deps.NewOutputStore(c.Output)
	}
	if c.Archive {
		runner.Snapshots = deps.Snapshots
	}

	progress := func(event batch.ProgressEvent) {
		if event.Type == batch.ProgressFailed {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.Path, serpjson.ErrorMessage(event.Error))
		}
	}

	result, err := runner.Run(deps.Ctx, c.Files, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", serpjson.ErrorMessage(err))
		return err
	}

	if c.Output == "" {
		_, err := deps.Stdout.Write(result.Outputs[0].JSON)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Converted %d pages (%s) to %s\n",
		result.Converted, batch.FormatBytes(result.Bytes), c.Output)
	if result.Archived > 0 {
		fmt.Fprintf(deps.Stdout, "Archived %d snapshots\n", result.Archived)
	}
	return nil
}
