package main

import (
	"fmt"

	"github.com/fwojciec/serpjson"
)

// Run executes the clean command.
func (c *CleanCmd) Run(deps *Dependencies) error {
	html, err := deps.Read(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", serpjson.ErrorMessage(err))
		return err
	}

	out, err := deps.Cleaner.Clean(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", serpjson.ErrorMessage(err))
		return err
	}

	if c.Markdown {
		out, err = deps.Converter.Convert(out)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", serpjson.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintln(deps.Stdout, out)
	return nil
}
