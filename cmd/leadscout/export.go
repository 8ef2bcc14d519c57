package main

import (
	"fmt"

	"github.com/fwojciec/leadscout"
	"github.com/fwojciec/leadscout/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	run, err := deps.Runs.FindRunByID(deps.Ctx, c.RunID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", leadscout.ErrorMessage(err))
		return err
	}

	businesses, err := deps.Businesses.FindBusinesses(deps.Ctx, leadscout.BusinessFilter{RunID: &run.ID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", leadscout.ErrorMessage(err))
		return err
	}

	exporter := deps.Exporter
	if exporter == nil {
		exporter = fs.NewExporter(c.Out)
	}
	paths, err := exporter.Export(deps.Ctx, run.ZipCode, businesses)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", leadscout.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d businesses from run %s\n", len(businesses), run.ID)
	for _, path := range paths {
		fmt.Fprintf(deps.Stdout, "  wrote %s\n", path)
	}

	return nil
}
