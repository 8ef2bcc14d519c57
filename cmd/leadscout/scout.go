package main

import (
	"fmt"
	"regexp"
	"time"

	"github.com/fwojciec/leadscout"
	"github.com/fwojciec/leadscout/discover"
	"github.com/fwojciec/leadscout/fs"
	"github.com/fwojciec/leadscout/pipeline"
)

var zipRE = regexp.MustCompile(`^\d{5}$`)

// Run executes the scout command: discover candidate URLs for the ZIP code,
// run them through the pipeline, and export the qualified businesses.
func (c *ScoutCmd) Run(deps *Dependencies) error {
	if !zipRE.MatchString(c.Zip) {
		err := leadscout.Errorf(leadscout.EINVALID, "zip code must be 5 digits, got %q", c.Zip)
		fmt.Fprintf(deps.Stderr, "error: %s\n", leadscout.ErrorMessage(err))
		return err
	}

	run := &leadscout.Run{ZipCode: c.Zip}
	if err := deps.Runs.CreateRun(deps.Ctx, run); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", leadscout.ErrorMessage(err))
		return err
	}

	pacer := pipeline.NewPacer(time.Duration(c.Delay * float64(time.Second)))

	fmt.Fprintf(deps.Stdout, "Searching for service businesses in %s...\n", c.Zip)

	d := &discover.Discoverer{
		Searcher: deps.Searcher,
		Pacer:    pacer,
		PerQuery: c.PerQuery,
	}
	urls, err := d.ByZip(deps.Ctx, c.Zip, c.Max, func(p discover.Progress) {
		if p.Err != nil {
			fmt.Fprintf(deps.Stderr, "  skip query %q: %v\n", p.Query, p.Err)
			return
		}
		fmt.Fprintf(deps.Stdout, "  [%d/%d] %s: %d new\n", p.QueryNum, p.QueryEnd, p.Query, p.Found)
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", leadscout.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Found %d candidate sites\n", len(urls))
	run.Candidates = len(urls)

	p := &pipeline.Pipeline{
		Fetcher:    deps.Fetcher,
		Extractor:  deps.Extractor,
		Qualifier:  deps.Qualifier,
		Businesses: deps.Businesses,
		Pacer:      pacer,
		RunID:      run.ID,
	}
	result, err := p.Run(deps.Ctx, urls, func(event pipeline.ProgressEvent) {
		switch event.Type {
		case pipeline.ProgressAccepted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] ✓ %s (%s)\n",
				event.Completed, event.Total, event.Business.BusinessName, event.URL)
			if event.Error != nil {
				fmt.Fprintf(deps.Stderr, "  warning: %v\n", event.Error)
			}
		case pipeline.ProgressRejected:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] ✗ %s (%s)\n",
				event.Completed, event.Total, event.Business.BusinessName, event.URL)
		case pipeline.ProgressSkipped:
			fmt.Fprintf(deps.Stderr, "  [%d/%d] skip %s: %v\n",
				event.Completed, event.Total, event.URL, event.Error)
		}
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", leadscout.ErrorMessage(err))
		return err
	}

	run.Accepted = result.Accepted
	run.Rejected = result.Rejected
	run.Skipped = result.Skipped
	if err := deps.Runs.FinishRun(deps.Ctx, run); err != nil {
		fmt.Fprintf(deps.Stderr, "warning: recording run: %v\n", err)
	}

	exporter := deps.Exporter
	if exporter == nil {
		exporter = fs.NewExporter(c.Out)
	}
	paths, err := exporter.Export(deps.Ctx, c.Zip, result.Businesses)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", leadscout.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "\nQualified %d of %d candidates (%d rejected, %d skipped)\n",
		result.Accepted, len(urls), result.Rejected, result.Skipped)
	for _, path := range paths {
		fmt.Fprintf(deps.Stdout, "  wrote %s\n", path)
	}

	return nil
}
