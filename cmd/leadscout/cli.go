package main

import (
	"context"
	"io"

	"github.com/fwojciec/leadscout"
	"github.com/fwojciec/leadscout/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	DB         *sqlite.DB
	Businesses leadscout.BusinessService
	Runs       leadscout.RunService
	Searcher   leadscout.Searcher
	Fetcher    leadscout.Fetcher
	Extractor  leadscout.BusinessExtractor
	Qualifier  leadscout.Qualifier
	Exporter   leadscout.Exporter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scout  ScoutCmd  `cmd:"" help:"Find and qualify service businesses in a ZIP code"`
	List   ListCmd   `cmd:"" help:"List past runs"`
	Export ExportCmd `cmd:"" help:"Re-export stored businesses for a run"`
}

// ScoutCmd is the "scout" subcommand.
type ScoutCmd struct {
	Zip      string  `arg:"" help:"5-digit US ZIP code to search"`
	Max      int     `short:"m" default:"20" help:"Maximum businesses to process"`
	PerQuery int     `short:"q" default:"10" help:"Search results per service-type query"`
	Delay    float64 `short:"d" default:"2" help:"Seconds between requests"`
	Static   bool    `short:"s" help:"Plain HTTP fetching without browser rendering"`
	Out      string  `short:"o" default:"." help:"Directory for exported files"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	RunID string `arg:"" help:"Run ID to export"`
	Out   string `short:"o" default:"." help:"Directory for exported files"`
}
