package main

import (
	"context"
	"io"

	"github.com/fwojciec/vidmeta"
	"github.com/fwojciec/vidmeta/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Records   vidmeta.RecordService
	Extractor vidmeta.Extractor
	Fetcher   vidmeta.Fetcher
	Limiter   vidmeta.DomainLimiter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" help:"Fetch video pages and extract their metadata"`
	List    ListCmd    `cmd:"" help:"List cached records"`
	Delete  DeleteCmd  `cmd:"" help:"Delete the cached record for a URL"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URLs        []string `arg:"" help:"Video page URLs"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
	Save        bool     `short:"s" help:"Cache extracted records in the database"`
	JSON        bool     `short:"j" help:"Print records as JSON"`
	Verbose     bool     `short:"v" help:"Log extraction outcomes to stderr"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	VideoID string `help:"Only show records for this video id"`
	Limit   int    `short:"n" help:"Maximum number of records to show"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	URL   string `arg:"" help:"Source URL of the record"`
	Force bool   `help:"Confirm deletion"`
}
