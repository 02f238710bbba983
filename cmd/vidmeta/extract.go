package main

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fwojciec/vidmeta"
	"golang.org/x/sync/errgroup"
)

// extractResult holds the outcome of processing a single URL.
type extractResult struct {
	url    string
	record *vidmeta.Record
	err    error
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	results := make([]extractResult, len(c.URLs))

	g, gctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)

	for i, rawURL := range c.URLs {
		i, rawURL := i, rawURL
		g.Go(func() error {
			results[i] = extractResult{url: rawURL}

			u, err := url.Parse(rawURL)
			if err != nil {
				results[i].err = err
				return nil
			}
			if deps.Limiter != nil {
				if err := deps.Limiter.Wait(gctx, u.Host); err != nil {
					results[i].err = err
					return nil
				}
			}

			html, err := deps.Fetcher.Fetch(gctx, rawURL)
			if err != nil {
				results[i].err = err
				return nil
			}

			rec, err := deps.Extractor.Extract(vidmeta.Document{URL: rawURL, HTML: html})
			if err != nil {
				results[i].err = err
				return nil
			}

			results[i].record = rec
			return nil
		})
	}
	_ = g.Wait()

	// Report in input order so output is stable regardless of completion order.
	var failed int
	for _, result := range results {
		if result.err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "skip %s: %s\n", result.url, vidmeta.ErrorMessage(result.err))
			continue
		}

		if c.Save {
			stored := &vidmeta.StoredRecord{
				SourceURL: result.url,
				Record:    *result.record,
			}
			if err := deps.Records.SaveRecord(deps.Ctx, stored); err != nil {
				failed++
				fmt.Fprintf(deps.Stderr, "error saving %s: %s\n", result.url, vidmeta.ErrorMessage(err))
				continue
			}
		}

		if err := printRecord(deps, result.record, c.JSON); err != nil {
			return err
		}
	}

	if failed > 0 {
		return vidmeta.Errorf(vidmeta.EINTERNAL, "%d of %d URLs failed", failed, len(c.URLs))
	}

	return nil
}

// printRecord writes one record to stdout, as JSON or aligned text.
func printRecord(deps *Dependencies, rec *vidmeta.Record, asJSON bool) error {
	if asJSON {
		return json.NewEncoder(deps.Stdout).Encode(rec)
	}

	fmt.Fprintf(deps.Stdout, "id:          %s\n", rec.ID)
	fmt.Fprintf(deps.Stdout, "media:       %s\n", rec.MediaURL)
	if rec.Title != "" {
		fmt.Fprintf(deps.Stdout, "title:       %s\n", rec.Title)
	}
	if rec.Description != "" {
		fmt.Fprintf(deps.Stdout, "description: %s\n", rec.Description)
	}
	if rec.DurationSeconds > 0 {
		fmt.Fprintf(deps.Stdout, "duration:    %ds\n", rec.DurationSeconds)
	}
	if rec.UploadDate != "" {
		fmt.Fprintf(deps.Stdout, "uploaded:    %s\n", rec.UploadDate)
	}
	if rec.ThumbnailURL != "" {
		fmt.Fprintf(deps.Stdout, "thumbnail:   %s\n", rec.ThumbnailURL)
	}

	return nil
}
