// Package slog provides logging decorators for vidmeta services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/vidmeta"
)

// Ensure LoggingExtractor implements vidmeta.Extractor.
var _ vidmeta.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with structured logging of extraction
// outcomes.
type LoggingExtractor struct {
	next   vidmeta.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next vidmeta.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(doc vidmeta.Document) (*vidmeta.Record, error) {
	begin := time.Now()
	rec, err := e.next.Extract(doc)
	if err != nil {
		e.logger.Info("extraction failed",
			"url", doc.URL,
			"code", vidmeta.ErrorCode(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	e.logger.Info("extraction succeeded",
		"url", doc.URL,
		"id", rec.ID,
		"duration", time.Since(begin),
	)
	return rec, nil
}
