package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/serpjson"
)

// Ensure LoggingExtractor implements serpjson.Extractor.
var _ serpjson.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   serpjson.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next serpjson.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs what it found.
func (e *LoggingExtractor) Extract(html string) (rec *serpjson.Record, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"bytes", len(html),
			"categories", len(rec.Categories()),
			"organic", organicCount(rec),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}

func organicCount(rec *serpjson.Record) int {
	if rec == nil {
		return 0
	}
	return len(rec.OrganicResults)
}
