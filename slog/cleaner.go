package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/serpjson"
)

// Ensure LoggingCleaner implements serpjson.Cleaner.
var _ serpjson.Cleaner = (*LoggingCleaner)(nil)

// LoggingCleaner wraps a Cleaner with debug logging.
type LoggingCleaner struct {
	next   serpjson.Cleaner
	logger *slog.Logger
}

// NewLoggingCleaner creates a new LoggingCleaner.
func NewLoggingCleaner(next serpjson.Cleaner, logger *slog.Logger) *LoggingCleaner {
	return &LoggingCleaner{next: next, logger: logger}
}

// Clean delegates to the wrapped cleaner and logs the size reduction.
func (c *LoggingCleaner) Clean(html string) (out string, err error) {
	defer func(begin time.Time) {
		c.logger.Debug("clean",
			"bytes_in", len(html),
			"bytes_out", len(out),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Clean(html)
}
