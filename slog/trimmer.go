package slog

import (
	"log/slog"
	"time"

	"github.com/paperext/paperext"
)

// Ensure LoggingTrimmer implements paperext.PageTrimmer.
var _ paperext.PageTrimmer = (*LoggingTrimmer)(nil)

// LoggingTrimmer wraps a PageTrimmer with logging.
type LoggingTrimmer struct {
	next   paperext.PageTrimmer
	logger *slog.Logger
}

// NewLoggingTrimmer creates a new LoggingTrimmer.
func NewLoggingTrimmer(next paperext.PageTrimmer, logger *slog.Logger) *LoggingTrimmer {
	return &LoggingTrimmer{next: next, logger: logger}
}

// Trim logs the trim outcome and delegates to the wrapped trimmer.
func (t *LoggingTrimmer) Trim(src, dst string, pages int) (err error) {
	defer func(begin time.Time) {
		t.logger.Info("trim",
			"src", src,
			"dst", dst,
			"pages", pages,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return t.next.Trim(src, dst, pages)
}
