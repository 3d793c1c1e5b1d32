// Package slog provides logging decorators for paperext services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/paperext/paperext"
)

// Ensure LoggingConverter implements paperext.Converter.
var _ paperext.Converter = (*LoggingConverter)(nil)

// LoggingConverter wraps a Converter with logging.
type LoggingConverter struct {
	next   paperext.Converter
	logger *slog.Logger
}

// NewLoggingConverter creates a new LoggingConverter.
func NewLoggingConverter(next paperext.Converter, logger *slog.Logger) *LoggingConverter {
	return &LoggingConverter{next: next, logger: logger}
}

// Convert logs the conversion outcome and delegates to the wrapped converter.
func (c *LoggingConverter) Convert(ctx context.Context, path string) (doc *paperext.Document, err error) {
	defer func(begin time.Time) {
		blocks := 0
		if doc != nil {
			blocks = len(doc.Blocks)
		}
		c.logger.Info("convert",
			"path", path,
			"blocks", blocks,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Convert(ctx, path)
}
