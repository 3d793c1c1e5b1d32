package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/paperext/paperext"
)

// Ensure LoggingPaperService implements paperext.PaperService.
var _ paperext.PaperService = (*LoggingPaperService)(nil)

// LoggingPaperService wraps a PaperService with logging.
type LoggingPaperService struct {
	next   paperext.PaperService
	logger *slog.Logger
}

// NewLoggingPaperService creates a new LoggingPaperService.
func NewLoggingPaperService(next paperext.PaperService, logger *slog.Logger) *LoggingPaperService {
	return &LoggingPaperService{next: next, logger: logger}
}

// CreatePaper logs the create outcome and delegates to the wrapped service.
func (s *LoggingPaperService) CreatePaper(ctx context.Context, paper *paperext.Paper) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create paper",
			"filename", paper.Filename,
			"chars", len(paper.Text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreatePaper(ctx, paper)
}

func (s *LoggingPaperService) FindPaperByID(ctx context.Context, id string) (*paperext.Paper, error) {
	return s.next.FindPaperByID(ctx, id)
}

func (s *LoggingPaperService) FindPapers(ctx context.Context, filter paperext.PaperFilter) ([]*paperext.Paper, error) {
	return s.next.FindPapers(ctx, filter)
}

// DeletePaper logs the delete outcome and delegates to the wrapped service.
func (s *LoggingPaperService) DeletePaper(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete paper",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeletePaper(ctx, id)
}
