package mock

import (
	"context"

	"github.com/paperext/paperext"
)

var _ paperext.PaperService = (*PaperService)(nil)

// PaperService is a mock implementation of paperext.PaperService.
type PaperService struct {
	CreatePaperFn   func(ctx context.Context, paper *paperext.Paper) error
	FindPaperByIDFn func(ctx context.Context, id string) (*paperext.Paper, error)
	FindPapersFn    func(ctx context.Context, filter paperext.PaperFilter) ([]*paperext.Paper, error)
	DeletePaperFn   func(ctx context.Context, id string) error
}

func (s *PaperService) CreatePaper(ctx context.Context, paper *paperext.Paper) error {
	return s.CreatePaperFn(ctx, paper)
}

func (s *PaperService) FindPaperByID(ctx context.Context, id string) (*paperext.Paper, error) {
	return s.FindPaperByIDFn(ctx, id)
}

func (s *PaperService) FindPapers(ctx context.Context, filter paperext.PaperFilter) ([]*paperext.Paper, error) {
	return s.FindPapersFn(ctx, filter)
}

func (s *PaperService) DeletePaper(ctx context.Context, id string) error {
	return s.DeletePaperFn(ctx, id)
}
