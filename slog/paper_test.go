package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/paperext/paperext"
	"github.com/paperext/paperext/mock"
	paperextslog "github.com/paperext/paperext/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingPaperService_CreatePaper(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.PaperService{
		CreatePaperFn: func(ctx context.Context, paper *paperext.Paper) error {
			paper.ID = "generated"
			return nil
		},
	}

	svc := paperextslog.NewLoggingPaperService(inner, logger)
	paper := &paperext.Paper{Filename: "p.pdf", Text: "extracted text"}
	require.NoError(t, svc.CreatePaper(context.Background(), paper))

	assert.Equal(t, "generated", paper.ID)
	output := buf.String()
	assert.Contains(t, output, "create paper")
	assert.Contains(t, output, "filename=p.pdf")
	assert.Contains(t, output, "chars=14")
}

func TestLoggingPaperService_DelegatesReads(t *testing.T) {
	t.Parallel()

	inner := &mock.PaperService{
		FindPaperByIDFn: func(ctx context.Context, id string) (*paperext.Paper, error) {
			return &paperext.Paper{ID: id}, nil
		},
		FindPapersFn: func(ctx context.Context, filter paperext.PaperFilter) ([]*paperext.Paper, error) {
			return []*paperext.Paper{{ID: "a"}}, nil
		},
	}

	svc := paperextslog.NewLoggingPaperService(inner, slog.New(slog.DiscardHandler))

	paper, err := svc.FindPaperByID(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", paper.ID)

	papers, err := svc.FindPapers(context.Background(), paperext.PaperFilter{})
	require.NoError(t, err)
	assert.Len(t, papers, 1)
}
