package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/paperext/paperext"
)

// Compile-time interface verification.
var _ paperext.PaperService = (*PaperService)(nil)

// PaperService implements paperext.PaperService using SQLite.
type PaperService struct {
	db *DB
}

// NewPaperService creates a new PaperService.
func NewPaperService(db *DB) *PaperService {
	return &PaperService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreatePaper creates a new paper record.
func (s *PaperService) CreatePaper(ctx context.Context, paper *paperext.Paper) error {
	if err := paper.Validate(); err != nil {
		return err
	}

	paper.ID = uuid.New().String()
	paper.ExtractedAt = time.Now().UTC()
	if paper.ContentHash == "" {
		paper.ContentHash = hashContent(paper.Text)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO papers (id, filename, content_hash, title, text, pages, extracted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, paper.ID, paper.Filename, paper.ContentHash, paper.Title, paper.Text,
		paper.Pages, paper.ExtractedAt.Format(time.RFC3339))

	return err
}

// FindPaperByID retrieves a paper by ID.
func (s *PaperService) FindPaperByID(ctx context.Context, id string) (*paperext.Paper, error) {
	var paper paperext.Paper
	var extractedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, filename, content_hash, title, text, pages, extracted_at
		FROM papers
		WHERE id = ?
	`, id).Scan(&paper.ID, &paper.Filename, &paper.ContentHash, &paper.Title,
		&paper.Text, &paper.Pages, &extractedAt)

	if err == sql.ErrNoRows {
		return nil, paperext.Errorf(paperext.ENOTFOUND, "paper not found")
	}
	if err != nil {
		return nil, err
	}

	var parseErr error
	paper.ExtractedAt, parseErr = time.Parse(time.RFC3339, extractedAt)
	if parseErr != nil {
		return nil, fmt.Errorf("failed to parse extracted_at: %w", parseErr)
	}

	return &paper, nil
}

// FindPapers retrieves papers matching the filter, newest first.
func (s *PaperService) FindPapers(ctx context.Context, filter paperext.PaperFilter) ([]*paperext.Paper, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, filename, content_hash, title, text, pages, extracted_at FROM papers WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Filename != nil {
		query.WriteString(" AND filename = ?")
		args = append(args, *filter.Filename)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	query.WriteString(" ORDER BY extracted_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var papers []*paperext.Paper
	for rows.Next() {
		var paper paperext.Paper
		var extractedAt string

		if err := rows.Scan(&paper.ID, &paper.Filename, &paper.ContentHash, &paper.Title,
			&paper.Text, &paper.Pages, &extractedAt); err != nil {
			return nil, err
		}

		var parseErr error
		paper.ExtractedAt, parseErr = time.Parse(time.RFC3339, extractedAt)
		if parseErr != nil {
			return nil, fmt.Errorf("failed to parse extracted_at: %w", parseErr)
		}

		papers = append(papers, &paper)
	}

	return papers, rows.Err()
}

// DeletePaper permanently removes a paper.
func (s *PaperService) DeletePaper(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM papers WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return paperext.Errorf(paperext.ENOTFOUND, "paper not found")
	}
	return nil
}
