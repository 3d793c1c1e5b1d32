package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/paperext/paperext"
	"github.com/paperext/paperext/docling"
	"github.com/paperext/paperext/fs"
)

// extraction is one file's output line.
type extraction struct {
	File  string `json:"file"`
	Title string `json:"title,omitempty"`
	Text  string `json:"text,omitempty"`
	Error string `json:"error,omitempty"`
}

// Run executes the extract command. Files are processed concurrently and
// results printed in input order as JSON lines.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	tmpDir, err := os.MkdirTemp("", "paperext-trim-")
	if err != nil {
		return fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	results := make([]extraction, len(c.Paths))

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)

	for i, path := range c.Paths {
		g.Go(func() error {
			res := extraction{File: path}

			doc, err := c.loadDocument(deps, tmpDir, i, path)
			if err == nil {
				var sections paperext.Result
				sections, err = paperext.Extract(doc)
				if err == nil {
					res.Title = sections.Title
					res.Text = paperext.SelectText(doc, sections)
				}
			}
			if err != nil {
				res.Error = err.Error()
			}

			if res.Error == "" && c.Save {
				paper := &paperext.Paper{
					Filename: fs.SanitizeFilename(filepath.Base(path)),
					Title:    res.Title,
					Text:     res.Text,
					Pages:    c.Pages,
				}
				if err := deps.Papers.CreatePaper(ctx, paper); err != nil {
					res.Error = err.Error()
				}
			}

			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	failed := 0
	for _, res := range results {
		if res.Error != "" {
			failed++
		}
		if err := enc.Encode(res); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

// loadDocument produces a structured document from one input file, either by
// decoding a JSON export directly or by trimming and converting a PDF.
func (c *ExtractCmd) loadDocument(deps *Dependencies, tmpDir string, i int, path string) (*paperext.Document, error) {
	if c.JSON {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return docling.ParseDocument(data)
	}

	// Index prefix keeps trimmed copies distinct when inputs share a base name.
	trimmed := filepath.Join(tmpDir, fmt.Sprintf("%d_%s", i, fs.SanitizeFilename(filepath.Base(path))))
	if err := deps.Trimmer.Trim(path, trimmed, c.Pages); err != nil {
		return nil, err
	}
	return deps.Converter.Convert(deps.Ctx, trimmed)
}
