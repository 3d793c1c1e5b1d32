package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/paperext/paperext"
	"github.com/paperext/paperext/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	DB        *sqlite.DB
	Papers    paperext.PaperService
	Converter paperext.Converter
	Trimmer   paperext.PageTrimmer
	Files     paperext.FileStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve   ServeCmd   `cmd:"" help:"Run the extraction HTTP service"`
	Extract ExtractCmd `cmd:"" help:"Extract text from PDF files or Docling JSON exports"`
	List    ListCmd    `cmd:"" help:"List stored extractions"`
	Show    ShowCmd    `cmd:"" help:"Show one stored extraction"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored extraction"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr       string `default:":8080" help:"Listen address"`
	DataDir    string `default:"./data" help:"Directory for uploaded PDFs"`
	DoclingURL string `default:"http://localhost:5001" env:"PAPEREXT_DOCLING_URL" help:"Docling conversion service URL"`
	Pages      int    `default:"6" help:"Leading pages kept before conversion"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Paths       []string `arg:"" help:"PDF files (or JSON exports with --json)"`
	JSON        bool     `help:"Treat inputs as Docling JSON exports, skipping conversion"`
	Save        bool     `help:"Store extraction results in the database"`
	Pages       int      `default:"6" help:"Leading pages kept before conversion"`
	Concurrency int      `short:"c" default:"2" help:"Concurrent extraction limit"`
	DoclingURL  string   `default:"http://localhost:5001" env:"PAPEREXT_DOCLING_URL" help:"Docling conversion service URL"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Limit int `default:"50" help:"Maximum number of papers to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Paper ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Paper ID"`
}
