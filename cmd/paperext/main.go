package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/paperext/paperext"
	"github.com/paperext/paperext/docling"
	"github.com/paperext/paperext/fs"
	"github.com/paperext/paperext/pdfcpu"
	paperextslog "github.com/paperext/paperext/slog"
	"github.com/paperext/paperext/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Service for end-to-end testing.
	PaperService paperext.PaperService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(stderr, nil)),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("paperext"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'paperext --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PAPEREXT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.PaperService = sqlite.NewPaperService(m.DB)
	deps.DB = m.DB
	deps.Papers = paperextslog.NewLoggingPaperService(m.PaperService, deps.Logger)

	// The conversion stack is only needed by commands that touch PDFs.
	switch cmd {
	case "serve":
		deps.Files = fs.NewPDFStore(cli.Serve.DataDir)
		deps.Trimmer = paperextslog.NewLoggingTrimmer(pdfcpu.NewTrimmer(), deps.Logger)
		deps.Converter = paperextslog.NewLoggingConverter(
			docling.NewClient(cli.Serve.DoclingURL), deps.Logger)
	case "extract":
		if !cli.Extract.JSON {
			deps.Trimmer = paperextslog.NewLoggingTrimmer(pdfcpu.NewTrimmer(), deps.Logger)
			deps.Converter = paperextslog.NewLoggingConverter(
				docling.NewClient(cli.Extract.DoclingURL), deps.Logger)
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("PAPEREXT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "paperext.db"
	}
	dir := filepath.Join(home, ".paperext")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "paperext.db")
}
