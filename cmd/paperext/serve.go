package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/paperext/paperext/bloom"
	paperexthttp "github.com/paperext/paperext/http"
)

// Run executes the serve command. It blocks until interrupted.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := paperexthttp.NewServer()
	server.Addr = c.Addr
	server.Converter = deps.Converter
	server.Trimmer = deps.Trimmer
	server.Files = deps.Files
	server.Papers = deps.Papers
	server.Seen = bloom.NewFilter(100000, 0.01)
	server.Pages = c.Pages
	server.Logger = deps.Logger

	if err := server.Open(); err != nil {
		return fmt.Errorf("failed to start server on %s: %w", c.Addr, err)
	}
	defer server.Close()

	fmt.Fprintf(deps.Stdout, "listening on %s\n", c.Addr)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sig:
	case <-deps.Ctx.Done():
	}

	return nil
}
