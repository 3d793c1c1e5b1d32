// Package docling implements PDF conversion against a Docling sidecar
// service over HTTP.
package docling

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/paperext/paperext"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout        = 5 * time.Minute
	defaultRequestsPerSec = 2
)

// Client converts PDF files by posting them to a Docling conversion service.
// A rate limiter spaces out requests so a batch run cannot overwhelm the
// sidecar, which processes one document at a time.
type Client struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	pages   int
}

var _ paperext.Converter = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithTimeout sets the per-conversion timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.client.Timeout = d }
}

// WithRateLimit sets the maximum conversion requests per second.
func WithRateLimit(rps float64) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), 1) }
}

// WithPages asks the service to convert only the first n pages. Zero means
// the whole document.
func WithPages(n int) Option {
	return func(c *Client) { c.pages = n }
}

// NewClient returns a Client talking to the conversion service at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultTimeout},
		limiter: rate.NewLimiter(rate.Limit(defaultRequestsPerSec), 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert uploads the PDF at path and returns its structured document.
func (c *Client) Convert(ctx context.Context, path string) (*paperext.Document, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("copy pdf: %w", err)
	}
	if c.pages > 0 {
		if err := mw.WriteField("pages", strconv.Itoa(c.pages)); err != nil {
			return nil, fmt.Errorf("write pages field: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/convert", &body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post pdf: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, paperext.Errorf(paperext.EINTERNAL, "conversion service returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return ParseDocument(data)
}
