// Package mock provides mock implementations of paperext service interfaces.
package mock

import (
	"context"

	"github.com/paperext/paperext"
)

var _ paperext.Converter = (*Converter)(nil)

// Converter is a mock implementation of paperext.Converter.
type Converter struct {
	ConvertFn func(ctx context.Context, path string) (*paperext.Document, error)
}

func (c *Converter) Convert(ctx context.Context, path string) (*paperext.Document, error) {
	return c.ConvertFn(ctx, path)
}
