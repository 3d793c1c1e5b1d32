package mock

import "github.com/paperext/paperext"

var _ paperext.PageTrimmer = (*PageTrimmer)(nil)

// PageTrimmer is a mock implementation of paperext.PageTrimmer.
type PageTrimmer struct {
	TrimFn func(src, dst string, pages int) error
}

func (t *PageTrimmer) Trim(src, dst string, pages int) error {
	return t.TrimFn(src, dst, pages)
}
