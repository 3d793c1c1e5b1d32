// Package bloom provides upload deduplication using Bloom filters.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"

	"github.com/paperext/paperext/fs"
)

// Filter wraps a Bloom filter keyed on sanitized PDF filenames. Names are
// sanitized the same way the file store keys them, so raw upload names and
// stored names hit the same slot. A positive test means the filename was
// probably seen before and a stored extraction may exist; a negative test
// is definitive.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records an upload filename in the filter.
func (f *Filter) Add(name string) {
	f.f.AddString(fs.SanitizeFilename(name))
}

// Test returns true if the filename might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(name string) bool {
	return f.f.TestString(fs.SanitizeFilename(name))
}

// EstimatedCount returns the approximate number of items in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
