package bloom_test

import (
	"fmt"
	"testing"

	"github.com/paperext/paperext/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_AddAndTest(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.Test("paper_one.pdf"))

	f.Add("paper_one.pdf")

	assert.True(t, f.Test("paper_one.pdf"))
	assert.False(t, f.Test("paper_two.pdf"))
}

func TestFilter_SanitizesNames(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	f.Add("lichen survey.pdf")

	// The raw upload name, its sanitized form, and a path ending in it
	// all key the same slot.
	assert.True(t, f.Test("lichen survey.pdf"))
	assert.True(t, f.Test("lichen_survey.pdf"))
	assert.True(t, f.Test("/data/uploads/lichen survey.pdf"))
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.Equal(t, uint(0), f.EstimatedCount())

	f.Add("a.pdf")
	f.Add("b.pdf")
	f.Add("c.pdf")

	count := f.EstimatedCount()
	assert.True(t, count >= 2 && count <= 4, "expected count near 3, got %d", count)
}

func TestFilter_AddIsIdempotent(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	name := "repeat_upload.pdf"

	f.Add(name)
	countAfterFirst := f.EstimatedCount()

	f.Add(name)
	f.Add(name)
	f.Add(name)

	assert.Equal(t, countAfterFirst, f.EstimatedCount())
	assert.True(t, f.Test(name))
}

func TestFilter_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	const (
		numItems   = 10000
		fpRate     = 0.01
		testProbes = 10000
	)

	f := bloom.NewFilter(numItems, fpRate)

	for i := range numItems {
		f.Add(fmt.Sprintf("added_%d.pdf", i))
	}

	falsePositives := 0
	for i := range testProbes {
		if f.Test(fmt.Sprintf("notadded_%d.pdf", i)) {
			falsePositives++
		}
	}

	// Allow up to 2% to account for statistical variance.
	actualRate := float64(falsePositives) / float64(testProbes)
	assert.Less(t, actualRate, 0.02, "false positive rate %f exceeds 2%%", actualRate)
}
