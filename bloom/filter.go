// Package bloom deduplicates candidate URLs across search queries using a
// Bloom filter.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter tracks which candidate URLs have already been surfaced. A false
// positive drops a never-seen URL; discovery tolerates that in exchange for
// constant memory across arbitrarily many queries.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs with the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// TestOrAdd reports whether the URL was possibly seen before and records it
// either way.
func (f *Filter) TestOrAdd(url string) bool {
	return f.f.TestOrAddString(url)
}

// Test returns true if the URL might have been recorded.
// False positives are possible; false negatives are not.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}

// EstimatedCount returns the approximate number of recorded URLs.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
