// Package bloom provides source deduplication for batch learning runs
// using Bloom filters.
package bloom

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter tracks sources already submitted during a batch run so the
// same page or man entry is not fetched twice. False positives skip a
// source that was never learned; false negatives cannot happen.
type Filter struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected sources with the
// given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen records the source and reports whether it was already present.
// Safe for concurrent use.
func (f *Filter) Seen(source string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.TestOrAddString(source)
}

// EstimatedCount returns the approximate number of recorded sources.
func (f *Filter) EstimatedCount() uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	return uint(f.f.ApproximatedSize())
}
