package bloom_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/juniperonsteam67-glitch/clawdoc/bloom"
)

func TestFilter_Seen(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.Seen("man:tar"))
	assert.True(t, f.Seen("man:tar"))
	assert.False(t, f.Seen("https://example.com/docs"))
	assert.True(t, f.Seen("https://example.com/docs"))
}

func TestFilter_Seen_Concurrent(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(10000, 0.01)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				f.Seen(fmt.Sprintf("source-%d-%d", n, j))
			}
		}(i)
	}
	wg.Wait()

	assert.Greater(t, f.EstimatedCount(), uint(700))
}
