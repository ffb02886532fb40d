package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/siteforge/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	t.Run("no false negatives", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.01)
		for i := 0; i < 500; i++ {
			f.Add(fmt.Sprintf("https://example.com/page-%d", i))
		}
		for i := 0; i < 500; i++ {
			assert.True(t, f.Test(fmt.Sprintf("https://example.com/page-%d", i)))
		}
	})

	t.Run("unseen URLs mostly absent", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.01)
		f.Add("https://example.com/")

		falsePositives := 0
		for i := 0; i < 1000; i++ {
			if f.Test(fmt.Sprintf("https://other.com/%d", i)) {
				falsePositives++
			}
		}
		assert.Less(t, falsePositives, 50)
	})
}
