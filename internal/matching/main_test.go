package matching

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestMatchConcurrentUse(t *testing.T) {
	m := DefaultMatcher()
	arms := builtinArms()
	want := ids(m.Match(packagingRequirements(), arms).Arms)

	var wg sync.WaitGroup
	results := make([][]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = ids(m.Match(packagingRequirements(), arms).Arms)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
