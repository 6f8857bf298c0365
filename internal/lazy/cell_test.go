package lazy

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellComputesOnce(t *testing.T) {
	var cell Cell[[]string]
	calls := 0
	compute := func() ([]string, error) {
		calls++
		return []string{"a"}, nil
	}

	_, ok := cell.Peek()
	assert.False(t, ok)

	first, err := cell.Get(compute)
	require.NoError(t, err)
	second, err := cell.Get(compute)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"a"}, first)
	assert.Same(t, &first[0], &second[0], "the cached slice is returned, not a copy")

	peeked, ok := cell.Peek()
	assert.True(t, ok)
	assert.Equal(t, first, peeked)
}

func TestCellDoesNotCacheErrors(t *testing.T) {
	var cell Cell[int]
	boom := errors.New("boom")

	_, err := cell.Get(func() (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)

	v, err := cell.Get(func() (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestCellConcurrentGet(t *testing.T) {
	var cell Cell[int]
	var mu sync.Mutex
	calls := 0

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := cell.Get(func() (int, error) {
				mu.Lock()
				calls++
				mu.Unlock()
				return 42, nil
			})
			assert.NoError(t, err)
			assert.Equal(t, 42, v)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, calls)
}
