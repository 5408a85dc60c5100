package luck

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTally_AddAndTotal(t *testing.T) {
	tally := NewMemoryTally(time.Minute)
	ctx := context.Background()

	total, err := tally.Total(ctx, "abcdef0123")
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)

	total, err = tally.Add(ctx, "abcdef0123", 2.5)
	require.NoError(t, err)
	assert.Equal(t, 2.5, total)

	total, err = tally.Add(ctx, "abcdef0123", 4.0)
	require.NoError(t, err)
	assert.Equal(t, 6.5, total)

	total, err = tally.Total(ctx, "abcdef0123")
	require.NoError(t, err)
	assert.Equal(t, 6.5, total)

	other, err := tally.Total(ctx, "0123456789")
	require.NoError(t, err)
	assert.Equal(t, 0.0, other)
}

func TestMemoryTally_ConcurrentAdds(t *testing.T) {
	tally := NewMemoryTally(time.Minute)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = tally.Add(ctx, "abcdef0123", 1)
		}()
	}
	wg.Wait()

	total, err := tally.Total(ctx, "abcdef0123")
	require.NoError(t, err)
	assert.Equal(t, 40.0, total)
}

func TestMemoryTally_CancelledContext(t *testing.T) {
	tally := NewMemoryTally(0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tally.Add(ctx, "abcdef0123", 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewRedisTally_BadURL(t *testing.T) {
	_, err := NewRedisTally(context.Background(), "not-a-url", time.Minute)
	assert.Error(t, err)
}
