package concurrency

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLock_SameKeySameMutex(t *testing.T) {
	lm := NewLockManager(16)
	assert.Same(t, lm.GetLock("a"), lm.GetLock("a"))
}

func TestGetLock_StaysWithinStripes(t *testing.T) {
	lm := NewLockManager(4)
	seen := make(map[*sync.Mutex]struct{})
	for i := 0; i < 100; i++ {
		seen[lm.GetLock(fmt.Sprintf("session-%d", i))] = struct{}{}
	}
	assert.LessOrEqual(t, len(seen), 4)
}

func TestNewLockManager_DefaultStripes(t *testing.T) {
	lm := NewLockManager(0)
	assert.Len(t, lm.stripes, DefaultStripes)
}

func TestGetLock_SerializesPerKey(t *testing.T) {
	lm := NewLockManager(8)
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mu := lm.GetLock("session")
			mu.Lock()
			counter++
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}
