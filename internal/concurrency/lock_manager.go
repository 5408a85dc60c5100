package concurrency

import (
	"hash/maphash"
	"sync"
)

// DefaultStripes is the number of mutexes a LockManager spreads keys over.
const DefaultStripes = 256

// LockManager maps keys onto a fixed set of mutexes. A key always gets the
// same mutex, and the set never grows, so no mutex is ever dropped while a
// caller holds it. Distinct keys may share a stripe.
type LockManager struct {
	seed    maphash.Seed
	stripes []sync.Mutex
}

// NewLockManager creates a LockManager with n stripes, or DefaultStripes when n <= 0.
func NewLockManager(n int) *LockManager {
	if n <= 0 {
		n = DefaultStripes
	}
	return &LockManager{
		seed:    maphash.MakeSeed(),
		stripes: make([]sync.Mutex, n),
	}
}

// GetLock returns the mutex guarding key.
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	h := maphash.String(lm.seed, key)
	return &lm.stripes[h%uint64(len(lm.stripes))]
}
