package session

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/WishEval_Go/internal/concurrency"
	"github.com/osse101/WishEval_Go/internal/domain"
)

// Config controls store capacity and expiry.
type Config struct {
	Capacity int
	TTL      time.Duration
}

// Stats is a snapshot of store usage for the admin endpoint.
type Stats struct {
	Size     int   `json:"size"`
	Capacity int   `json:"capacity"`
	Hits     int64 `json:"hits"`
	Misses   int64 `json:"misses"`
	Evicted  int64 `json:"evicted"`
}

// Store keeps sessions in an expiring LRU. All mutations go through Update,
// which serializes work per session ID.
type Store struct {
	lru      *expirable.LRU[string, *Session]
	locks    *concurrency.LockManager
	capacity int

	hits    atomic.Int64
	misses  atomic.Int64
	evicted atomic.Int64
}

// NewStore creates a session store.
func NewStore(cfg Config) *Store {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}

	s := &Store{
		locks:    concurrency.NewLockManager(concurrency.DefaultStripes),
		capacity: cfg.Capacity,
	}
	s.lru = expirable.NewLRU[string, *Session](cfg.Capacity, s.onEvict, cfg.TTL)
	return s
}

func (s *Store) onEvict(_ string, _ *Session) {
	s.evicted.Add(1)
}

// NewID returns a fresh session identifier.
func NewID() string {
	return uuid.NewString()
}

// Get returns a copy of the session, if present.
func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sess, ok := s.lru.Get(id)
	if !ok {
		s.misses.Add(1)
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	s.hits.Add(1)
	return sess.Clone(), nil
}

// Update loads (or creates) the session for id and applies fn to a copy of it.
// The copy is stored only when fn returns nil, so a failed mutation leaves the
// session untouched.
func (s *Store) Update(ctx context.Context, id string, fn func(*Session) error) (*Session, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty session id", domain.ErrSessionNotFound)
	}

	mu := s.locks.GetLock(id)
	mu.Lock()
	defer mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	current, ok := s.lru.Get(id)
	if ok {
		s.hits.Add(1)
	} else {
		s.misses.Add(1)
		current = newSession(id)
	}

	working := current.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	working.UpdatedAt = time.Now()
	s.lru.Add(id, working)

	return working.Clone(), nil
}

// Delete drops the session entirely.
func (s *Store) Delete(_ context.Context, id string) {
	s.lru.Remove(id)
}

// Stats returns current usage counters.
func (s *Store) Stats() Stats {
	return Stats{
		Size:     s.lru.Len(),
		Capacity: s.capacity,
		Hits:     s.hits.Load(),
		Misses:   s.misses.Load(),
		Evicted:  s.evicted.Load(),
	}
}
