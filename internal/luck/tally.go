package luck

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// Tally accumulates the luck friends have sent to each wish.
type Tally interface {
	Add(ctx context.Context, wishID string, increment float64) (float64, error)
	Total(ctx context.Context, wishID string) (float64, error)
}

// MemoryTally keeps totals in process memory.
type MemoryTally struct {
	c *cache.Cache
}

// NewMemoryTally creates an in-memory tally whose entries expire after ttl.
func NewMemoryTally(ttl time.Duration) *MemoryTally {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryTally{c: cache.New(ttl, ttl/2)}
}

func (m *MemoryTally) Add(ctx context.Context, wishID string, increment float64) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	key := keyFor(wishID)
	// Add only succeeds for a missing key, so a lost race falls through to the increment.
	if err := m.c.Add(key, increment, cache.DefaultExpiration); err == nil {
		return increment, nil
	}
	total, err := m.c.IncrementFloat64(key, increment)
	if err != nil {
		return 0, fmt.Errorf("increment luck for %s: %w", wishID, err)
	}
	return total, nil
}

func (m *MemoryTally) Total(ctx context.Context, wishID string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	v, ok := m.c.Get(keyFor(wishID))
	if !ok {
		return 0, nil
	}
	total, _ := v.(float64)
	return total, nil
}

// RedisTally keeps totals in Redis so several instances share them.
type RedisTally struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisTally parses url and pings the server.
func NewRedisTally(ctx context.Context, url string, ttl time.Duration) (*RedisTally, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewRedisTallyFromClient(client, ttl), nil
}

// NewRedisTallyFromClient wraps an existing client.
func NewRedisTallyFromClient(client *redis.Client, ttl time.Duration) *RedisTally {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisTally{client: client, ttl: ttl}
}

func (r *RedisTally) Add(ctx context.Context, wishID string, increment float64) (float64, error) {
	key := keyFor(wishID)
	pipe := r.client.TxPipeline()
	incr := pipe.IncrByFloat(ctx, key, increment)
	pipe.Expire(ctx, key, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("increment luck for %s: %w", wishID, err)
	}
	return incr.Val(), nil
}

func (r *RedisTally) Total(ctx context.Context, wishID string) (float64, error) {
	v, err := r.client.Get(ctx, keyFor(wishID)).Float64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read luck for %s: %w", wishID, err)
	}
	return v, nil
}

// CheckHealth pings Redis.
func (r *RedisTally) CheckHealth(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis client.
func (r *RedisTally) Close() error {
	return r.client.Close()
}

func keyFor(wishID string) string {
	return KeyPrefix + wishID
}
