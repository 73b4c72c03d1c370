// Package ratelimit throttles requests per client key, either in process or
// shared across replicas through Redis.
package ratelimit

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// Limiter decides whether the caller identified by key may proceed.
// A non-nil error reports a backend problem; the returned bool is still the
// decision the caller should honor.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type MemoryConfig struct {
	RPS   float64
	Burst int
	// Idle limiters are dropped after TTL
	TTL time.Duration
}

// MemoryLimiter keeps a token bucket per key in an expiring cache
type MemoryLimiter struct {
	limit rate.Limit
	burst int
	cache *cache.Cache
}

func NewMemoryLimiter(cfg MemoryConfig) *MemoryLimiter {
	if cfg.TTL <= 0 {
		cfg.TTL = 10 * time.Minute
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	return &MemoryLimiter{
		limit: rate.Limit(cfg.RPS),
		burst: cfg.Burst,
		cache: cache.New(cfg.TTL, 2*cfg.TTL),
	}
}

func (m *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	return m.limiter(key).Allow(), nil
}

func (m *MemoryLimiter) limiter(key string) *rate.Limiter {
	if v, ok := m.cache.Get(key); ok {
		l := v.(*rate.Limiter)
		m.cache.SetDefault(key, l)
		return l
	}

	l := rate.NewLimiter(m.limit, m.burst)
	if err := m.cache.Add(key, l, cache.DefaultExpiration); err != nil {
		// lost the race to another request from the same key
		if v, ok := m.cache.Get(key); ok {
			return v.(*rate.Limiter)
		}
	}
	return l
}

// Len reports the number of tracked keys
func (m *MemoryLimiter) Len() int {
	return m.cache.ItemCount()
}
