package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jwalitptl/passcheck/pkg/circuitbreaker"
)

type RedisConfig struct {
	URL    string
	Prefix string
	// Limit requests are allowed per Window
	Limit  int
	Window time.Duration
}

// RedisLimiter is a fixed-window counter shared by every replica. When Redis
// is unreachable it fails open.
type RedisLimiter struct {
	client *redis.Client
	cb     *circuitbreaker.CircuitBreaker
	prefix string
	limit  int64
	window time.Duration
	now    func() time.Time
}

// NewRedisLimiter parses cfg.URL and returns a limiter using a new client
func NewRedisLimiter(cfg RedisConfig) (*RedisLimiter, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	return NewRedisLimiterWithClient(redis.NewClient(opts), cfg), nil
}

func NewRedisLimiterWithClient(client *redis.Client, cfg RedisConfig) *RedisLimiter {
	if cfg.Prefix == "" {
		cfg.Prefix = "passcheck:ratelimit:"
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	if cfg.Limit <= 0 {
		cfg.Limit = 60
	}

	return &RedisLimiter{
		client: client,
		cb: circuitbreaker.NewCircuitBreaker(circuitbreaker.Settings{
			Name:        "redis-ratelimit",
			MaxFailures: 5,
			Timeout:     10 * time.Second,
		}),
		prefix: cfg.Prefix,
		limit:  int64(cfg.Limit),
		window: cfg.Window,
		now:    time.Now,
	}
}

func (r *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	slot := r.now().UnixNano() / int64(r.window)
	k := r.prefix + key + ":" + strconv.FormatInt(slot, 10)

	var count int64
	err := r.cb.Execute(func() error {
		var incr *redis.IntCmd
		_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			incr = pipe.Incr(ctx, k)
			pipe.Expire(ctx, k, r.window)
			return nil
		})
		if err != nil {
			return err
		}
		count = incr.Val()
		return nil
	})
	if err != nil {
		return true, fmt.Errorf("rate limit check: %w", err)
	}

	return count <= r.limit, nil
}

// Ping checks the Redis connection
func (r *RedisLimiter) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisLimiter) Close() error {
	return r.client.Close()
}
