package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter throttles requests per client IP per purpose ("register",
// "login", ...). Check reports whether the limit is already exceeded;
// Record counts a request against it.
type Limiter interface {
	CheckIPRateLimitWithPurpose(ctx context.Context, ip, purpose string) (bool, error)
	RecordIPRequestWithPurpose(ctx context.Context, ip, purpose string) error
}

const (
	defaultLimit  = 10
	defaultWindow = time.Minute
)

// RedisLimiter is a fixed-window counter in Redis. Keys expire with the
// window, so idle IPs cost nothing.
type RedisLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  defaultLimit,
		window: defaultWindow,
	}
}

func ipKey(purpose, ip string) string {
	return fmt.Sprintf("ratelimit:%s:ip:%s", purpose, ip)
}

// CheckIPRateLimitWithPurpose reports whether ip already used up its
// window for the given purpose.
func (l *RedisLimiter) CheckIPRateLimitWithPurpose(ctx context.Context, ip, purpose string) (bool, error) {
	count, err := l.client.Get(ctx, ipKey(purpose, ip)).Int64()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to check rate limit: %w", err)
	}

	return count >= l.limit, nil
}

// RecordIPRequestWithPurpose counts one request. The window starts with
// the first request and is not extended by later ones.
func (l *RedisLimiter) RecordIPRequestWithPurpose(ctx context.Context, ip, purpose string) error {
	key := ipKey(purpose, ip)

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to record request: %w", err)
	}

	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}

	return nil
}

// NoopLimiter never throttles. Used with the in-memory storage driver
// where Redis is not part of the deployment.
type NoopLimiter struct{}

func NewNoopLimiter() *NoopLimiter {
	return &NoopLimiter{}
}

func (l *NoopLimiter) CheckIPRateLimitWithPurpose(context.Context, string, string) (bool, error) {
	return false, nil
}

func (l *NoopLimiter) RecordIPRequestWithPurpose(context.Context, string, string) error {
	return nil
}
