package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces every report key so invalidation can sweep them together.
const KeyPrefix = "backoffice:report:"

// ReportCache stores computed report payloads between writes.
type ReportCache interface {
	// Get loads key into dest and reports whether it was present.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	// Invalidate drops every cached report. Called after any write.
	Invalidate(ctx context.Context) error
}

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to url (redis://...) and verifies the connection.
func NewRedisCache(ctx context.Context, url string, ttl time.Duration) (ReportCache, *redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("unable to ping redis: %w", err)
	}
	return &redisCache{client: client, ttl: ttl}, client, nil
}

func (c *redisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	val, err := c.client.Get(ctx, KeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(val, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, KeyPrefix+key, b, c.ttl).Err()
}

func (c *redisCache) Invalidate(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, KeyPrefix+"*", 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

type noopCache struct{}

// NewNoopCache returns a cache that never hits. Used when REDIS_URL is not configured.
func NewNoopCache() ReportCache {
	return noopCache{}
}

func (noopCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (noopCache) Set(context.Context, string, any) error         { return nil }
func (noopCache) Invalidate(context.Context) error               { return nil }

// New picks the redis cache when url is set and falls back to the no-op cache otherwise.
// A redis that cannot be reached is logged and treated as absent.
func New(ctx context.Context, url string, ttl time.Duration) (ReportCache, func()) {
	if url == "" {
		slog.Info("REDIS_URL not set, report caching disabled")
		return NewNoopCache(), func() {}
	}
	c, client, err := NewRedisCache(ctx, url, ttl)
	if err != nil {
		slog.Warn("report cache unavailable, continuing without it", "error", err)
		return NewNoopCache(), func() {}
	}
	slog.Info("report cache connected", "ttl", ttl.String())
	return c, func() { client.Close() }
}
