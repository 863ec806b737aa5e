package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/redis/go-redis/v9"
)

// Cache stores upstream response bodies in Redis with a fixed TTL.
//
// Keys follow the pattern prism:{op}:{hash}, where hash is the xxhash of the
// request identity (method, path and encoded query).
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// New creates a Redis response cache and verifies the connection.
func New(redisURL string, redisPassword string, ttl time.Duration, logger *slog.Logger) (*Cache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	if redisPassword != "" {
		opt.Password = redisPassword
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Cache{
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "response_cache"),
	}, nil
}

// Key derives the cache key for an upstream operation and its request identity.
func Key(op string, identity string) string {
	return "prism:" + op + ":" + strconv.FormatUint(xxhash.Sum64String(identity), 16)
}

// Get fetches a cached body. A missing key returns ok=false with no error.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	body, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.logger.Debug("cache_miss", "cache_key", key)
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis GET failed: %w", err)
	}

	c.logger.Debug("cache_hit", "cache_key", key, "bytes", len(body))
	return body, true, nil
}

// Set stores a body under key with the cache TTL.
func (c *Cache) Set(ctx context.Context, key string, body []byte) error {
	if err := c.client.Set(ctx, key, body, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis SET failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (c *Cache) Close() error {
	return c.client.Close()
}
