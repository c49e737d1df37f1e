package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ConfigCache implements ports.ConfigCache using Redis. It holds the
// serialized payment config snapshot so reads skip the database.
type ConfigCache struct {
	client *goredis.Client
	prefix string
}

// NewConfigCache creates a new Redis-backed config cache.
func NewConfigCache(client *goredis.Client) *ConfigCache {
	return &ConfigCache{
		client: client,
		prefix: "config:",
	}
}

// Get retrieves a cached config document by key.
// Returns nil, nil if the key does not exist.
func (c *ConfigCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis config get: %w", err)
	}
	return val, nil
}

// Set stores a config document with TTL.
func (c *ConfigCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := c.client.Set(ctx, c.prefix+key, value, ttl).Err()
	if err != nil {
		return fmt.Errorf("redis config set: %w", err)
	}
	return nil
}

// Delete removes a cached config document. Called after updates so the next
// read repopulates from the database.
func (c *ConfigCache) Delete(ctx context.Context, key string) error {
	err := c.client.Del(ctx, c.prefix+key).Err()
	if err != nil {
		return fmt.Errorf("redis config delete: %w", err)
	}
	return nil
}
