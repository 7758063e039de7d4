// Package cache provides an optional Redis-backed response cache. The API
// works without it; handlers fall back to computing on every request when no
// cache is configured.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResponseCache stores rendered endpoint payloads in Redis.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResponseCache connects to Redis and verifies the connection.
func NewResponseCache(redisURL string, ttl time.Duration) (*ResponseCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &ResponseCache{client: client, ttl: ttl}, nil
}

// Close closes the Redis connection.
func (rc *ResponseCache) Close() error {
	return rc.client.Close()
}

// HealthCheck pings Redis to verify the connection is still live.
func (rc *ResponseCache) HealthCheck(ctx context.Context) error {
	return rc.client.Ping(ctx).Err()
}

// GetJSON loads a cached payload into dest. The second return is false on a
// miss or an unreadable entry.
func (rc *ResponseCache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := rc.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		// Stale or corrupt entry; drop it and treat as a miss.
		rc.client.Del(ctx, key)
		return false, nil
	}
	return true, nil
}

// SetJSON stores a payload under the cache TTL.
func (rc *ResponseCache) SetJSON(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return rc.client.Set(ctx, key, raw, rc.ttl).Err()
}

// Delete removes cached payloads.
func (rc *ResponseCache) Delete(ctx context.Context, keys ...string) error {
	return rc.client.Del(ctx, keys...).Err()
}
