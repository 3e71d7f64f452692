package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrCacheMiss = errors.New("cache miss")

type Cache interface {
	Ping(ctx context.Context) error
	// Get returns ErrCacheMiss when key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// DeleteByPattern removes every key under this cache's prefix matching pattern.
	DeleteByPattern(ctx context.Context, pattern string) (int, error)
}

type RedisCache struct {
	client *redis.Client
	prefix string
}

var _ Cache = (*RedisCache)(nil)

func NewRedisCache(redisClient *redis.Client, prefix string) *RedisCache {
	return &RedisCache{
		client: redisClient,
		prefix: prefix,
	}
}

func (r *RedisCache) setPrefixKey(key string) string {
	var builder strings.Builder
	builder.Grow(len(r.prefix) + 1 + len(key))
	builder.WriteString(r.prefix)
	builder.WriteString(":")
	builder.WriteString(key)
	return builder.String()
}

func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := r.client.Get(ctx, r.setPrefixKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	return b, err
}

func (r *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, r.setPrefixKey(key), value, ttl).Err()
}

func (r *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = r.setPrefixKey(key)
	}
	return r.client.Del(ctx, prefixed...).Err()
}

// SCAN
func (r *RedisCache) DeleteByPattern(ctx context.Context, pattern string) (int, error) {
	var cursor uint64
	var allKeys []string
	for {
		keys, nextCursor, err := r.client.Scan(ctx, cursor, r.setPrefixKey(pattern), 100).Result()
		if err != nil {
			return 0, err
		}
		allKeys = append(allKeys, keys...)
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if len(allKeys) == 0 {
		return 0, nil
	}
	if err := r.client.Del(ctx, allKeys...).Err(); err != nil {
		return 0, err
	}
	return len(allKeys), nil
}

// GetJSON decodes the cached value at key into out.
func GetJSON(ctx context.Context, c Cache, key string, out any) error {
	b, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

func SetJSON(ctx context.Context, c Cache, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, b, ttl)
}

// NoopCache misses on every read. Used when no redis address is configured.
type NoopCache struct{}

var _ Cache = NoopCache{}

func (NoopCache) Ping(ctx context.Context) error { return nil }

func (NoopCache) Get(ctx context.Context, key string) ([]byte, error) { return nil, ErrCacheMiss }

func (NoopCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (NoopCache) Delete(ctx context.Context, keys ...string) error { return nil }

func (NoopCache) DeleteByPattern(ctx context.Context, pattern string) (int, error) { return 0, nil }
