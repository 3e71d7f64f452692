package ratelimit

import (
	"context"
	"math"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const redisKeyPrefix = "ratelimit:"

var tokenBucketScript = redis.NewScript(`
	local key = KEYS[1]
	local capacity = tonumber(ARGV[1])
	local rate = tonumber(ARGV[2])
	local now = tonumber(ARGV[3])
	local ttl = tonumber(ARGV[4])

	-- 取得或初始化 bucket 狀態
	local bucket = redis.call('HMGET', key, 'tokens', 'last_refill')
	local currentTokens = tonumber(bucket[1])
	local lastRefill = tonumber(bucket[2])

	if currentTokens == nil then
		currentTokens = capacity
		lastRefill = now
	end

	-- 計算需要補充的 tokens
	local elapsedSeconds = math.max(0, now - lastRefill) / 1000
	currentTokens = math.min(capacity, currentTokens + elapsedSeconds * rate)

	local allowed = 0
	if currentTokens >= 1 then
		currentTokens = currentTokens - 1
		allowed = 1
	end

	redis.call('HSET', key, 'tokens', tostring(currentTokens), 'last_refill', tostring(now))
	redis.call('EXPIRE', key, ttl)
	return allowed
`)

// RedisTokenBucket shares buckets across gateway instances.
// A redis failure lets the request through.
type RedisTokenBucket struct {
	cfg    Config
	client RedisClient
	now    func() time.Time
}

var _ Limiter = (*RedisTokenBucket)(nil)

func NewRedisTokenBucket(client RedisClient, cfg Config) *RedisTokenBucket {
	cfg.normalize()
	return &RedisTokenBucket{
		cfg:    cfg,
		client: client,
		now:    time.Now,
	}
}

func (r *RedisTokenBucket) ttlSeconds() int {
	return int(math.Ceil(float64(r.cfg.Capacity)/r.cfg.Rate)) + 1
}

func (r *RedisTokenBucket) Allow(ctx context.Context, key string) bool {
	result, err := tokenBucketScript.Run(
		ctx,
		r.client,
		[]string{redisKeyPrefix + key},
		r.cfg.Capacity,
		r.cfg.Rate,
		r.now().UnixMilli(),
		r.ttlSeconds(),
	).Int64()
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("redis rate limiter unavailable, allowing request")
		return true
	}
	return result == 1
}

func (r *RedisTokenBucket) Stop() {}
