package ratelimit

import (
	"context"
	"math"
	"time"
)

type bucket struct {
	tokens       float64
	lastRefilled time.Time
}

// LocalTokenBucket refills lazily on each Allow, one bucket per key.
type LocalTokenBucket struct {
	cfg   Config
	store *keyed[bucket]
}

var _ Limiter = (*LocalTokenBucket)(nil)

/*
請使用 defer 呼叫 Stop()
*/
func NewTokenBucket(cfg Config) *LocalTokenBucket {
	cfg.normalize()
	return &LocalTokenBucket{
		cfg: cfg,
		store: newKeyed(cfg.IdleTTL, func(now time.Time) *bucket {
			return &bucket{tokens: float64(cfg.Capacity), lastRefilled: now}
		}),
	}
}

func (t *LocalTokenBucket) Allow(ctx context.Context, key string) bool {
	return t.store.with(key, func(b *bucket, now time.Time) bool {
		elapsed := now.Sub(b.lastRefilled).Seconds()
		if elapsed > 0 {
			b.tokens = math.Min(float64(t.cfg.Capacity), b.tokens+elapsed*t.cfg.Rate)
			b.lastRefilled = now
		}
		if b.tokens < 1 {
			return false
		}
		b.tokens--
		return true
	})
}

func (t *LocalTokenBucket) Stop() {
	t.store.Stop()
}
