package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

type Type string

const (
	FixedWindow Type = "fixed_window"
	TokenBucket Type = "token_bucket"
	SlideWindow Type = "slide_window"
	RedisBucket Type = "redis_bucket"
)

// Limiter decides per key, usually the client fingerprint.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
	// Stop releases background resources. Safe to call more than once.
	Stop()
}

type Config struct {
	Capacity int
	Rate     float64       // tokens/秒
	Window   time.Duration // 窗口長度
	// IdleTTL drops per-key state untouched for this long.
	IdleTTL time.Duration
}

func DefaultConfig() Config {
	return Config{
		Capacity: 60,
		Rate:     1,
		Window:   time.Second,
		IdleTTL:  10 * time.Minute,
	}
}

func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Capacity <= 0 {
		c.Capacity = def.Capacity
	}
	if c.Rate <= 0 {
		c.Rate = def.Rate
	}
	if c.Window <= 0 {
		c.Window = def.Window
	}
	if c.IdleTTL <= 0 {
		c.IdleTTL = def.IdleTTL
	}
}

// New builds the limiter for t. client is only used by RedisBucket.
func New(t Type, cfg Config, client RedisClient) (Limiter, error) {
	cfg.normalize()
	switch t {
	case FixedWindow:
		return NewFixedWindow(cfg), nil
	case TokenBucket:
		return NewTokenBucket(cfg), nil
	case SlideWindow:
		return NewSlideWindow(cfg), nil
	case RedisBucket:
		if client == nil {
			return nil, fmt.Errorf("rate limit type %s requires a redis client", t)
		}
		return NewRedisTokenBucket(client, cfg), nil
	default:
		return nil, fmt.Errorf("invalid rate limit type %q", t)
	}
}

// RedisClient is the part of go-redis the distributed bucket needs.
type RedisClient interface {
	redis.Scripter
}

// keyed holds per-key limiter state and evicts idle entries in the background.
type keyed[T any] struct {
	mu      sync.Mutex
	entries map[string]*keyedEntry[T]
	newT    func(now time.Time) *T
	idleTTL time.Duration
	now     func() time.Time

	cancel chan struct{}
	once   sync.Once
}

type keyedEntry[T any] struct {
	state    *T
	lastSeen time.Time
}

func newKeyed[T any](idleTTL time.Duration, newT func(now time.Time) *T) *keyed[T] {
	k := &keyed[T]{
		entries: make(map[string]*keyedEntry[T]),
		newT:    newT,
		idleTTL: idleTTL,
		now:     time.Now,
		cancel:  make(chan struct{}),
	}
	go k.janitor()
	return k
}

// with runs fn on key's state under the store lock.
func (k *keyed[T]) with(key string, fn func(state *T, now time.Time) bool) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	e, ok := k.entries[key]
	if !ok {
		e = &keyedEntry[T]{state: k.newT(now)}
		k.entries[key] = e
	}
	e.lastSeen = now
	return fn(e.state, now)
}

func (k *keyed[T]) len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}

func (k *keyed[T]) evictIdle() {
	k.mu.Lock()
	defer k.mu.Unlock()
	now := k.now()
	for key, e := range k.entries {
		if now.Sub(e.lastSeen) > k.idleTTL {
			delete(k.entries, key)
		}
	}
}

func (k *keyed[T]) janitor() {
	ticker := time.NewTicker(k.idleTTL)
	defer ticker.Stop()

	for {
		select {
		case <-k.cancel:
			return
		case <-ticker.C:
			k.evictIdle()
		}
	}
}

func (k *keyed[T]) Stop() {
	k.once.Do(func() {
		close(k.cancel)
	})
}
