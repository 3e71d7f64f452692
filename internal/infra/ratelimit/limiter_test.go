package ratelimit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func setClock[T any](k *keyed[T], clock *fakeClock) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.now = clock.Now
}

func testConfig() Config {
	return Config{Capacity: 3, Rate: 1, Window: time.Second, IdleTTL: time.Minute}
}

func TestTokenBucket_CapacityAndRefill(t *testing.T) {
	clock := newFakeClock()
	tb := NewTokenBucket(testConfig())
	defer tb.Stop()
	setClock(tb.store, clock)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.True(t, tb.Allow(ctx, "fp-a"), "request %d", i+1)
	}
	require.False(t, tb.Allow(ctx, "fp-a"))
	require.True(t, tb.Allow(ctx, "fp-b"), "keys are independent")

	clock.Advance(1100 * time.Millisecond)
	require.True(t, tb.Allow(ctx, "fp-a"))
	require.False(t, tb.Allow(ctx, "fp-a"))

	clock.Advance(time.Hour)
	for i := 0; i < 3; i++ {
		require.True(t, tb.Allow(ctx, "fp-a"))
	}
	require.False(t, tb.Allow(ctx, "fp-a"), "refill is capped at capacity")
}

func TestTokenBucket_Concurrent(t *testing.T) {
	tb := NewTokenBucket(Config{Capacity: 50, Rate: 0.0001, Window: time.Second, IdleTTL: time.Minute})
	defer tb.Stop()

	var allowed atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if tb.Allow(context.Background(), "same") {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()
	require.Equal(t, int32(50), allowed.Load())
}

func TestFixedWindow(t *testing.T) {
	clock := newFakeClock()
	fw := NewFixedWindow(testConfig())
	defer fw.Stop()
	setClock(fw.store, clock)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.True(t, fw.Allow(ctx, "k"))
	}
	require.False(t, fw.Allow(ctx, "k"))

	clock.Advance(time.Second)
	require.True(t, fw.Allow(ctx, "k"))
}

func TestSlideWindow(t *testing.T) {
	clock := newFakeClock()
	sw := NewSlideWindow(testConfig())
	defer sw.Stop()
	setClock(sw.store, clock)
	ctx := context.Background()

	require.True(t, sw.Allow(ctx, "k"))
	clock.Advance(500 * time.Millisecond)
	require.True(t, sw.Allow(ctx, "k"))
	require.True(t, sw.Allow(ctx, "k"))
	require.False(t, sw.Allow(ctx, "k"))

	// first hit leaves the window, the other two are still inside it
	clock.Advance(600 * time.Millisecond)
	require.True(t, sw.Allow(ctx, "k"))
	require.False(t, sw.Allow(ctx, "k"))
}

func TestKeyedEvictsIdleEntries(t *testing.T) {
	clock := newFakeClock()
	tb := NewTokenBucket(testConfig())
	defer tb.Stop()
	setClock(tb.store, clock)

	tb.Allow(context.Background(), "a")
	clock.Advance(30 * time.Second)
	tb.Allow(context.Background(), "b")
	require.Equal(t, 2, tb.store.len())

	clock.Advance(45 * time.Second)
	tb.store.evictIdle()
	require.Equal(t, 1, tb.store.len())
}

func TestNewRejectsUnknownType(t *testing.T) {
	_, err := New(Type("leaky"), testConfig(), nil)
	require.Error(t, err)

	_, err = New(RedisBucket, testConfig(), nil)
	require.Error(t, err)

	l, err := New(SlideWindow, Config{}, nil)
	require.NoError(t, err)
	l.Stop()
	l.Stop()
}

type RedisBucketTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	clock   *fakeClock
	limiter *RedisTokenBucket
}

func (s *RedisBucketTestSuite) SetupTest() {
	s.mr = miniredis.RunT(s.T())
	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})
	s.clock = newFakeClock()
	s.limiter = NewRedisTokenBucket(s.client, testConfig())
	s.limiter.now = s.clock.Now
}

func (s *RedisBucketTestSuite) TearDownTest() {
	s.client.Close()
}

func TestRedisBucketSuite(t *testing.T) {
	suite.Run(t, new(RedisBucketTestSuite))
}

func (s *RedisBucketTestSuite) TestBasicRateLimit() {
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.True(s.T(), s.limiter.Allow(ctx, "fp"), "request %d", i+1)
	}
	require.False(s.T(), s.limiter.Allow(ctx, "fp"))
	require.True(s.T(), s.mr.Exists(redisKeyPrefix+"fp"))

	s.clock.Advance(1100 * time.Millisecond)
	require.True(s.T(), s.limiter.Allow(ctx, "fp"))
	require.False(s.T(), s.limiter.Allow(ctx, "fp"))
}

func (s *RedisBucketTestSuite) TestMultipleKeys() {
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.True(s.T(), s.limiter.Allow(ctx, "fp-1"))
	}
	require.False(s.T(), s.limiter.Allow(ctx, "fp-1"))
	require.True(s.T(), s.limiter.Allow(ctx, "fp-2"))
}

func (s *RedisBucketTestSuite) TestKeyExpires() {
	ctx := context.Background()
	s.limiter.Allow(ctx, "fp")
	require.Greater(s.T(), s.mr.TTL(redisKeyPrefix+"fp"), time.Duration(0))
}

func (s *RedisBucketTestSuite) TestRedisDownAllows() {
	s.mr.Close()
	require.True(s.T(), s.limiter.Allow(context.Background(), "fp"))
}

func TestMiddleware(t *testing.T) {
	tb := NewTokenBucket(Config{Capacity: 1, Rate: 0.0001, Window: time.Second, IdleTTL: time.Minute})
	defer tb.Stop()

	r := chi.NewRouter()
	r.Use(NewMiddleware(tb, func(r *http.Request) string {
		return r.Header.Get("x-client-fingerprint")
	}, WithRejectHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("slow down"))
	}))))
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	do := func(fp string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("x-client-fingerprint", fp)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	require.Equal(t, http.StatusOK, do("a").Code)
	rec := do("a")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "slow down", rec.Body.String())
	require.Equal(t, http.StatusOK, do("b").Code)
}
