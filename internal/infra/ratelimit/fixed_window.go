package ratelimit

import (
	"context"
	"time"
)

type window struct {
	count     int
	startedAt time.Time
}

/*
會有突刺問題
*/
type LocalFixedWindow struct {
	cfg   Config
	store *keyed[window]
}

var _ Limiter = (*LocalFixedWindow)(nil)

func NewFixedWindow(cfg Config) *LocalFixedWindow {
	cfg.normalize()
	return &LocalFixedWindow{
		cfg: cfg,
		store: newKeyed(cfg.IdleTTL, func(now time.Time) *window {
			return &window{startedAt: now}
		}),
	}
}

func (f *LocalFixedWindow) Allow(ctx context.Context, key string) bool {
	return f.store.with(key, func(w *window, now time.Time) bool {
		if now.Sub(w.startedAt) >= f.cfg.Window {
			w.count = 0
			w.startedAt = now
		}
		if w.count+1 > f.cfg.Capacity {
			return false
		}
		w.count++
		return true
	})
}

func (f *LocalFixedWindow) Stop() {
	f.store.Stop()
}
