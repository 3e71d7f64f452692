package ratelimit

import (
	"context"
	"time"
)

type hits struct {
	at []time.Time
}

/*
每個 key 保存窗口內全部請求時間，高QPS請採用其他窗口策略
*/
type LocalSlideWindow struct {
	cfg   Config
	store *keyed[hits]
}

var _ Limiter = (*LocalSlideWindow)(nil)

func NewSlideWindow(cfg Config) *LocalSlideWindow {
	cfg.normalize()
	return &LocalSlideWindow{
		cfg: cfg,
		store: newKeyed(cfg.IdleTTL, func(now time.Time) *hits {
			return &hits{at: make([]time.Time, 0, cfg.Capacity)}
		}),
	}
}

func (s *LocalSlideWindow) Allow(ctx context.Context, key string) bool {
	return s.store.with(key, func(h *hits, now time.Time) bool {
		validStart := len(h.at)
		for i, t := range h.at {
			if now.Sub(t) < s.cfg.Window {
				validStart = i
				break
			}
		}
		h.at = h.at[validStart:]
		if len(h.at) >= s.cfg.Capacity {
			return false
		}
		h.at = append(h.at, now)
		return true
	})
}

func (s *LocalSlideWindow) Stop() {
	s.store.Stop()
}
