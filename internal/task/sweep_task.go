package task

import (
	"context"
	"time"

	"go.uber.org/zap"

	"batikin/internal/middleware"
)

// CacheSweeper 可清理过期条目的内存缓存
type CacheSweeper interface {
	SweepCache() int
}

// SweepTask 清理长时间未访问的限流计数与过期缓存
type SweepTask struct {
	limiter *middleware.RateLimiter
	idle    time.Duration
	caches  []CacheSweeper
	log     *zap.Logger
}

// NewSweepTask idle 之前未访问的限流 key 会被清理，caches 清理已过期条目
func NewSweepTask(limiter *middleware.RateLimiter, idle time.Duration, log *zap.Logger, caches ...CacheSweeper) *SweepTask {
	return &SweepTask{limiter: limiter, idle: idle, caches: caches, log: log}
}

func (t *SweepTask) Name() string {
	return "sweep"
}

func (t *SweepTask) Execute(ctx context.Context) {
	limits := 0
	if t.limiter != nil {
		limits = t.limiter.Sweep(t.idle)
	}
	cached := 0
	for _, c := range t.caches {
		cached += c.SweepCache()
	}
	if limits > 0 || cached > 0 {
		t.log.Debug("清理内存数据", zap.Int("rate_limits", limits), zap.Int("cache_entries", cached))
	}
}
