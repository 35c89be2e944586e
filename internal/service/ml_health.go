package service

import (
	"sync/atomic"
	"time"
)

// MLHealth 远端服务可用性标记，由定时探测任务更新
type MLHealth struct {
	available   atomic.Bool
	lastChecked atomic.Int64
}

// NewMLHealth 初始为可用，首次探测前照常尝试远端
func NewMLHealth() *MLHealth {
	h := &MLHealth{}
	h.available.Store(true)
	return h
}

// Available 是否可用
func (h *MLHealth) Available() bool {
	return h.available.Load()
}

// Set 更新状态，返回状态是否发生变化
func (h *MLHealth) Set(ok bool) bool {
	h.lastChecked.Store(time.Now().UnixMilli())
	return h.available.Swap(ok) != ok
}

// LastChecked 最近一次探测时间
func (h *MLHealth) LastChecked() time.Time {
	ms := h.lastChecked.Load()
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
