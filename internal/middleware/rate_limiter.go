package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"batikin/internal/api/response"
)

// ==================== RateLimiter 固定窗口限流器 ====================

// RateLimiter 按 key 计数的固定窗口限流器
// 防止识别接口被刷，拖垮 ML 服务
type RateLimiter struct {
	windows sync.Map // key -> *windowEntry
	now     func() time.Time
}

// windowEntry 窗口计数
type windowEntry struct {
	mu      sync.Mutex
	start   time.Time
	count   int
	touched time.Time
}

// NewRateLimiter 创建限流器
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{now: time.Now}
}

// CheckResult 检查结果
type CheckResult struct {
	Allowed    bool          // 是否允许
	Remaining  int           // 窗口内剩余次数
	RetryAfter time.Duration // 距窗口重置的时间
}

// Allow 计数并判断是否超限
func (r *RateLimiter) Allow(key string, limit int, window time.Duration) CheckResult {
	actual, _ := r.windows.LoadOrStore(key, &windowEntry{})
	entry := actual.(*windowEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := r.now()
	entry.touched = now
	if entry.start.IsZero() || now.Sub(entry.start) >= window {
		entry.start = now
		entry.count = 0
	}

	if entry.count >= limit {
		return CheckResult{
			Allowed:    false,
			RetryAfter: window - now.Sub(entry.start),
		}
	}
	entry.count++
	return CheckResult{Allowed: true, Remaining: limit - entry.count}
}

// Sweep 清理 idle 之前未访问的 key，返回清理数量
func (r *RateLimiter) Sweep(idle time.Duration) int {
	cutoff := r.now().Add(-idle)
	removed := 0
	r.windows.Range(func(key, value interface{}) bool {
		entry := value.(*windowEntry)
		entry.mu.Lock()
		stale := entry.touched.Before(cutoff)
		entry.mu.Unlock()
		if stale {
			r.windows.Delete(key)
			removed++
		}
		return true
	})
	return removed
}

// Reset 重置指定 key
func (r *RateLimiter) Reset(key string) {
	r.windows.Delete(key)
}

// ==================== 中间件 ====================

// ClientRateLimit 按客户端 IP（有身份头时按邮箱）限流
// perMinute <= 0 表示不限流
//
// 使用示例:
//
//	api.POST("/classify-batik",
//	    middleware.ClientRateLimit(limiter, "classify", 30),
//	    classifyCtl.Classify,
//	)
func ClientRateLimit(limiter *RateLimiter, scope string, perMinute int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if perMinute <= 0 {
			c.Next()
			return
		}

		client := GetCallerEmail(c)
		if client == "" {
			client = c.ClientIP()
		}
		result := limiter.Allow(scope+":"+client, perMinute, time.Minute)
		c.Header("X-RateLimit-Limit", strconv.Itoa(perMinute))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))

		if !result.Allowed {
			seconds := int(result.RetryAfter.Seconds()) + 1
			c.Header("Retry-After", strconv.Itoa(seconds))
			response.Abort(c, http.StatusTooManyRequests, formatRetryMessage(seconds))
			return
		}
		c.Next()
	}
}

// formatRetryMessage 格式化重试提示信息
func formatRetryMessage(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("too many requests, retry in %d seconds", seconds)
	}
	return fmt.Sprintf("too many requests, retry in %d minutes", (seconds+59)/60)
}
