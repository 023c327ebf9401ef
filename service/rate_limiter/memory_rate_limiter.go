package rate_limiter

import (
	"context"
	"sync"
	"time"
)

// MemoryRateLimiter 进程内固定窗口限流器，未配置Redis时使用
type MemoryRateLimiter struct {
	mu        sync.Mutex
	windows   map[string]*window
	lastSweep time.Time
	now       func() time.Time
}

// 过期窗口清理间隔
const sweepInterval = time.Minute

type window struct {
	count   int
	resetAt time.Time
}

// NewMemoryRateLimiter 创建进程内限流器
func NewMemoryRateLimiter() *MemoryRateLimiter {
	return &MemoryRateLimiter{
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

// Check 检查并计数一次请求
func (m *MemoryRateLimiter) Check(ctx context.Context, rule RateLimitRule) (*RateLimitResult, error) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.windows[rule.TargetID]
	if !ok || !now.Before(w.resetAt) {
		if now.Sub(m.lastSweep) >= sweepInterval {
			m.evictExpired(now)
			m.lastSweep = now
		}
		w = &window{resetAt: now.Add(time.Duration(rule.TimeWindow) * time.Second)}
		m.windows[rule.TargetID] = w
	}

	if w.count >= rule.MaxRequests {
		return newResult(rule, false, w.count, w.resetAt), nil
	}
	w.count++
	return newResult(rule, true, w.count, w.resetAt), nil
}

// evictExpired 清理已过期窗口，调用方持有锁
func (m *MemoryRateLimiter) evictExpired(now time.Time) {
	for key, w := range m.windows {
		if !now.Before(w.resetAt) {
			delete(m.windows, key)
		}
	}
}

// Close 实现 Limiter
func (m *MemoryRateLimiter) Close() error {
	return nil
}
