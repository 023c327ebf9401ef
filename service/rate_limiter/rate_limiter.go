package rate_limiter

import (
	"context"
	"fmt"
	"time"
)

// RateLimitResult 限流检查结果
type RateLimitResult struct {
	Allowed   bool   `json:"allowed"`   // 是否允许请求
	Limit     int    `json:"limit"`     // 限制数量
	Remaining int    `json:"remaining"` // 剩余数量
	ResetAt   int64  `json:"reset_at"`  // 重置时间（Unix时间戳）
	Message   string `json:"message"`   // 提示信息
}

// RateLimitRule 限流规则
type RateLimitRule struct {
	TargetID    string // 限流对象，如客户端IP
	TimeWindow  int    // 时间窗口（秒）
	MaxRequests int    // 窗口内最大请求数
}

// Limiter 限流器
type Limiter interface {
	Check(ctx context.Context, rule RateLimitRule) (*RateLimitResult, error)
	Close() error
}

// buildRateLimitKey 构造限流Key，同一窗口内的请求落在同一个Key上
func buildRateLimitKey(rule RateLimitRule, now time.Time) string {
	window := int64(rule.TimeWindow)
	if window <= 0 {
		window = 1
	}
	return fmt.Sprintf("rate_limit:%s:%d", rule.TargetID, now.Unix()/window)
}

func newResult(rule RateLimitRule, allowed bool, count int, resetAt time.Time) *RateLimitResult {
	remaining := rule.MaxRequests - count
	if remaining < 0 {
		remaining = 0
	}

	message := "允许请求"
	if !allowed {
		message = fmt.Sprintf("请求过于频繁，%d秒内最多%d次", rule.TimeWindow, rule.MaxRequests)
	}

	return &RateLimitResult{
		Allowed:   allowed,
		Limit:     rule.MaxRequests,
		Remaining: remaining,
		ResetAt:   resetAt.Unix(),
		Message:   message,
	}
}
