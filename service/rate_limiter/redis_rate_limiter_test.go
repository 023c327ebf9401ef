/*
 * @module service/rate_limiter/redis_rate_limiter_test
 * @description 限流器单元测试；Redis相关用例需要可用的Redis，未设置 REDIS_HOST 时跳过
 * @architecture 测试层
 */

package rate_limiter

import (
	"context"
	"fmt"
	"os"
	"retail-service/config"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis 设置测试用Redis环境
func setupTestRedis(t *testing.T) *RedisRateLimiter {
	if os.Getenv("REDIS_HOST") == "" {
		t.Skip("未设置 REDIS_HOST，跳过Redis限流测试")
	}

	cfg := config.FromEnv(config.OSEnv{})
	limiter, err := NewRedisRateLimiter(cfg.Infra.Redis)
	require.NoError(t, err, "Redis限流器初始化失败")

	limiter.client.FlushDB(context.Background())
	t.Cleanup(func() { limiter.Close() })
	return limiter
}

func TestRedisRateLimiter_Check(t *testing.T) {
	limiter := setupTestRedis(t)
	ctx := context.Background()
	rule := RateLimitRule{TargetID: "10.0.0.1", TimeWindow: 10, MaxRequests: 5}

	for i := 0; i < 5; i++ {
		result, err := limiter.Check(ctx, rule)
		require.NoError(t, err)
		assert.True(t, result.Allowed, fmt.Sprintf("第%d次请求应该被允许", i+1))
		assert.Equal(t, 5-i-1, result.Remaining)
	}

	result, err := limiter.Check(ctx, rule)
	require.NoError(t, err)
	assert.False(t, result.Allowed, "第6次请求应该被限流")
	assert.Equal(t, 0, result.Remaining)

	require.NoError(t, limiter.Reset(ctx, rule))
	result, err = limiter.Check(ctx, rule)
	require.NoError(t, err)
	assert.True(t, result.Allowed, "重置后应该允许请求")
}

func TestMemoryRateLimiter_Check(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	ctx := context.Background()
	rule := RateLimitRule{TargetID: "10.0.0.1", TimeWindow: 60, MaxRequests: 3}

	for i := 0; i < 3; i++ {
		result, err := limiter.Check(ctx, rule)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.Equal(t, 3, result.Limit)
		assert.Equal(t, 2-i, result.Remaining)
		assert.Equal(t, now.Add(60*time.Second).Unix(), result.ResetAt)
	}

	result, err := limiter.Check(ctx, rule)
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Contains(t, result.Message, "60秒内最多3次")

	other, err := limiter.Check(ctx, RateLimitRule{TargetID: "10.0.0.2", TimeWindow: 60, MaxRequests: 3})
	require.NoError(t, err)
	assert.True(t, other.Allowed, "不同客户端独立计数")

	now = now.Add(61 * time.Second)
	result, err = limiter.Check(ctx, rule)
	require.NoError(t, err)
	assert.True(t, result.Allowed, "窗口过期后应重新计数")
	assert.Equal(t, 2, result.Remaining)
}

func TestMemoryRateLimiter_EvictsExpired(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := limiter.Check(ctx, RateLimitRule{TargetID: fmt.Sprintf("ip-%d", i), TimeWindow: 10, MaxRequests: 1})
		require.NoError(t, err)
	}

	now = now.Add(2 * time.Minute)
	_, err := limiter.Check(ctx, RateLimitRule{TargetID: "ip-new", TimeWindow: 10, MaxRequests: 1})
	require.NoError(t, err)
	assert.Len(t, limiter.windows, 1)
}

func TestMemoryRateLimiter_Concurrent(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	ctx := context.Background()
	rule := RateLimitRule{TargetID: "10.0.0.1", TimeWindow: 60, MaxRequests: 50}

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := limiter.Check(ctx, rule)
			if err == nil && result.Allowed {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed)
}

func TestBuildRateLimitKey(t *testing.T) {
	now := time.Unix(1200, 0)
	rule := RateLimitRule{TargetID: "10.0.0.1", TimeWindow: 60}

	assert.Equal(t, "rate_limit:10.0.0.1:20", buildRateLimitKey(rule, now))
	assert.Equal(t, "rate_limit:10.0.0.1:1200", buildRateLimitKey(RateLimitRule{TargetID: "10.0.0.1"}, now))
}
