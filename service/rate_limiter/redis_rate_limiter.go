/*
 * @module service/rate_limiter/redis_rate_limiter
 * @description 基于Redis的分布式限流器，按客户端在固定时间窗口内计数
 * @architecture 工具层 - 提供分布式限流能力
 * @stateFlow 构造限流Key -> Redis原子计数 -> 判断是否超限
 * @rules 使用Lua脚本保证 GET/INCR/EXPIRE 的原子性
 * @dependencies github.com/go-redis/redis/v8
 * @refs api/middleware/throttle.go
 */

package rate_limiter

import (
	"context"
	"fmt"
	"log/slog"
	"retail-service/config"
	"time"

	"github.com/go-redis/redis/v8"
)

// 原子限流脚本：返回 {是否允许, 当前计数, 上限, 剩余TTL}
var rateLimitScript = redis.NewScript(`
	local key = KEYS[1]
	local max_requests = tonumber(ARGV[1])
	local window = tonumber(ARGV[2])

	local current = redis.call('GET', key)
	if current == false then
		current = 0
	else
		current = tonumber(current)
	end

	if current >= max_requests then
		local ttl = redis.call('TTL', key)
		if ttl < 0 then
			ttl = window
		end
		return {0, current, max_requests, ttl}
	end

	local new_count = redis.call('INCR', key)
	if new_count == 1 then
		redis.call('EXPIRE', key, window)
	end

	local ttl = redis.call('TTL', key)
	if ttl < 0 then
		ttl = window
	end

	return {1, new_count, max_requests, ttl}
`)

// RedisRateLimiter Redis限流器
type RedisRateLimiter struct {
	client *redis.Client
}

// NewRedisRateLimiter 创建Redis限流器并测试连接
func NewRedisRateLimiter(cfg config.RedisConfig) (*RedisRateLimiter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis连接失败: %w", err)
	}

	slog.Info("Redis限流器初始化成功", "redis_addr", cfg.Addr())

	return NewRedisRateLimiterWithClient(client), nil
}

// NewRedisRateLimiterWithClient 使用已有客户端创建Redis限流器
func NewRedisRateLimiterWithClient(client *redis.Client) *RedisRateLimiter {
	return &RedisRateLimiter{client: client}
}

// Check 检查并计数一次请求
func (r *RedisRateLimiter) Check(ctx context.Context, rule RateLimitRule) (*RateLimitResult, error) {
	key := buildRateLimitKey(rule, time.Now())

	result, err := rateLimitScript.Run(ctx, r.client, []string{key}, rule.MaxRequests, rule.TimeWindow).Result()
	if err != nil {
		return nil, fmt.Errorf("限流检查失败: %w", err)
	}

	results, ok := result.([]interface{})
	if !ok || len(results) != 4 {
		return nil, fmt.Errorf("限流脚本返回格式错误: %v", result)
	}
	allowed := results[0].(int64) == 1
	currentCount := int(results[1].(int64))
	ttl := int(results[3].(int64))

	return newResult(rule, allowed, currentCount, time.Now().Add(time.Duration(ttl)*time.Second)), nil
}

// Reset 重置限流计数（仅用于测试或管理）
func (r *RedisRateLimiter) Reset(ctx context.Context, rule RateLimitRule) error {
	return r.client.Del(ctx, buildRateLimitKey(rule, time.Now())).Err()
}

// Close 关闭Redis客户端
func (r *RedisRateLimiter) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
