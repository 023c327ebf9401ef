/*
 * @module api/middleware/throttle
 * @description 请求限流中间件，按客户端IP在 THROTTLE_TTL 秒内最多允许 THROTTLE_LIMIT 次请求
 * @architecture 接口层 - 中间件
 * @stateFlow 请求 -> 限流检查 -> 放行/429
 * @rules 限流器故障时放行请求并记录日志
 * @dependencies github.com/go-chi/render
 * @refs service/rate_limiter
 */

package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"retail-service/config"
	"retail-service/service/metrics"
	"retail-service/service/rate_limiter"
	"strconv"

	"github.com/go-chi/render"
)

// Throttle 创建限流中间件
func Throttle(limiter rate_limiter.Limiter, cfg config.AppConfig, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rule := rate_limiter.RateLimitRule{
				TargetID:    clientIP(r),
				TimeWindow:  cfg.ThrottleTTL,
				MaxRequests: cfg.ThrottleLimit,
			}

			result, err := limiter.Check(r.Context(), rule)
			if err != nil {
				slog.Error("限流检查失败，放行请求", "error", err, "client_ip", rule.TargetID)
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

			if !result.Allowed {
				if m != nil {
					m.ThrottledRequests.Inc()
				}
				slog.Warn("请求被限流", "client_ip", rule.TargetID, "path", r.URL.Path)
				render.Status(r, http.StatusTooManyRequests)
				render.JSON(w, r, map[string]interface{}{
					"status": http.StatusTooManyRequests,
					"msg":    result.Message,
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP 获取客户端IP；X-Real-IP/X-Forwarded-For 由 chi 的 RealIP 中间件写入 RemoteAddr
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
