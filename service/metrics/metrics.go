/*
 * @module service/metrics/metrics
 * @description Prometheus 指标定义：HTTP请求、参数校验失败、限流、上传
 * @architecture 工具层 - 可观测性
 * @rules 指标通过构造函数注册到指定 Registerer，测试使用独立 Registry
 * @dependencies github.com/prometheus/client_golang
 * @refs api/middleware/metrics.go
 */

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics 服务指标
type Metrics struct {
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
	ValidationFailures *prometheus.CounterVec
	ThrottledRequests  prometheus.Counter
	ClientsCreated     prometheus.Counter
	UploadedBytes      prometheus.Counter
}

// New 创建并注册服务指标
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "retail",
			Name:      "http_requests_total",
			Help:      "HTTP请求总数",
		}, []string{"method", "route", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "retail",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP请求耗时",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		ValidationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "retail",
			Name:      "validation_failures_total",
			Help:      "请求参数校验失败次数",
		}, []string{"field", "constraint"}),
		ThrottledRequests: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "retail",
			Name:      "throttled_requests_total",
			Help:      "被限流拒绝的请求数",
		}),
		ClientsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "retail",
			Name:      "clients_created_total",
			Help:      "创建的客户数",
		}),
		UploadedBytes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "retail",
			Name:      "uploaded_bytes_total",
			Help:      "上传文件总字节数",
		}),
	}
}
