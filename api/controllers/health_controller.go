/*
 * @module api/controllers/health_controller
 * @description 健康检查控制器，提供服务健康状态检查
 * @architecture MVC架构 - 控制器层
 * @stateFlow HTTP请求处理流程
 * @rules 提供简单的健康检查接口，用于容器健康检查和负载均衡
 * @dependencies net/http, github.com/prometheus/common/version
 */

package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/prometheus/common/version"
)

const serviceName = "retail-service"

// HealthController 健康检查控制器
type HealthController struct {
	ping func() error
}

// NewHealthController 创建健康检查控制器实例，ping 用于就绪检查
func NewHealthController(ping func() error) *HealthController {
	return &HealthController{ping: ping}
}

// HealthResponse 健康检查响应结构
type HealthResponse struct {
	Status    string    `json:"status" example:"ok"`
	Timestamp time.Time `json:"timestamp" example:"2024-01-01T00:00:00Z"`
	Version   string    `json:"version" example:"1.0.0"`
	Service   string    `json:"service" example:"retail-service"`
}

func newHealthResponse(status string) HealthResponse {
	v := version.Version
	if v == "" {
		v = "dev"
	}
	return HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Version:   v,
		Service:   serviceName,
	}
}

// Health 健康检查
// @Summary 健康检查
// @Description 检查服务健康状态
// @Tags 系统
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, newHealthResponse("ok"))
}

// Ready 就绪检查
// @Summary 就绪检查
// @Description 检查服务是否就绪（数据库可用）
// @Tags 系统
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /ready [get]
func (c *HealthController) Ready(w http.ResponseWriter, r *http.Request) {
	if c.ping != nil {
		if err := c.ping(); err != nil {
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, newHealthResponse("unavailable"))
			return
		}
	}
	render.JSON(w, r, newHealthResponse("ready"))
}
