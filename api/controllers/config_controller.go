/*
 * @module api/controllers/config_controller
 * @description 配置查询控制器，返回进程启动时解析的只读应用配置
 * @architecture RESTful API架构
 * @stateFlow HTTP请求 -> 控制器 -> 注入的 AppConfig
 * @rules 配置只读，不提供修改接口
 * @dependencies github.com/go-chi/render
 * @refs config/app_config.go
 */

package controllers

import (
	"net/http"
	"retail-service/config"

	"github.com/go-chi/render"
)

// ConfigController 配置控制器
type ConfigController struct {
	cfg config.AppConfig
}

// NewConfigController 创建配置控制器实例
func NewConfigController(cfg config.AppConfig) *ConfigController {
	return &ConfigController{cfg: cfg}
}

// GetConfig 获取应用配置
// @Summary 获取应用配置
// @Description 获取启动时解析的应用配置
// @Tags 系统配置
// @Produce json
// @Success 200 {object} APIResponse{data=config.AppConfig}
// @Router /config [get]
func (c *ConfigController) GetConfig(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, SuccessResponse("获取配置成功", c.cfg))
}
