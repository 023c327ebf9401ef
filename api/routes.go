/*
 * @module api/routes
 * @description API路由配置模块，负责初始化和配置所有HTTP路由
 * @architecture RESTful API架构
 * @stateFlow 无状态HTTP请求处理
 * @rules 遵循RESTful API设计规范，统一错误处理和响应格式；业务接口统一限流
 * @dependencies github.com/go-chi/chi/v5, github.com/go-chi/cors, github.com/go-chi/render
 * @refs service/init.go
 */

package api

import (
	"retail-service/api/controllers"
	apimw "retail-service/api/middleware"
	"retail-service/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
)

// InitRoute 初始化所有API路由
func InitRoute(r chi.Router, c *service.Container) {
	// 基础中间件
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apimw.Metrics(c.Metrics))
	r.Use(render.SetContentType(render.ContentTypeJSON))

	// CORS配置
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// 健康检查（不限流）
	healthController := controllers.NewHealthController(c.Ping)
	r.Get("/health", healthController.Health)
	r.Get("/ready", healthController.Ready)

	// 业务接口
	r.Group(func(r chi.Router) {
		r.Use(apimw.Throttle(c.Limiter, c.Config.App, c.Metrics))

		// 配置查询
		configController := controllers.NewConfigController(c.Config.App)
		r.Get("/config", configController.GetConfig)

		// 元数据
		r.Route("/meta", func(r chi.Router) {
			metaController := controllers.NewMetaController()
			r.Get("/enums", metaController.GetEnums)
			r.Get("/enums/{name}", metaController.GetEnum)
		})

		// 客户管理
		r.Route("/clients", func(r chi.Router) {
			clientController := controllers.NewClientController(c.ClientService, c.Metrics)
			r.Post("/", clientController.CreateClient)
			r.Get("/", clientController.ListClients)
			r.Get("/{id}", clientController.GetClient)
		})

		// 文件上传
		r.Route("/uploads", func(r chi.Router) {
			uploadController := controllers.NewUploadController(c.UploadService, c.Metrics)
			r.Post("/", uploadController.Upload)
		})
	})
}
